package services

import (
	_ "embed"
	"fmt"
	"sync"
	"triggerby_web/models"

	"gopkg.in/yaml.v3"
)

//go:embed automations.yaml
var automationsYAML []byte

// ExpectedAutomationCount is the number of automations the site advertises
const ExpectedAutomationCount = 10

var (
	catalogOnce sync.Once
	catalog     []models.Automation
)

// LoadCatalog parses and validates an automation catalog document
func LoadCatalog(data []byte) ([]models.Automation, error) {
	var automations []models.Automation
	if err := yaml.Unmarshal(data, &automations); err != nil {
		return nil, fmt.Errorf("failed to parse automation catalog: %w", err)
	}

	seen := make(map[string]bool, len(automations))
	for i, a := range automations {
		if a.ID == "" || a.Title == "" || a.KPI == "" || a.OneLiner == "" || a.Image == "" {
			return nil, fmt.Errorf("automation %d (%q) is missing a required field", i, a.ID)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate automation id %q", a.ID)
		}
		seen[a.ID] = true
	}
	return automations, nil
}

// Automations returns the embedded catalog in display order.
// The catalog is parsed once per process; a broken catalog panics.
func Automations() []models.Automation {
	catalogOnce.Do(func() {
		var err error
		catalog, err = LoadCatalog(automationsYAML)
		if err != nil {
			panic(err)
		}
		if len(catalog) != ExpectedAutomationCount {
			panic(fmt.Sprintf("automation catalog has %d entries, want %d", len(catalog), ExpectedAutomationCount))
		}
	})
	// Callers get their own slice header; records are values
	out := make([]models.Automation, len(catalog))
	copy(out, catalog)
	return out
}

// Showcases splits the catalog into the three landing page carousels (3-4-3)
func Showcases() []models.Showcase {
	all := Automations()
	return []models.Showcase{
		{
			ID:       "recover",
			Title:    "Recover Lost Revenue",
			Subtitle: "Win back customers and capture missed opportunities",
			Autoplay: true,
			Items:    all[0:3],
		},
		{
			ID:       "optimize",
			Title:    "Optimize Performance",
			Subtitle: "Maximize efficiency and boost key metrics",
			Items:    all[3:7],
		},
		{
			ID:       "protect",
			Title:    "Protect Your Profits",
			Subtitle: "Shield your business from losses and fraud",
			Items:    all[7:10],
		},
	}
}

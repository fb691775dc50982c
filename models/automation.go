package models

// Automation is the display metadata of one marketed store automation
type Automation struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	KPI      string `yaml:"kpi"`
	OneLiner string `yaml:"one_liner"`
	Image    string `yaml:"image"`
	Badge    string `yaml:"badge,omitempty"`
	CTALabel string `yaml:"cta_label,omitempty"`
	CTAHref  string `yaml:"cta_href,omitempty"`
}

// HasBadge reports whether the card shows a badge label
func (a Automation) HasBadge() bool {
	return a.Badge != ""
}

// HasCTA reports whether the card renders a call-to-action link.
// Both label and target must be set.
func (a Automation) HasCTA() bool {
	return a.CTALabel != "" && a.CTAHref != ""
}

// Showcase is a titled group of automations rendered as one carousel
type Showcase struct {
	ID       string
	Title    string
	Subtitle string
	Autoplay bool
	Items    []Automation
}

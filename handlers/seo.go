package handlers

import (
	"triggerby_web/config"
	"triggerby_web/models"
)

const defaultOGImagePath = "/static/brand/og.png"

// landingSEO builds the home page metadata for the configured public URL
func landingSEO(cfg *config.Config) *models.SEO {
	seo := models.DefaultSEO(
		"TriggerBy - AI Automation for Shopify | Turn Your Store Into an AI Revenue Machine",
		"Deploy 10 proven AI automations that recover lost revenue, optimize performance, and protect your profits. Get a free AI audit of your Shopify store in 30 minutes.",
	).
		WithCanonical(cfg.AppURL+"/").
		WithKeywords("Shopify AI, ecommerce automation, cart recovery, Shopify optimization, AI revenue, Shopify tools").
		WithOGImage(cfg.AppURL+defaultOGImagePath, "TriggerBy - AI Automation for Shopify")

	seo.SiteName = "TriggerBy"
	seo.Author = "TriggerBy"
	seo.OGTitle = "TriggerBy - AI Automation for Shopify"
	seo.OGDesc = "Deploy 10 proven AI automations that recover lost revenue, optimize performance, and protect your profits."
	seo.TwitterCreator = "@triggerby"

	if !cfg.IsProduction() {
		seo.WithNoIndex()
	}
	return seo
}

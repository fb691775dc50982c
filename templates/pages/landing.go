package pages

import (
	"context"
	"triggerby_web/middleware"
	"triggerby_web/models"
	"triggerby_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Landing renders the marketing home page
func Landing(seo *models.SEO, csrfToken string, showcases []models.Showcase) templ.Component {
	return components.Adapt(func(ctx context.Context) g.Node {
		return components.Layout(ctx,
			components.PageConfig{SEO: seo, CSRFToken: csrfToken},
			components.SiteHeader(),
			Main(
				Class("pt-16"),
				components.HeroSection(),
				components.AutomationsSection(showcases),
				components.CTAStrip(),
			),
			components.SiteFooter(),
			components.AIOverlay(csrfToken),
			organizationJSONLD(ctx, seo),
		)
	})
}

func organizationJSONLD(ctx context.Context, seo *models.SEO) g.Node {
	if seo == nil || seo.Canonical == "" {
		return nil
	}
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        seo.SiteName,
		"url":         seo.Canonical,
		"description": seo.Description,
	}
	nonce := middleware.GetNonce(ctx)
	return Script(
		Type("application/ld+json"),
		g.If(nonce != "", g.Attr("nonce", nonce)),
		g.Raw(components.JSON(data)),
	)
}

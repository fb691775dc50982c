package components

import (
	"context"
	"triggerby_web/middleware"
	"triggerby_web/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	htmxSrc          = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	emblaSrc         = "https://unpkg.com/embla-carousel@8.5.2/embla-carousel.umd.js"
	emblaAutoplaySrc = "https://unpkg.com/embla-carousel-autoplay@8.5.2/embla-carousel-autoplay.umd.js"
	iconifySrc       = "https://code.iconify.design/3/3.1.1/iconify.min.js"
)

// PageConfig is the per-page input of Layout
type PageConfig struct {
	SEO       *models.SEO
	CSRFToken string
}

// Layout renders the document shell: head metadata, page chrome and scripts
func Layout(ctx context.Context, config PageConfig, content ...g.Node) g.Node {
	seo := config.SEO
	if seo == nil {
		seo = models.DefaultSEO("TriggerBy", "")
	}
	nonce := middleware.GetNonce(ctx)

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				Meta(Name("format-detection"), Content("telephone=no, email=no, address=no")),
				seoHead(seo),
				Link(Rel("icon"), Href(middleware.AssetURL(ctx, "images/favicon.png"))),
				Link(Rel("stylesheet"), Href(middleware.AssetURL(ctx, "css/site.css"))),
				g.If(config.CSRFToken != "", Meta(Name("csrf-token"), Content(config.CSRFToken))),
				script(nonce, iconifySrc),
			),
			Body(
				Class("font-sans antialiased bg-white text-brand-dark"),
				g.Group(content),

				script(nonce, htmxSrc),
				script(nonce, emblaSrc),
				script(nonce, emblaAutoplaySrc),
				script(nonce, middleware.AssetURL(ctx, "js/carousel.js")),
				script(nonce, middleware.AssetURL(ctx, "js/overlay.js")),
			),
		),
	})
}

func script(nonce, src string) g.Node {
	return Script(Src(src), g.If(nonce != "", g.Attr("nonce", nonce)), Defer())
}

func seoHead(seo *models.SEO) g.Node {
	return g.Group([]g.Node{
		TitleEl(g.Text(seo.Title)),
		Meta(Name("description"), Content(seo.Description)),
		g.If(seo.Keywords != "", Meta(Name("keywords"), Content(seo.Keywords))),
		g.If(seo.Author != "", Meta(Name("author"), Content(seo.Author))),
		Meta(Name("robots"), Content(seo.Robots())),
		g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),

		Meta(g.Attr("property", "og:title"), Content(seo.GetOGTitle())),
		Meta(g.Attr("property", "og:description"), Content(seo.GetOGDesc())),
		Meta(g.Attr("property", "og:type"), Content(seo.OGType)),
		g.If(seo.Locale != "", Meta(g.Attr("property", "og:locale"), Content(seo.Locale))),
		g.If(seo.SiteName != "", Meta(g.Attr("property", "og:site_name"), Content(seo.SiteName))),
		g.If(seo.Canonical != "", Meta(g.Attr("property", "og:url"), Content(seo.Canonical))),
		g.If(seo.OGImage != "", g.Group([]g.Node{
			Meta(g.Attr("property", "og:image"), Content(seo.OGImage)),
			Meta(g.Attr("property", "og:image:width"), Content("1200")),
			Meta(g.Attr("property", "og:image:height"), Content("630")),
			Meta(g.Attr("property", "og:image:alt"), Content(seo.OGImageAlt)),
		})),

		Meta(Name("twitter:card"), Content(seo.TwitterCard)),
		Meta(Name("twitter:title"), Content(seo.GetOGTitle())),
		Meta(Name("twitter:description"), Content(seo.GetOGDesc())),
		g.If(seo.TwitterCreator != "", Meta(Name("twitter:creator"), Content(seo.TwitterCreator))),
		g.If(seo.OGImage != "", Meta(Name("twitter:image"), Content(seo.OGImage))),
	})
}

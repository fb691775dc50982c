package components

import (
	"time"
	"triggerby_web/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// OverlayHref is the in-page anchor that opens the audit overlay
const OverlayHref = "#ai-overlay"

// AutomationsHref is the in-page anchor of the automations section
const AutomationsHref = "#automations"

func SiteHeader() g.Node {
	navLink := func(href, text string) g.Node {
		return A(Href(href), Class("text-gray-600 hover:text-brand-green transition-colors"), g.Text(text))
	}

	return Header(
		Class("fixed top-0 left-0 right-0 z-40 bg-white/80 backdrop-blur-md border-b border-gray-200"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex justify-between items-center h-16"),
				Logo(),
				Nav(
					Class("hidden md:flex items-center space-x-8"),
					navLink(AutomationsHref, "Automations"),
					navLink("#how-it-works", "How It Works"),
					navLink("#pricing", "Pricing"),
					A(
						Href(OverlayHref),
						Class("bg-brand-green text-white px-4 py-2 rounded-lg hover:bg-brand-green/90 transition-colors font-medium"),
						g.Text("Get Free Audit"),
					),
				),
				Button(
					Type("button"),
					Class("md:hidden p-2"),
					Aria("label", "Open menu"),
					Icon("lucide:menu size-6", ""),
				),
			),
		),
	)
}

func HeroSection() g.Node {
	return Section(
		Class("relative min-h-screen flex items-center justify-center bg-gradient-to-br from-gray-50 to-white overflow-hidden"),
		ID("hero"),

		Div(Class("absolute inset-0 bg-grid-pattern opacity-5")),
		Div(Class("absolute top-20 left-10 w-72 h-72 bg-brand-green/10 rounded-full blur-3xl")),
		Div(Class("absolute bottom-20 right-10 w-96 h-96 bg-blue-500/10 rounded-full blur-3xl")),

		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			Div(
				Class("animate-slide-up"),
				Div(
					Class("inline-flex items-center px-4 py-2 bg-brand-green/10 text-brand-green rounded-full text-sm font-medium mb-8"),
					Icon("lucide:zap size-4 mr-2", ""),
					g.Text("AI-Powered Shopify Automations"),
				),

				H1(
					Class("text-4xl sm:text-5xl lg:text-7xl font-bold text-brand-dark mb-6 text-balance"),
					g.Text("Turn Your Shopify Store Into an"),
					Span(Class("text-brand-green block mt-2"), g.Text("AI Revenue Machine")),
				),

				P(
					Class("text-xl sm:text-2xl text-gray-600 mb-12 max-w-4xl mx-auto text-balance"),
					g.Text("Deploy 10 proven AI automations that recover lost revenue, optimize performance, and protect your profits while you sleep."),
				),

				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center items-center mb-16"),
					A(
						Href(OverlayHref),
						Class("group bg-brand-green text-white px-8 py-4 rounded-xl font-semibold text-lg hover:bg-brand-green/90 transition-all duration-300 flex items-center shadow-lg hover:shadow-xl"),
						g.Text("Get Free AI Audit"),
						Icon("lucide:arrow-right ml-2 size-5 group-hover:translate-x-1 transition-transform", ""),
					),
					A(
						Href(AutomationsHref),
						Class("group bg-white text-brand-dark px-8 py-4 rounded-xl font-semibold text-lg border-2 border-gray-200 hover:border-brand-green transition-all duration-300 flex items-center"),
						g.Text("View Automations"),
						Icon("lucide:trending-up ml-2 size-5 group-hover:scale-110 transition-transform", ""),
					),
				),

				Div(
					Class("flex flex-col sm:flex-row items-center justify-center gap-8 text-gray-500"),
					Div(
						Class("flex items-center"),
						Div(
							Class("flex -space-x-2 mr-3"),
							g.Group(g.Map([]int{1, 2, 3, 4}, func(int) g.Node {
								return Div(Class("w-8 h-8 bg-brand-green rounded-full border-2 border-white"))
							})),
						),
						Span(Class("text-sm"), g.Text("500+ stores automated")),
					),
					Div(
						Class("flex items-center"),
						Icon("lucide:trending-up size-5 text-brand-green mr-2", ""),
						Span(Class("text-sm"), g.Text("Average 23% revenue increase")),
					),
				),
			),
		),
	)
}

// AutomationsSection renders the three automation carousels
func AutomationsSection(showcases []models.Showcase) g.Node {
	return Section(
		ID("automations"),
		Class("py-20 bg-gray-50"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-16"),
				H2(
					Class("text-3xl sm:text-4xl lg:text-5xl font-bold text-brand-dark mb-6"),
					g.Text("10 AI Automations That"),
					Span(Class("text-brand-green block"), g.Text("Transform Your Store")),
				),
				P(
					Class("text-xl text-gray-600 max-w-3xl mx-auto"),
					g.Text("From cart recovery to fraud protection, our AI handles the heavy lifting so you can focus on growing your business."),
				),
			),
			g.Group(g.Map(showcases, Carousel)),
		),
	)
}

func CTAStrip() g.Node {
	return Section(
		ID("cta"),
		Class("py-16 bg-gradient-to-r from-brand-green to-emerald-600 relative overflow-hidden"),

		Div(Class("absolute inset-0 bg-black/10")),
		Div(Class("absolute top-0 left-1/4 w-96 h-96 bg-white/10 rounded-full blur-3xl")),
		Div(Class("absolute bottom-0 right-1/4 w-72 h-72 bg-white/10 rounded-full blur-3xl")),

		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 text-center"),
			Div(
				Class("glass rounded-3xl p-8 sm:p-12 text-white"),
				Div(
					Class("inline-flex items-center px-4 py-2 bg-white/20 rounded-full text-sm font-medium mb-6"),
					Icon("lucide:sparkles size-4 mr-2", ""),
					g.Text("Limited Time: Free AI Audit"),
				),
				H2(Class("text-3xl sm:text-4xl lg:text-5xl font-bold mb-6"), g.Text("Ready to 10X Your Shopify Revenue?")),
				P(
					Class("text-xl sm:text-2xl mb-8 opacity-90 max-w-3xl mx-auto"),
					g.Text("Get a personalized AI audit of your store and discover exactly which automations will drive the biggest impact for your business."),
				),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center items-center"),
					A(
						Href(OverlayHref),
						Class("group bg-white text-brand-green px-8 py-4 rounded-xl font-semibold text-lg hover:bg-gray-50 transition-all duration-300 flex items-center shadow-lg hover:shadow-xl"),
						g.Text("Get Your Free Audit Now"),
						Icon("lucide:arrow-right ml-2 size-5 group-hover:translate-x-1 transition-transform", ""),
					),
					Div(Class("text-white/80 text-sm"), g.Text("✓ 30-minute turnaround • ✓ No commitment required • ✓ Actionable insights")),
				),
			),
		),
	)
}

func SiteFooter() g.Node {
	return Footer(
		Class("bg-brand-dark text-gray-400 py-12"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex flex-col md:flex-row justify-between items-center gap-6"),
			Div(
				Class("flex items-center space-x-2"),
				Icon("lucide:bot size-6 text-brand-green", ""),
				Span(Class("text-white font-bold"), g.Text("TriggerBy")),
			),
			Nav(
				Class("flex items-center space-x-6 text-sm"),
				A(Href(AutomationsHref), Class("hover:text-white transition-colors"), g.Text("Automations")),
				A(Href(OverlayHref), Class("hover:text-white transition-colors"), g.Text("Free Audit")),
				A(Href("/sitemap.xml"), Class("hover:text-white transition-colors"), g.Text("Sitemap")),
			),
			P(Class("text-sm"), g.Textf("© %d TriggerBy. All rights reserved.", time.Now().Year())),
		),
	)
}

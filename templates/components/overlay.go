package components

import (
	"strconv"
	"triggerby_web/services/overlay"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// OverlayPanelID is the swap target of the overlay form
const OverlayPanelID = "ai-overlay-panel"

// OverlaySubmitPath is the HTMX endpoint the overlay form posts to
const OverlaySubmitPath = "/overlay/audit"

// AIOverlay renders the modal shell, initially closed. static/js/overlay.js
// opens it on the first scroll past the threshold or on #ai-overlay.
func AIOverlay(csrfToken string) g.Node {
	return Div(
		ID("ai-overlay-root"),
		Class("fixed inset-0 z-50 flex items-center justify-center p-4 bg-black/50 backdrop-blur-sm"),
		g.Attr("hidden"),
		g.Attr("role", "dialog"),
		Aria("modal", "true"),
		Aria("labelledby", "ai-overlay-title"),
		Data("overlay", ""),
		Data("overlay-fragment", overlay.Fragment),
		Data("scroll-threshold", strconv.Itoa(overlay.ScrollThreshold)),

		Div(
			Class("glass rounded-3xl max-w-md w-full p-8 relative animate-slide-up"),
			Button(
				Type("button"),
				Class("absolute top-4 right-4 p-2 hover:bg-white/20 rounded-full transition-colors"),
				Aria("label", "Close modal"),
				Data("overlay-close", ""),
				Icon("lucide:x size-5 text-gray-600", ""),
			),
			Div(
				ID(OverlayPanelID),
				OverlayPanel(overlay.View{State: overlay.Idle}, csrfToken),
			),
		),
	)
}

// OverlayPanel renders the panel content for an overlay state
func OverlayPanel(view overlay.View, csrfToken string) g.Node {
	if view.State == overlay.Submitted {
		return overlayConfirmation(view.Email)
	}
	return overlayForm(view, csrfToken)
}

func overlayForm(view overlay.View, csrfToken string) g.Node {
	submitting := view.State == overlay.Submitting

	return g.Group([]g.Node{
		Div(
			Class("text-center mb-6"),
			Div(
				Class("relative w-16 h-16 mx-auto mb-4"),
				Img(
					Src("/static/images/agent/agent.jpg"),
					Alt("TriggerBy AI Agent"),
					Class("w-16 h-16 rounded-full object-cover"),
				),
				Div(
					Class("absolute -bottom-1 -right-1 w-6 h-6 bg-brand-green rounded-full flex items-center justify-center"),
					Icon("lucide:bot size-3 text-white", ""),
				),
			),
			H3(
				ID("ai-overlay-title"),
				Class("text-2xl font-bold text-brand-dark mb-2"),
				g.Text("TriggerBy AI Agent for Shopify"),
			),
			P(
				Class("text-gray-600"),
				g.Text("Get a transparent AI audit of your store. Receive a personalized diagnostic report in 30 minutes showing exactly which automations will drive the biggest revenue impact."),
			),
		),

		Form(
			Class("space-y-4"),
			Action(OverlaySubmitPath),
			Method("post"),
			g.Attr("hx-post", OverlaySubmitPath),
			g.Attr("hx-target", "#"+OverlayPanelID),
			g.Attr("hx-swap", "innerHTML"),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),
			Data("overlay-form", ""),

			g.If(csrfToken != "", Input(Type("hidden"), Name("_csrf"), Value(csrfToken))),

			overlayField("email", "email", "Email Address", "your@email.com", view.Email, submitting),
			overlayField("url", "url", "Shopify Store URL", "https://yourstore.myshopify.com", view.URL, submitting),

			Div(
				Class("text-red-600 text-sm"),
				g.Attr("role", "alert"),
				Data("overlay-error", ""),
				g.If(view.Error == "", g.Attr("hidden")),
				g.Text(overlay.RetryMessage),
			),

			Button(
				Type("submit"),
				Class("w-full bg-brand-green text-white py-3 px-6 rounded-lg font-semibold hover:bg-brand-green/90 transition-colors disabled:opacity-50 disabled:cursor-not-allowed flex items-center justify-center"),
				g.If(submitting, Disabled()),
				g.If(!submitting, Span(
					Class("label-idle inline-flex items-center"),
					g.Text("Get Free AI Audit"),
					Icon("lucide:arrow-right ml-2 size-5", ""),
				)),
				Span(
					Class("label-busy"),
					g.If(submitting, Data("active", "")),
					g.Text("Analyzing Store..."),
				),
			),
		),

		Div(
			Class("mt-6 text-center text-xs text-gray-500"),
			g.Text("✓ Free forever • ✓ No spam • ✓ Unsubscribe anytime"),
		),
	})
}

func overlayField(id, inputType, label, placeholder, value string, readOnly bool) g.Node {
	return Div(
		Label(
			For(id),
			Class("block text-sm font-medium text-gray-700 mb-1"),
			g.Text(label),
		),
		Input(
			Type(inputType),
			ID(id),
			Name(id),
			Value(value),
			Required(),
			Placeholder(placeholder),
			g.If(readOnly, ReadOnly()),
			Class("w-full px-4 py-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-brand-green focus:border-transparent"),
		),
	)
}

func overlayConfirmation(email string) g.Node {
	return Div(
		Class("text-center"),
		Data("overlay-submitted", ""),
		Icon("lucide:check-circle size-16 text-brand-green mx-auto mb-4", ""),
		H3(
			ID("ai-overlay-title"),
			Class("text-2xl font-bold text-brand-dark mb-2"),
			g.Text("Audit Request Received!"),
		),
		P(
			Class("text-gray-600 mb-6"),
			g.Text("Our AI is analyzing your store right now. You'll receive a detailed diagnostic report at "),
			Strong(g.Text(email)),
			g.Text(" within 30 minutes."),
		),
		Button(
			Type("button"),
			Class("bg-brand-green text-white py-3 px-6 rounded-lg font-semibold hover:bg-brand-green/90 transition-colors"),
			Data("overlay-close", ""),
			g.Text("Got it, thanks!"),
		),
	)
}

package components

import (
	"time"
	"triggerby_web/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// AutoplayDelay is the interval between automatic slide advances
const AutoplayDelay = 4 * time.Second

// CarouselOptions are passed verbatim to the Embla engine
type CarouselOptions struct {
	Loop      bool   `json:"loop"`
	Align     string `json:"align"`
	SkipSnaps bool   `json:"skipSnaps"`
	DragFree  bool   `json:"dragFree"`
}

// AutoplayOptions configure the Embla autoplay plugin. With
// StopOnInteraction false the plugin pauses while the user drags and
// resumes afterwards.
type AutoplayOptions struct {
	Enabled           bool `json:"enabled"`
	DelayMS           int  `json:"delay"`
	StopOnInteraction bool `json:"stopOnInteraction"`
}

// CarouselConfig is serialized into the data-carousel attribute read by static/js/carousel.js
type CarouselConfig struct {
	Options  CarouselOptions `json:"options"`
	Autoplay AutoplayOptions `json:"autoplay"`
}

// NewCarouselConfig returns the looping, start-aligned, free-drag configuration
func NewCarouselConfig(autoplay bool) CarouselConfig {
	return CarouselConfig{
		Options: CarouselOptions{
			Loop:      true,
			Align:     "start",
			SkipSnaps: false,
			DragFree:  true,
		},
		Autoplay: AutoplayOptions{
			Enabled:           autoplay,
			DelayMS:           int(AutoplayDelay / time.Millisecond),
			StopOnInteraction: false,
		},
	}
}

// CanScrollPrev reports whether the previous control is enabled at slide index
func (c CarouselConfig) CanScrollPrev(index, count int) bool {
	if c.Options.Loop {
		return true
	}
	return count > 0 && index > 0
}

// CanScrollNext reports whether the next control is enabled at slide index
func (c CarouselConfig) CanScrollNext(index, count int) bool {
	if c.Options.Loop {
		return true
	}
	return index < count-1
}

// Carousel renders one showcase as a navigable strip of automation cards.
// Controls start at slide 0; the client script keeps their state in sync.
func Carousel(showcase models.Showcase) g.Node {
	cfg := NewCarouselConfig(showcase.Autoplay)
	count := len(showcase.Items)

	return Div(
		Class("mb-16"),
		ID("carousel-"+showcase.ID),
		Data("carousel", JSON(cfg)),

		Div(
			Class("flex items-center justify-between mb-8"),
			Div(
				H3(Class("text-2xl font-bold text-brand-dark mb-2"), g.Text(showcase.Title)),
				P(Class("text-gray-600"), g.Text(showcase.Subtitle)),
			),
			Div(
				Class("flex gap-2"),
				carouselButton("prev", "Previous slide", "lucide:chevron-left", cfg.CanScrollPrev(0, count)),
				carouselButton("next", "Next slide", "lucide:chevron-right", cfg.CanScrollNext(0, count)),
			),
		),

		Div(
			Class("overflow-hidden"),
			Data("carousel-viewport", ""),
			Div(
				Class("flex"),
				g.Group(g.Map(showcase.Items, AutomationCard)),
			),
		),
	)
}

func carouselButton(direction, label, icon string, enabled bool) g.Node {
	return Button(
		Type("button"),
		Class("p-2 rounded-full bg-white border border-gray-200 hover:border-brand-green hover:text-brand-green transition-colors disabled:opacity-50 disabled:cursor-not-allowed"),
		Data("carousel-"+direction, ""),
		Aria("label", label),
		g.If(!enabled, Disabled()),
		Icon(icon+" size-5", ""),
	)
}

// AutomationCard renders one automation record
func AutomationCard(a models.Automation) g.Node {
	return Div(
		Class("flex-[0_0_280px] sm:flex-[0_0_320px] md:flex-[0_0_360px] lg:flex-[0_0_380px] min-w-0 mr-4"),
		ID("automation-"+a.ID),
		Div(
			Class("bg-white rounded-2xl shadow-lg hover:shadow-xl transition-all duration-300 overflow-hidden group h-full border border-gray-100"),
			Div(
				Class("relative h-48 overflow-hidden"),
				Img(
					Src(a.Image),
					Alt(a.Title),
					g.Attr("loading", "lazy"),
					Class("w-full h-full object-cover group-hover:scale-105 transition-transform duration-300"),
				),
				g.If(a.HasBadge(),
					Div(
						Class("absolute top-3 left-3 bg-brand-green text-white px-2 py-1 rounded-full text-xs font-medium"),
						g.Text(a.Badge),
					),
				),
			),
			Div(
				Class("p-6"),
				Div(
					Class("flex items-start justify-between mb-3"),
					H3(Class("text-lg font-bold text-brand-dark group-hover:text-brand-green transition-colors"), g.Text(a.Title)),
					Div(Class("text-brand-green font-bold text-sm whitespace-nowrap ml-2"), g.Text(a.KPI)),
				),
				P(Class("text-gray-600 text-sm mb-4 line-clamp-2"), g.Text(a.OneLiner)),
				g.If(a.HasCTA(),
					A(
						Href(a.CTAHref),
						Class("inline-flex items-center text-brand-green hover:text-brand-green/80 font-medium text-sm transition-colors"),
						g.Text(a.CTALabel),
						Icon("lucide:external-link ml-1 size-4", ""),
					),
				),
			),
		),
	)
}

package components

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Adapt exposes a gomponents tree as a templ component. build runs at
// render time so it can read request-scoped values (CSP nonce, asset
// versions) from ctx.
func Adapt(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// Icon renders an iconify icon. iconClass is "<set>:<name> [size classes...]".
// An empty ariaLabel marks the icon decorative. A blank iconClass renders nothing.
func Icon(iconClass, ariaLabel string) g.Node {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return nil
	}
	classes := "iconify inline-block"
	if len(parts) > 1 {
		classes += " " + strings.Join(parts[1:], " ")
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			Data("icon", parts[0]),
			g.Attr("role", "img"),
			Aria("label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		Data("icon", parts[0]),
		Aria("hidden", "true"),
	)
}

// Logo is the brand mark used in the header and footer
func Logo() g.Node {
	return A(
		Href("/"),
		Class("flex items-center space-x-2"),
		Icon("lucide:bot size-8 text-brand-green", ""),
		Span(Class("text-xl font-bold text-brand-dark"), g.Text("TriggerBy")),
	)
}

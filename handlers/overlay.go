package handlers

import (
	"context"
	"errors"
	"net/http"
	"triggerby_web/middleware"
	"triggerby_web/services/overlay"
	"triggerby_web/templates/components"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// OverlaySubmitHandler handles the HTMX form in the lead-capture overlay.
// It always answers 200 with the panel fragment for the resulting state so
// HTMX swaps it in: the confirmation on success, the form with its values
// and the retry message on failure.
func OverlaySubmitHandler(svc overlay.Submitter) echo.HandlerFunc {
	return func(c echo.Context) error {
		m := overlay.New()
		m.Open()
		if err := m.Edit(c.FormValue("email"), c.FormValue("url")); err != nil {
			return err
		}

		if err := m.Submit(c.Request().Context(), svc); err != nil {
			if !errors.Is(err, overlay.ErrFieldsRequired) {
				return err
			}
			c.Logger().Debugf("Overlay submitted with empty fields")
		}

		view := m.View()
		csrfToken := middleware.GetCSRFToken(c)
		component := components.Adapt(func(context.Context) g.Node {
			return components.OverlayPanel(view, csrfToken)
		})

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(http.StatusOK)
		return component.Render(c.Request().Context(), c.Response().Writer)
	}
}

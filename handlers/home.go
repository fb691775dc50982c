package handlers

import (
	"net/http"
	"triggerby_web/config"
	"triggerby_web/middleware"
	"triggerby_web/services"
	"triggerby_web/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the marketing home page
func LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	csrfToken := middleware.GetCSRFToken(c)

	component := pages.Landing(landingSEO(cfg), csrfToken, services.Showcases())

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// HealthHandler is the liveness probe
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

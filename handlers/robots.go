package handlers

import (
	"fmt"
	"net/http"
	"triggerby_web/config"

	"github.com/labstack/echo/v4"
)

// RobotsHandler serves /robots.txt
func RobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	return c.String(http.StatusOK, fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", cfg.AppURL))
}

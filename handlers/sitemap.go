package handlers

import (
	"encoding/xml"
	"net/http"
	"time"
	"triggerby_web/config"

	"github.com/labstack/echo/v4"
)

// now is replaced in tests
var now = time.Now

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// sitemapURLs lists the public pages. The site is a single page, so the
// automations section is listed as its own entry.
func sitemapURLs(baseURL string, lastMod time.Time) []SitemapURL {
	stamp := lastMod.Format(time.RFC3339)
	return []SitemapURL{
		{Loc: baseURL, LastMod: stamp, ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/#automations", LastMod: stamp, ChangeFreq: "monthly", Priority: 0.8},
	}
}

// GetSitemapHandler serves /sitemap.xml
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  sitemapURLs(cfg.AppURL, now()),
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"triggerby_web/config"
	"triggerby_web/handlers"
	"triggerby_web/middleware"
	"triggerby_web/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Intake service and its integration hooks
	var hooks []services.AuditHook
	if cfg.AuditAckEmail {
		hooks = append(hooks, services.NewAcknowledgementEmailHook(cfg))
	}
	auditService := services.NewAuditService(log.Default(), hooks...)
	log.Printf("[INFO] Audit hooks enabled: %v", auditService.Hooks())

	// Validate the embedded catalog at startup
	log.Printf("[INFO] Loaded %d automations", len(services.Automations()))

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echomiddleware.SecureWithConfig(secureConfig(cfg)))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.AuditContext())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	middleware.InitAssetVersions()
	e.Static("/static", middleware.StaticDir)

	csrf := middleware.CSRF(cfg.IsProduction())

	// Pages
	e.GET("/", handlers.LandingHandler, csrf)
	e.POST("/overlay/audit", handlers.OverlaySubmitHandler(auditService), csrf)

	// Public API
	e.POST("/api/audit", handlers.AuditHandler(auditService))

	// SEO and probes
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/health", handlers.HealthHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[INFO] Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}

func secureConfig(cfg *config.Config) echomiddleware.SecureConfig {
	sc := echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if cfg.IsProduction() {
		sc.HSTSMaxAge = 31536000
	}
	return sc
}

package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"coluccilaw/config"
	"coluccilaw/content"
	"coluccilaw/handlers"
	"coluccilaw/middleware"
	"coluccilaw/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// A broken content bundle must never reach a visitor
	if err := content.Validate(); err != nil {
		log.Fatalf("Content validation failed: %v", err)
	}

	// Compute asset hashes for cache busting
	middleware.InitAssetVersions(cfg.StaticDir)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	renderer, err := templates.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	e.Renderer = renderer

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Gzip())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.SiteLanguage())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.HTTPErrorHandler = handlers.ErrorHandler(e, cfg)

	// Static files
	e.Static("/static", cfg.StaticDir)
	e.Static("/images", cfg.StaticDir+"/images")
	e.Static("/og", cfg.StaticDir+"/og")
	e.File("/favicon.ico", cfg.StaticDir+"/favicon.ico")
	e.File("/robots.txt", cfg.StaticDir+"/robots.txt")

	// Routes
	e.GET("/", handlers.RootRedirectHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/practice-areas/:slug", handlers.LegacyPracticeRedirectHandler)
	e.GET("/:lang", handlers.HomeHandler)
	e.GET("/:lang/practice-areas/:slug", handlers.PracticeAreaHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

//go:build !cli
// +build !cli

package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"greenearth.GO/api"
	_ "greenearth.GO/api/cart"
	_ "greenearth.GO/api/graphql"
	_ "greenearth.GO/api/health"
	"greenearth.GO/config"
	"greenearth.GO/core/logging"
	"greenearth.GO/core/session"
	"greenearth.GO/cron"
	_ "greenearth.GO/cron/jobs"
	_ "greenearth.GO/custom"
	html "greenearth.GO/html"
	"greenearth.GO/service/storefront"
)

func main() {
	config.LoadEnv()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.AppConfig
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	// Initialize Redis
	switch err := config.InitRedis(cfg.Redis); {
	case err != nil:
		log.WithError(err).Warn("Redis configured but not reachable, sessions kept in memory.")
	case config.RedisClient != nil:
		log.Info("Redis connection successful.")
	default:
		log.Info("Redis not configured, sessions kept in memory.")
	}

	f, err := storefront.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("storefront: %v", err)
	}

	// Warm-up: the same startup sequence a first page view runs.
	listing := f.Startup(config.RedisCtx())
	log.WithFields(log.Fields{
		"categories": len(listing.Categories),
		"plants":     len(listing.Plants),
	}).Info("Catalog reachable")

	sched, err := cron.StartCron()
	if err != nil {
		log.Fatalf("cron: %v", err)
	}
	defer sched.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(logging.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(session.Middleware(cfg.Session.Cookie, cfg.Session.TTL))

	// Register the template renderer
	t, err := html.NewTemplate()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = t
	for _, tmpl := range t.Templates.Templates() {
		log.Debugf("Loaded template: %s", tmpl.Name())
	}

	api.ApplyModules(e.Group("/api"), f)
	api.ApplyRoutes(e, f)

	figure.NewFigure(cfg.AppName, "slant", true).Print()
	fmt.Println()
	log.Infof("Server running on :%s (catalog %s)", cfg.Port, cfg.Catalog.BaseURL)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

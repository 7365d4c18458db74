// Standalone GraphQL server: go run ./cmd/graphql
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	graphqlApi "greenearth.GO/api/graphql"
	"greenearth.GO/config"
	"greenearth.GO/core/logging"
	"greenearth.GO/core/session"
	"greenearth.GO/service/storefront"
)

func main() {
	config.LoadEnv()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.AppConfig
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if err := config.InitRedis(cfg.Redis); err != nil {
		log.WithError(err).Warn("Redis not reachable, sessions kept in memory")
	}

	f, err := storefront.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("storefront: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(logging.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(session.Middleware(cfg.Session.Cookie, cfg.Session.TTL))
	graphqlApi.RegisterGraphQLRoutes(e, f)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "larry3d", "puffy"}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	fig := figure.NewFigure(cfg.AppName+" GQL", gqlFonts[rnd.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", cfg.Port, cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

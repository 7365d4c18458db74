package health

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"greenearth.GO/api"
	"greenearth.GO/config"
	"greenearth.GO/service/storefront"
)

func init() {
	api.RegisterRoute(RegisterHealthRoutes)
}

// RegisterHealthRoutes exposes GET /health. It reports liveness only and never
// calls the catalog API.
func RegisterHealthRoutes(e *echo.Echo, _ *storefront.Storefront) {
	e.GET("/health", func(c echo.Context) error {
		sessions := "memory"
		if config.AppConfig != nil {
			sessions = config.AppConfig.Session.Store
		}
		if sessions == "redis" && config.RedisClient == nil {
			sessions = "memory"
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "sessions": sessions})
	})
}

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"greenearth.GO/core/registry"
	"greenearth.GO/service/storefront"
)

func TestRegistry_Register_Apply(t *testing.T) {
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryRoutes)
	RegisterGET("/test/registry/check", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	e := echo.New()
	ApplyRoutes(e, nil)

	req := httptest.NewRequest(http.MethodGet, "/test/registry/check", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRegistry_ModulesMountOnGroup(t *testing.T) {
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryAPI)
	RegisterModule(func(g *echo.Group, _ *storefront.Storefront) {
		g.GET("/module/check", func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		})
	})

	e := echo.New()
	ApplyModules(e.Group("/api"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/module/check", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestRegistry_LockedPanics(t *testing.T) {
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryRoutes)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic after lock")
		}
	}()
	RegisterGET("/late", func(c echo.Context) error { return nil })
}

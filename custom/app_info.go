package custom

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"greenearth.GO/api"
	"greenearth.GO/cmd"
	"greenearth.GO/config"
	gqlregistry "greenearth.GO/graphql/registry"
)

// AppInfo is the public, non-secret part of the running configuration.
type AppInfo struct {
	AppName      string `json:"app_name"`
	Env          string `json:"env"`
	CatalogURL   string `json:"catalog_url"`
	SessionStore string `json:"session_store"`
	ToastMS      int    `json:"toast_ms"`
}

// CurrentAppInfo reads AppConfig, falling back to defaults before it is loaded.
func CurrentAppInfo() AppInfo {
	cfg := config.AppConfig
	if cfg == nil {
		cfg = config.Defaults()
	}
	return AppInfo{
		AppName:      cfg.AppName,
		Env:          cfg.Env,
		CatalogURL:   cfg.Catalog.BaseURL,
		SessionStore: cfg.Session.Store,
		ToastMS:      cfg.ToastMS,
	}
}

func init() {
	// GraphQL extension: { _extension(name: "appInfo") }
	gqlregistry.Register("appInfo", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return CurrentAppInfo(), nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "config:show",
		Short: "Print the effective storefront configuration",
		RunE: func(c *cobra.Command, args []string) error {
			b, err := json.MarshalIndent(CurrentAppInfo(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), string(b))
			return nil
		},
	})

	// HTTP route
	api.RegisterGET("/info", func(c echo.Context) error {
		return c.JSON(200, CurrentAppInfo())
	})
}

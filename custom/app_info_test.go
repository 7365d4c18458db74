package custom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenearth.GO/api"
	"greenearth.GO/config"
	gqlregistry "greenearth.GO/graphql/registry"
)

func TestCurrentAppInfo_Defaults(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = nil
	defer func() { config.AppConfig = prev }()

	info := CurrentAppInfo()
	assert.Equal(t, "GreenEarth", info.AppName)
	assert.Equal(t, 1800, info.ToastMS)
	assert.Equal(t, "memory", info.SessionStore)
}

func TestAppInfoExtension(t *testing.T) {
	got, err := gqlregistry.Resolve(context.Background(), "appInfo", nil)
	require.NoError(t, err)
	assert.IsType(t, AppInfo{}, got)
}

func TestInfoRoute(t *testing.T) {
	e := echo.New()
	api.ApplyRoutes(e, nil)

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var info AppInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.NotEmpty(t, info.AppName)
}

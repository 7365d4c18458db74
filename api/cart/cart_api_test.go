package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"greenearth.GO/core/cache"
	"greenearth.GO/core/session"
	entity "greenearth.GO/model/entity/catalog"
	sessionRepo "greenearth.GO/model/repository/session"
	"greenearth.GO/service/storefront"
)

type noCatalog struct{}

func (noCatalog) Categories(ctx context.Context) ([]entity.Category, error) { return nil, nil }
func (noCatalog) Plants(ctx context.Context, id string) ([]entity.Plant, error) {
	return nil, nil
}
func (noCatalog) Plant(ctx context.Context, id string) (*entity.Plant, error) { return nil, nil }

const sessionID = "9b2f8a4e-3c1d-4e5f-8a7b-6c5d4e3f2a1b"

func setupEcho() *echo.Echo {
	repo := sessionRepo.NewMemoryRepository(cache.NewCache(), time.Hour)
	f := storefront.New(noCatalog{}, storefront.NewSessions(repo))
	e := echo.New()
	e.Use(session.Middleware("ge_session", time.Hour))
	RegisterCartRoutes(e.Group("/api"), f)
	return e
}

func do(e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, CartResponse) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(&http.Cookie{Name: "ge_session", Value: sessionID})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var resp CartResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestCartAPI_EmptyCart(t *testing.T) {
	e := setupEcho()
	rec, resp := do(e, http.MethodGet, "/api/cart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Cart.FormattedTotal != "$0.00" || resp.Cart.CheckoutEnabled {
		t.Errorf("unexpected empty cart: %+v", resp.Cart)
	}
}

func TestCartAPI_AddAndRemove(t *testing.T) {
	e := setupEcho()

	rec, resp := do(e, http.MethodPost, "/api/cart/items", `{"id":"1","name":"Oak","price":"12.5"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if resp.Message != "Oak added to cart" {
		t.Errorf("message = %q", resp.Message)
	}

	_, resp = do(e, http.MethodPost, "/api/cart/items", `{"id":"2","name":"Pine","price":7}`)
	if resp.Cart.FormattedTotal != "$19.50" || len(resp.Cart.Lines) != 2 {
		t.Fatalf("cart = %+v, want two lines totalling $19.50", resp.Cart)
	}

	rec, resp = do(e, http.MethodDelete, "/api/cart/items/0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Message != "Oak removed" || resp.Cart.FormattedTotal != "$7.00" {
		t.Errorf("after remove: %+v", resp)
	}
	if resp.Cart.Lines[0].Name != "Pine" || resp.Cart.Lines[0].Index != 0 {
		t.Errorf("remaining line = %+v, want Pine at 0", resp.Cart.Lines[0])
	}
}

func TestCartAPI_GarbagePriceIsZero(t *testing.T) {
	e := setupEcho()
	_, resp := do(e, http.MethodPost, "/api/cart/items", `{"id":"1","name":"Oak","price":"n/a"}`)
	if resp.Cart.FormattedTotal != "$0.00" {
		t.Errorf("total = %q, want $0.00", resp.Cart.FormattedTotal)
	}
}

func TestCartAPI_BadRequests(t *testing.T) {
	e := setupEcho()

	if rec, _ := do(e, http.MethodDelete, "/api/cart/items/5", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("out of range: status = %d, want 400", rec.Code)
	}
	if rec, _ := do(e, http.MethodDelete, "/api/cart/items/abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric: status = %d, want 400", rec.Code)
	}
	if rec, _ := do(e, http.MethodPost, "/api/cart/items", `{"name":"Oak"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing id: status = %d, want 400", rec.Code)
	}
}

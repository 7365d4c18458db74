package html

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenearth.GO/core/cache"
	"greenearth.GO/core/session"
	entity "greenearth.GO/model/entity/catalog"
	sessionRepo "greenearth.GO/model/repository/session"
	"greenearth.GO/service/storefront"
)

type stubCatalog struct {
	categories []entity.Category
	plants     map[string][]entity.Plant
	details    map[string]*entity.Plant
}

func (s *stubCatalog) Categories(ctx context.Context) ([]entity.Category, error) {
	return s.categories, nil
}

func (s *stubCatalog) Plants(ctx context.Context, categoryID string) ([]entity.Plant, error) {
	if entity.IsAll(categoryID) {
		categoryID = entity.AllCategoryID
	}
	list, ok := s.plants[categoryID]
	if !ok {
		return nil, errors.New("API error: 404")
	}
	return list, nil
}

func (s *stubCatalog) Plant(ctx context.Context, id string) (*entity.Plant, error) {
	p, ok := s.details[id]
	if !ok {
		return nil, errors.New("API error: 404")
	}
	return p, nil
}

const cookieName = "ge_session"

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	oak := entity.Plant{ID: "1", Name: "Oak", Description: "Hardwood", Category: "Shade Tree", Price: decimal.NewFromInt(10)}
	mango := entity.Plant{ID: "2", Name: "Mango", Description: "Sweet", Category: "Fruit Tree", Price: decimal.RequireFromString("20.5")}
	detail := oak
	detail.Details = "A long lived tree."
	fc := &stubCatalog{
		categories: []entity.Category{{ID: "1", Name: "Fruit Tree"}, {ID: "2", Name: "Shade Tree"}},
		plants: map[string][]entity.Plant{
			"all": {oak, mango},
			"1":   {mango},
		},
		details: map[string]*entity.Plant{"1": &detail},
	}
	repo := sessionRepo.NewMemoryRepository(cache.NewCache(), time.Hour)
	f := storefront.New(fc, storefront.NewSessions(repo))

	tmpl, err := NewTemplate()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = tmpl
	e.Use(session.Middleware(cookieName, time.Hour))
	RegisterStorefrontHTMLRoutes(e, f)
	return e
}

type visitor struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func (v *visitor) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			v.cookie = c
		}
	}
	return rec
}

func TestHomePage(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}
	rec := v.do(http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "All Trees")
	assert.Contains(t, body, "Fruit Tree")
	assert.Contains(t, body, "Hardwood...")
	assert.Contains(t, body, "$20.50")
	assert.Contains(t, body, `id="cartTotal">$0.00<`)
	assert.Contains(t, body, `id="checkoutBtn" disabled`)
	assert.NotContains(t, body, `id="modal"`)
	assert.NotNil(t, v.cookie)
}

func TestPlantGridFragment(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}
	rec := v.do(http.MethodGet, "/plants?category=1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mango")
	assert.NotContains(t, rec.Body.String(), "Oak")

	rec = v.do(http.MethodGet, "/plants?category=9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "card")
}

func TestAddAndRemoveFlow(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}
	v.do(http.MethodGet, "/", nil)

	rec := v.do(http.MethodPost, "/cart/items", url.Values{"id": {"1"}, "name": {"Oak"}, "price": {"10"}, "category": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?category=1", rec.Header().Get(echo.HeaderLocation))

	v.do(http.MethodPost, "/cart/items", url.Values{"id": {"1"}, "name": {"Oak"}, "price": {"10"}})

	body := v.do(http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, `id="cartTotal">$20.00<`)
	assert.Contains(t, body, "Oak added to cart")
	assert.NotContains(t, body, `id="checkoutBtn" disabled`)

	// Toast is consumed by the first render.
	body = v.do(http.MethodGet, "/", nil).Body.String()
	assert.NotContains(t, body, "Oak added to cart")

	rec = v.do(http.MethodPost, "/cart/items/0/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	body = v.do(http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, `id="cartTotal">$10.00<`)
	assert.Contains(t, body, "Oak removed")
}

func TestRemove_InvalidIndex(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}

	rec := v.do(http.MethodPost, "/cart/items/3/delete", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = v.do(http.MethodPost, "/cart/items/x/delete", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdd_NonNumericPriceCoercesToZero(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}
	v.do(http.MethodPost, "/cart/items", url.Values{"id": {"1"}, "name": {"Oak"}, "price": {"abc"}})

	body := v.do(http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, `id="cartTotal">$0.00<`)
	assert.NotContains(t, body, "NaN")
}

func TestOverlayFlow(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}

	rec := v.do(http.MethodPost, "/overlay/open", url.Values{"plant": {"1"}, "category": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?category=1", rec.Header().Get(echo.HeaderLocation))

	body := v.do(http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, `id="modal"`)
	assert.Contains(t, body, "A long lived tree.")
	assert.Contains(t, body, `id="modalAdd"`)

	rec = v.do(http.MethodPost, "/cart/items", url.Values{"source": {"overlay"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body = v.do(http.MethodGet, "/", nil).Body.String()
	assert.NotContains(t, body, `id="modal"`)
	assert.Contains(t, body, `id="cartTotal">$10.00<`)

	rec = v.do(http.MethodPost, "/cart/items", url.Values{"source": {"overlay"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOverlay_ErrorAndClose(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}

	rec := v.do(http.MethodPost, "/overlay/open", url.Values{"plant": {"404"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := v.do(http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, "Error loading details.")
	assert.NotContains(t, body, `id="modalAdd"`)

	rec = v.do(http.MethodPost, "/overlay/close", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body = v.do(http.MethodGet, "/", nil).Body.String()
	assert.NotContains(t, body, `id="modal"`)
}

func TestOverlay_PageLoadDoesNotOpen(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}

	body := v.do(http.MethodGet, "/?plant=1", nil).Body.String()
	assert.NotContains(t, body, `id="modal"`)
	body = v.do(http.MethodGet, "/", nil).Body.String()
	assert.NotContains(t, body, `id="modal"`)

	rec := v.do(http.MethodPost, "/overlay/open", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHomePage_CardTitleOpensOverlay(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}
	body := v.do(http.MethodGet, "/", nil).Body.String()

	assert.Contains(t, body, `action="/overlay/open"`)
	assert.Contains(t, body, `name="plant" value="2"`)
}

func TestStylesheet(t *testing.T) {
	v := &visitor{t: t, e: newTestServer(t)}
	rec := v.do(http.MethodGet, "/assets/styles.css", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	assert.NotEmpty(t, rec.Body.String())
}

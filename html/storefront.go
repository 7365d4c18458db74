package html

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"greenearth.GO/api"
	"greenearth.GO/config"
	"greenearth.GO/core/price"
	"greenearth.GO/core/session"
	"greenearth.GO/html/parts"
	cartEntity "greenearth.GO/model/entity/cart"
	"greenearth.GO/service/cart"
	"greenearth.GO/service/overlay"
	"greenearth.GO/service/storefront"
)

// PageView is the data behind layout.html and its partials.
type PageView struct {
	Title          string
	AppName        string
	CSS            template.CSS
	Categories     CategoryPanel
	ActiveCategory string
	Plants         []PlantCard
	Cart           cart.State
	Overlay        overlay.View
	Toast          string
	ToastMS        int
}

// addForm is what a card or the overlay posts to /cart/items.
type addForm struct {
	ID       string `form:"id"`
	Name     string `form:"name"`
	Price    string `form:"price"`
	Source   string `form:"source"`
	Category string `form:"category"`
}

func (f addForm) lineItem() cartEntity.LineItem {
	return cartEntity.LineItem{ID: f.ID, Name: f.Name, Price: price.Parse(f.Price)}
}

func init() {
	api.RegisterHTMLModule(RegisterStorefrontHTMLRoutes)
}

// RegisterStorefrontHTMLRoutes registers the page, the grid fragment and the
// click actions. Actions redirect back to the page (post/redirect/get).
func RegisterStorefrontHTMLRoutes(e *echo.Echo, f *storefront.Storefront) {
	e.GET("/", func(c echo.Context) error {
		ctx := c.Request().Context()
		page, err := f.Page(ctx, session.ID(c), c.QueryParam("category"))
		if err != nil {
			log.WithError(err).Error("render page")
			return c.String(http.StatusInternalServerError, "Session unavailable")
		}
		return c.Render(http.StatusOK, "layout.html", newPageView(page))
	})

	e.GET("/plants", func(c echo.Context) error {
		category := c.QueryParam("category")
		plants := f.SwitchCategory(c.Request().Context(), category)
		return c.Render(http.StatusOK, "plant_grid", PageView{
			ActiveCategory: category,
			Plants:         BuildPlantCards(plants),
		})
	})

	e.POST("/cart/items", func(c echo.Context) error {
		var form addForm
		if err := c.Bind(&form); err != nil {
			return c.String(http.StatusBadRequest, "Invalid cart item")
		}
		ctx := c.Request().Context()
		sid := session.ID(c)
		var err error
		if form.Source == "overlay" {
			_, err = f.AddFromOverlay(ctx, sid)
		} else {
			_, err = f.AddToCart(ctx, sid, form.lineItem())
		}
		switch {
		case errors.Is(err, storefront.ErrNothingToAdd):
			return c.String(http.StatusBadRequest, "Nothing to add")
		case err != nil:
			log.WithError(err).Error("add to cart")
			return c.String(http.StatusInternalServerError, "Session unavailable")
		}
		return c.Redirect(http.StatusSeeOther, categoryURL(form.Category))
	})

	e.POST("/cart/items/:index/delete", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid cart position")
		}
		_, err = f.RemoveFromCart(c.Request().Context(), session.ID(c), index)
		switch {
		case errors.Is(err, cart.ErrIndexOutOfRange):
			return c.String(http.StatusBadRequest, "Invalid cart position")
		case err != nil:
			log.WithError(err).Error("remove from cart")
			return c.String(http.StatusInternalServerError, "Session unavailable")
		}
		return c.Redirect(http.StatusSeeOther, categoryURL(c.FormValue("category")))
	})

	e.POST("/overlay/open", func(c echo.Context) error {
		plantID := c.FormValue("plant")
		if plantID == "" {
			return c.String(http.StatusBadRequest, "Missing plant")
		}
		if _, err := f.OpenDetail(c.Request().Context(), session.ID(c), plantID); err != nil {
			log.WithError(err).Error("open detail")
			return c.String(http.StatusInternalServerError, "Session unavailable")
		}
		return c.Redirect(http.StatusSeeOther, categoryURL(c.FormValue("category")))
	})

	e.POST("/overlay/close", func(c echo.Context) error {
		if err := f.CloseDetail(c.Request().Context(), session.ID(c)); err != nil {
			log.WithError(err).Error("close overlay")
			return c.String(http.StatusInternalServerError, "Session unavailable")
		}
		return c.Redirect(http.StatusSeeOther, categoryURL(c.FormValue("category")))
	})

	e.GET("/assets/styles.css", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(parts.GetCriticalCSS()))
	})
}

func newPageView(page storefront.Page) PageView {
	appName, toastMS := "GreenEarth", 1800
	if config.AppConfig != nil {
		appName, toastMS = config.AppConfig.AppName, config.AppConfig.ToastMS
	}
	categories := BuildCategoryPanel(page.Categories, page.ActiveCategory)
	if !page.CategoriesLoaded {
		// Category fetch failed: leave the panel in its initial empty state.
		categories = CategoryPanel{}
	}
	return PageView{
		Title:          appName,
		AppName:        appName,
		CSS:            template.CSS(parts.GetCriticalCSS()),
		Categories:     categories,
		ActiveCategory: page.ActiveCategory,
		Plants:         BuildPlantCards(page.Plants),
		Cart:           page.Cart,
		Overlay:        page.Overlay,
		Toast:          page.Toast,
		ToastMS:        toastMS,
	}
}

package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"greenearth.GO/api"
	"greenearth.GO/core/price"
	"greenearth.GO/core/session"
	cartEntity "greenearth.GO/model/entity/cart"
	cartService "greenearth.GO/service/cart"
	"greenearth.GO/service/storefront"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// AddItemRequest is the JSON body of POST /api/cart/items. Price may be a
// number or a numeric string.
type AddItemRequest struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Price interface{} `json:"price"`
}

// CartResponse is the cart state plus the acknowledgement of the last change.
type CartResponse struct {
	Message string            `json:"message,omitempty"`
	Cart    cartService.State `json:"cart"`
}

func RegisterCartRoutes(apiGroup *echo.Group, f *storefront.Storefront) {
	g := apiGroup.Group("/cart")

	// GET /api/cart
	g.GET("", func(c echo.Context) error {
		state, err := f.Cart(c.Request().Context(), session.ID(c))
		if err != nil {
			log.WithError(err).Error("load cart")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, CartResponse{Cart: state})
	})

	// POST /api/cart/items
	g.POST("/items", func(c echo.Context) error {
		var body AddItemRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.ID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
		}
		item := cartEntity.LineItem{ID: body.ID, Name: body.Name, Price: price.Coerce(body.Price)}
		ctx, sid := c.Request().Context(), session.ID(c)
		ack, err := f.AddToCart(ctx, sid, item)
		if err != nil {
			log.WithError(err).Error("add to cart")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return respond(c, f, http.StatusCreated, ack.Message)
	})

	// DELETE /api/cart/items/:index
	g.DELETE("/items/:index", func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "index must be an integer"})
		}
		ack, err := f.RemoveFromCart(c.Request().Context(), session.ID(c), index)
		if errors.Is(err, cartService.ErrIndexOutOfRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err != nil {
			log.WithError(err).Error("remove from cart")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return respond(c, f, http.StatusOK, ack.Message)
	})
}

func respond(c echo.Context, f *storefront.Storefront, status int, message string) error {
	state, err := f.Cart(c.Request().Context(), session.ID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(status, CartResponse{Message: message, Cart: state})
}

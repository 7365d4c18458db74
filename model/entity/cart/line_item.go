package cart

import "github.com/shopspring/decimal"

// LineItem is one entry in the cart, created by one add-to-cart action.
// The same plant added twice is two line items.
type LineItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

package catalog

import "github.com/shopspring/decimal"

// Plant is a catalog item. Listing responses leave Details empty; the detail
// endpoint may fill it.
type Plant struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Details     string          `json:"details,omitempty"`
}

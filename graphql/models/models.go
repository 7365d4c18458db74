package models

// --- Catalog ---

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Plant struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Image          string `json:"image"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Price          string `json:"price"`
	FormattedPrice string `json:"formatted_price"`
	Details        string `json:"details"`
}

// --- Cart ---

type CartLine struct {
	Index          int32  `json:"index"`
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          string `json:"price"`
	FormattedPrice string `json:"formatted_price"`
}

type Cart struct {
	Lines           []*CartLine `json:"lines"`
	Total           string      `json:"total"`
	FormattedTotal  string      `json:"formatted_total"`
	CheckoutEnabled bool        `json:"checkout_enabled"`
	Message         *string     `json:"message,omitempty"`
}

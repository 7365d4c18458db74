package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"greenearth.GO/core/price"
	entity "greenearth.GO/model/entity/cart"
)

// ErrIndexOutOfRange is returned by RemoveAt for a position outside the cart.
var ErrIndexOutOfRange = errors.New("cart: index out of range")

// Ack is the user-visible acknowledgement of a cart mutation.
type Ack struct {
	Message string
}

// Store is an ordered list of line items. The zero value is an empty cart.
// It is not safe for concurrent use; callers serialize access per visitor.
type Store struct {
	Items []entity.LineItem `json:"items"`
}

// Line is a rendered cart row. Index is the position RemoveAt expects and is
// only valid until the next removal.
type Line struct {
	Index          int             `json:"index"`
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	FormattedPrice string          `json:"formatted_price"`
}

// State is a full snapshot of the cart for rendering.
type State struct {
	Lines           []Line          `json:"lines"`
	Total           decimal.Decimal `json:"total"`
	FormattedTotal  string          `json:"formatted_total"`
	CheckoutEnabled bool            `json:"checkout_enabled"`
}

// Add appends item. Duplicates are kept as separate lines.
func (s *Store) Add(item entity.LineItem) Ack {
	s.Items = append(s.Items, item)
	return Ack{Message: fmt.Sprintf("%s added to cart", item.Name)}
}

// RemoveAt deletes the line at index; later lines move up by one.
func (s *Store) RemoveAt(index int) (Ack, error) {
	if index < 0 || index >= len(s.Items) {
		return Ack{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(s.Items))
	}
	name := s.Items[index].Name
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	return Ack{Message: fmt.Sprintf("%s removed", name)}, nil
}

func (s *Store) Len() int {
	return len(s.Items)
}

// Total sums every current line.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Price)
	}
	return total
}

// State recomputes every line and the total.
func (s *Store) State() State {
	lines := make([]Line, len(s.Items))
	for i, item := range s.Items {
		lines[i] = Line{
			Index:          i,
			ID:             item.ID,
			Name:           item.Name,
			Price:          item.Price,
			FormattedPrice: price.Format(item.Price),
		}
	}
	total := s.Total()
	return State{
		Lines:           lines,
		Total:           total,
		FormattedTotal:  price.Format(total),
		CheckoutEnabled: len(s.Items) > 0,
	}
}

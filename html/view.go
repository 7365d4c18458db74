package html

import (
	"greenearth.GO/core/price"
	cartEntity "greenearth.GO/model/entity/cart"
	entity "greenearth.GO/model/entity/catalog"
)

const (
	AllCategoryLabel = "All Trees"
	NoCategoriesText = "No categories found."
	excerptRunes     = 80
	excerptEllipsis  = "..."
)

// CategoryControl is one selectable entry of the category panel. ID is the
// category id, or a position key for categories that have none.
type CategoryControl struct {
	ID     string
	Label  string
	Active bool
}

// CategoryPanel is the sidebar. Controls always starts with "All Trees".
type CategoryPanel struct {
	Controls []CategoryControl
	Empty    bool
}

// BuildCategoryPanel lays out the synthetic "All Trees" control followed by
// the fetched categories and marks activeID as selected.
func BuildCategoryPanel(categories []entity.Category, activeID string) CategoryPanel {
	panel := CategoryPanel{
		Controls: make([]CategoryControl, 0, len(categories)+1),
		Empty:    len(categories) == 0,
	}
	panel.Controls = append(panel.Controls, CategoryControl{ID: entity.AllCategoryID, Label: AllCategoryLabel})
	for i, c := range categories {
		panel.Controls = append(panel.Controls, CategoryControl{ID: entity.CategoryKey(c, i), Label: c.Name})
	}
	return SelectCategory(panel, activeID)
}

// SelectCategory marks exactly one control active: the first with id, or
// "All Trees" when none matches.
func SelectCategory(panel CategoryPanel, id string) CategoryPanel {
	controls := make([]CategoryControl, len(panel.Controls))
	copy(controls, panel.Controls)
	active := 0
	if !entity.IsAll(id) {
		for i, c := range controls {
			if i > 0 && c.ID == id {
				active = i
				break
			}
		}
	}
	for i := range controls {
		controls[i].Active = i == active
	}
	panel.Controls = controls
	return panel
}

// ActiveID returns the id of the selected control.
func (p CategoryPanel) ActiveID() string {
	for _, c := range p.Controls {
		if c.Active {
			return c.ID
		}
	}
	return entity.AllCategoryID
}

// PlantCard is the grid entry for one plant. AddToCart is the payload the
// card's button posts back.
type PlantCard struct {
	ID             string
	Name           string
	Image          string
	Excerpt        string
	Category       string
	FormattedPrice string
	AddToCart      cartEntity.LineItem
}

func BuildPlantCards(plants []entity.Plant) []PlantCard {
	cards := make([]PlantCard, 0, len(plants))
	for _, p := range plants {
		cards = append(cards, PlantCard{
			ID:             p.ID,
			Name:           p.Name,
			Image:          p.Image,
			Excerpt:        Excerpt(p.Description),
			Category:       p.Category,
			FormattedPrice: price.Format(p.Price),
			AddToCart:      cartEntity.LineItem{ID: p.ID, Name: p.Name, Price: p.Price},
		})
	}
	return cards
}

// Excerpt keeps the first 80 characters and always appends "...", even when
// nothing was cut.
func Excerpt(description string) string {
	r := []rune(description)
	if len(r) > excerptRunes {
		r = r[:excerptRunes]
	}
	return string(r) + excerptEllipsis
}

package resolvers

import (
	"greenearth.GO/core/price"
	gqlmodels "greenearth.GO/graphql/models"
	entity "greenearth.GO/model/entity/catalog"
	"greenearth.GO/service/cart"
)

func toCategories(in []entity.Category) []*gqlmodels.Category {
	out := make([]*gqlmodels.Category, 0, len(in))
	for _, c := range in {
		out = append(out, &gqlmodels.Category{ID: c.ID, Name: c.Name})
	}
	return out
}

func toPlant(p entity.Plant) *gqlmodels.Plant {
	return &gqlmodels.Plant{
		ID:             p.ID,
		Name:           p.Name,
		Image:          p.Image,
		Description:    p.Description,
		Category:       p.Category,
		Price:          p.Price.StringFixed(2),
		FormattedPrice: price.Format(p.Price),
		Details:        p.Details,
	}
}

func toPlants(in []entity.Plant) []*gqlmodels.Plant {
	out := make([]*gqlmodels.Plant, 0, len(in))
	for _, p := range in {
		out = append(out, toPlant(p))
	}
	return out
}

func toCart(state cart.State, message string) *gqlmodels.Cart {
	lines := make([]*gqlmodels.CartLine, 0, len(state.Lines))
	for _, l := range state.Lines {
		lines = append(lines, &gqlmodels.CartLine{
			Index:          int32(l.Index),
			ID:             l.ID,
			Name:           l.Name,
			Price:          l.Price.StringFixed(2),
			FormattedPrice: l.FormattedPrice,
		})
	}
	c := &gqlmodels.Cart{
		Lines:           lines,
		Total:           state.Total.StringFixed(2),
		FormattedTotal:  state.FormattedTotal,
		CheckoutEnabled: state.CheckoutEnabled,
	}
	if message != "" {
		c.Message = &message
	}
	return c
}

package storefront

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	cartEntity "greenearth.GO/model/entity/cart"
	entity "greenearth.GO/model/entity/catalog"
	"greenearth.GO/service/cart"
	"greenearth.GO/service/catalog"
	"greenearth.GO/service/overlay"
)

// ErrNothingToAdd is returned by AddFromOverlay when no plant is shown.
var ErrNothingToAdd = errors.New("storefront: no plant shown in overlay")

// Listing is the category panel and plant grid content.
type Listing struct {
	Categories       []entity.Category
	CategoriesLoaded bool
	Plants           []entity.Plant
}

// Page is everything needed to render the storefront for one visitor.
type Page struct {
	Listing
	ActiveCategory string
	Cart           cart.State
	Overlay        overlay.View
	Toast          string
}

type Storefront struct {
	catalog  catalog.CatalogClient
	sessions *Sessions
}

func New(client catalog.CatalogClient, sessions *Sessions) *Storefront {
	return &Storefront{catalog: client, sessions: sessions}
}

func (f *Storefront) Sessions() *Sessions {
	return f.sessions
}

// Catalog exposes the client for surfaces that report fetch errors themselves.
func (f *Storefront) Catalog() catalog.CatalogClient {
	return f.catalog
}

// Startup loads categories and then the unscoped plant list. If categories
// fail, both stay empty.
func (f *Storefront) Startup(ctx context.Context) Listing {
	listing, _ := f.listing(ctx, entity.AllCategoryID)
	return listing
}

// SwitchCategory fetches the plant list for id ("" or "all" for every plant).
// Position keys of id-less categories also list every plant. A failed fetch
// yields an empty grid.
func (f *Storefront) SwitchCategory(ctx context.Context, id string) []entity.Plant {
	plants, err := f.catalog.Plants(ctx, entity.PlantScope(id))
	if err != nil {
		log.WithError(err).WithField("category", id).Error("Failed to load plants")
		return []entity.Plant{}
	}
	return plants
}

// listing runs the startup sequence for the requested category. Ids that are
// not in the category list fall back to "all".
func (f *Storefront) listing(ctx context.Context, categoryID string) (Listing, string) {
	categories, err := f.catalog.Categories(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load categories")
		return Listing{}, entity.AllCategoryID
	}
	active := entity.AllCategoryID
	for i, c := range categories {
		if key := entity.CategoryKey(c, i); !entity.IsAll(categoryID) && key == categoryID {
			active = key
			break
		}
	}
	return Listing{
		Categories:       categories,
		CategoriesLoaded: true,
		Plants:           f.SwitchCategory(ctx, active),
	}, active
}

// Page builds the full page for a visitor and consumes the pending toast.
func (f *Storefront) Page(ctx context.Context, sessionID, categoryID string) (Page, error) {
	listing, active := f.listing(ctx, categoryID)
	page := Page{Listing: listing, ActiveCategory: active}
	err := f.sessions.Update(ctx, sessionID, func(s *Session) error {
		page.Cart = s.Cart.State()
		page.Overlay = s.Overlay.View()
		page.Toast = s.Toast
		s.Toast = ""
		return nil
	})
	return page, err
}

func (f *Storefront) Cart(ctx context.Context, sessionID string) (cart.State, error) {
	sess, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return cart.State{}, err
	}
	return sess.Cart.State(), nil
}

func (f *Storefront) AddToCart(ctx context.Context, sessionID string, item cartEntity.LineItem) (cart.Ack, error) {
	var ack cart.Ack
	err := f.sessions.Update(ctx, sessionID, func(s *Session) error {
		ack = s.Cart.Add(item)
		s.Toast = ack.Message
		return nil
	})
	return ack, err
}

func (f *Storefront) RemoveFromCart(ctx context.Context, sessionID string, index int) (cart.Ack, error) {
	var ack cart.Ack
	err := f.sessions.Update(ctx, sessionID, func(s *Session) error {
		var err error
		ack, err = s.Cart.RemoveAt(index)
		if err != nil {
			return err
		}
		s.Toast = ack.Message
		return nil
	})
	return ack, err
}

// OpenDetail shows the overlay for plantID. The fetch runs outside the session
// lock; its result is dropped if another open or close happened meanwhile.
func (f *Storefront) OpenDetail(ctx context.Context, sessionID, plantID string) (overlay.View, error) {
	var gen uint64
	if err := f.sessions.Update(ctx, sessionID, func(s *Session) error {
		gen = s.Overlay.Open(plantID)
		return nil
	}); err != nil {
		return overlay.View{}, err
	}

	plant, fetchErr := f.catalog.Plant(ctx, plantID)
	if fetchErr != nil {
		log.WithError(fetchErr).WithField("plant", plantID).Error("Failed to fetch plant details")
	}

	var view overlay.View
	err := f.sessions.Update(ctx, sessionID, func(s *Session) error {
		if !s.Overlay.Resolve(gen, plant, fetchErr) {
			log.WithFields(log.Fields{"plant": plantID, "generation": gen}).Debug("Discarded stale plant details")
		}
		view = s.Overlay.View()
		return nil
	})
	return view, err
}

func (f *Storefront) CloseDetail(ctx context.Context, sessionID string) error {
	return f.sessions.Update(ctx, sessionID, func(s *Session) error {
		s.Overlay.Close()
		return nil
	})
}

// AddFromOverlay adds the plant shown in the overlay and closes it.
func (f *Storefront) AddFromOverlay(ctx context.Context, sessionID string) (cart.Ack, error) {
	var ack cart.Ack
	err := f.sessions.Update(ctx, sessionID, func(s *Session) error {
		view := s.Overlay.View()
		if !view.CanAdd {
			return ErrNothingToAdd
		}
		ack = s.Cart.Add(cartEntity.LineItem{
			ID:    s.Overlay.PlantID,
			Name:  view.Plant.Name,
			Price: view.Plant.Price,
		})
		s.Toast = ack.Message
		s.Overlay.Close()
		return nil
	})
	return ack, err
}

package resolvers

import (
	"context"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"

	"greenearth.GO/core/price"
	"greenearth.GO/graphql"
	gqlmodels "greenearth.GO/graphql/models"
	gqlregistry "greenearth.GO/graphql/registry"
	cartEntity "greenearth.GO/model/entity/cart"
	"greenearth.GO/service/storefront"
)

// ErrNoSession is returned by cart fields when the request carries no visitor id.
var ErrNoSession = errors.New("graphql: no session")

// Resolver implements every Query and Mutation field. Catalog fields report
// fetch errors instead of degrading to empty lists like the page does.
type Resolver struct {
	storefront *storefront.Storefront
}

func NewResolver(f *storefront.Storefront) *Resolver {
	return &Resolver{storefront: f}
}

func (r *Resolver) sessionID(ctx context.Context) (string, error) {
	id := graphql.SessionIDFromContext(ctx)
	if id == "" {
		return "", ErrNoSession
	}
	return id, nil
}

func (r *Resolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	categories, err := r.storefront.Catalog().Categories(ctx)
	if err != nil {
		return nil, err
	}
	return toCategories(categories), nil
}

func (r *Resolver) Plants(ctx context.Context, args graphql.PlantsArgs) ([]*gqlmodels.Plant, error) {
	category := ""
	if args.Category != nil {
		category = *args.Category
	}
	plants, err := r.storefront.Catalog().Plants(ctx, category)
	if err != nil {
		return nil, err
	}
	return toPlants(plants), nil
}

func (r *Resolver) Plant(ctx context.Context, args graphql.PlantArgs) (*gqlmodels.Plant, error) {
	p, err := r.storefront.Catalog().Plant(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPlant(*p), nil
}

func (r *Resolver) Cart(ctx context.Context) (*gqlmodels.Cart, error) {
	sid, err := r.sessionID(ctx)
	if err != nil {
		return nil, err
	}
	state, err := r.storefront.Cart(ctx, sid)
	if err != nil {
		return nil, err
	}
	return toCart(state, ""), nil
}

func (r *Resolver) AddToCart(ctx context.Context, args graphql.AddToCartArgs) (*gqlmodels.Cart, error) {
	sid, err := r.sessionID(ctx)
	if err != nil {
		return nil, err
	}
	item := cartEntity.LineItem{ID: args.ID, Name: args.Name}
	if args.Price != nil {
		item.Price = price.Parse(*args.Price)
	}
	ack, err := r.storefront.AddToCart(ctx, sid, item)
	if err != nil {
		return nil, err
	}
	return r.cartWithMessage(ctx, sid, ack.Message)
}

func (r *Resolver) RemoveFromCart(ctx context.Context, args graphql.RemoveFromCartArgs) (*gqlmodels.Cart, error) {
	sid, err := r.sessionID(ctx)
	if err != nil {
		return nil, err
	}
	ack, err := r.storefront.RemoveFromCart(ctx, sid, int(args.Index))
	if err != nil {
		return nil, err
	}
	return r.cartWithMessage(ctx, sid, ack.Message)
}

func (r *Resolver) cartWithMessage(ctx context.Context, sid, message string) (*gqlmodels.Cart, error) {
	state, err := r.storefront.Cart(ctx, sid)
	if err != nil {
		return nil, err
	}
	return toCart(state, message), nil
}

// Extension dispatches to registered custom resolvers and returns their
// result as a JSON string.
func (r *Resolver) Extension(ctx context.Context, args graphql.ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			log.WithError(err).WithField("extension", args.Name).Debug("Ignoring malformed extension args")
		}
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

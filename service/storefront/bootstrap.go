package storefront

import (
	"greenearth.GO/config"
	sessionRepo "greenearth.GO/model/repository/session"
	"greenearth.GO/service/catalog"
)

// NewFromConfig wires the catalog client and the configured session store.
func NewFromConfig(cfg *config.Config) (*Storefront, error) {
	repo, err := sessionRepo.GetSessionRepository(cfg.Session.Store, cfg.Session.TTL)
	if err != nil {
		return nil, err
	}
	return New(catalog.NewClient(cfg.Catalog), NewSessions(repo)), nil
}

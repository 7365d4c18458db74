package catalog

import (
	"net/url"
	"strings"
)

// Endpoints builds the catalog API URLs. All methods are pure string construction.
type Endpoints struct {
	BaseURL string
}

func NewEndpoints(baseURL string) Endpoints {
	return Endpoints{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (e Endpoints) Categories() string {
	return e.BaseURL + "/api/categories"
}

func (e Endpoints) AllPlants() string {
	return e.BaseURL + "/api/plants"
}

func (e Endpoints) PlantsByCategory(id string) string {
	return e.BaseURL + "/api/category/" + url.PathEscape(id)
}

func (e Endpoints) PlantDetail(id string) string {
	return e.BaseURL + "/api/plant/" + url.PathEscape(id)
}

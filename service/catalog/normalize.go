package catalog

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"greenearth.GO/core/price"
	entity "greenearth.GO/model/entity/catalog"
)

const unknownCategoryName = "Unknown"

// rawCategory accepts both key spellings the API has used.
type rawCategory struct {
	ID           string `mapstructure:"id"`
	LegacyID     string `mapstructure:"_id"`
	CategoryName string `mapstructure:"category_name"`
	Category     string `mapstructure:"category"`
}

type rawPlant struct {
	ID          string          `mapstructure:"id"`
	LegacyID    string          `mapstructure:"_id"`
	Name        string          `mapstructure:"name"`
	Image       string          `mapstructure:"image"`
	Description string          `mapstructure:"description"`
	Category    string          `mapstructure:"category"`
	Price       decimal.Decimal `mapstructure:"price"`
	Details     string          `mapstructure:"details"`
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

func decimalHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != decimalType {
			return data, nil
		}
		return price.Coerce(data), nil
	}
}

// decodeLoose fills out from a JSON object. Fields that cannot be decoded keep
// their zero value; the rest of the record is still used.
func decodeLoose(in interface{}, out interface{}) bool {
	if _, ok := in.(map[string]interface{}); !ok {
		return false
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       decimalHook(),
		Result:           out,
	})
	if err != nil {
		return false
	}
	if err := dec.Decode(in); err != nil {
		log.WithError(err).Debug("catalog: partially malformed record")
	}
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// normalizeCategories reads body.categories. Anything other than a list is empty.
func normalizeCategories(body map[string]interface{}) []entity.Category {
	list, _ := body["categories"].([]interface{})
	out := make([]entity.Category, 0, len(list))
	for _, item := range list {
		var raw rawCategory
		if !decodeLoose(item, &raw) {
			continue
		}
		out = append(out, entity.Category{
			ID:   firstNonEmpty(raw.ID, raw.LegacyID),
			Name: firstNonEmpty(raw.CategoryName, raw.Category, unknownCategoryName),
		})
	}
	return out
}

// plantList finds the plant array under data.plants or plants.
func plantList(body map[string]interface{}) []interface{} {
	if data, ok := body["data"].(map[string]interface{}); ok {
		if list, ok := data["plants"].([]interface{}); ok {
			return list
		}
	}
	list, _ := body["plants"].([]interface{})
	return list
}

func normalizePlant(item interface{}) (entity.Plant, bool) {
	var raw rawPlant
	if !decodeLoose(item, &raw) {
		return entity.Plant{}, false
	}
	return entity.Plant{
		ID:          firstNonEmpty(raw.ID, raw.LegacyID),
		Name:        raw.Name,
		Image:       raw.Image,
		Description: raw.Description,
		Category:    raw.Category,
		Price:       raw.Price,
		Details:     raw.Details,
	}, true
}

func normalizePlants(body map[string]interface{}) []entity.Plant {
	list := plantList(body)
	out := make([]entity.Plant, 0, len(list))
	for _, item := range list {
		if p, ok := normalizePlant(item); ok {
			out = append(out, p)
		}
	}
	return out
}

// normalizePlantDetail reads body.plant. A missing record yields an empty
// plant carrying the requested id.
func normalizePlantDetail(body map[string]interface{}, id string) entity.Plant {
	p, _ := normalizePlant(body["plant"])
	if p.ID == "" {
		p.ID = id
	}
	return p
}

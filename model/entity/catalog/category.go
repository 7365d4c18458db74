package catalog

import (
	"strconv"
	"strings"
)

// AllCategoryID is the sentinel id of the synthetic "All Trees" category.
const AllCategoryID = "all"

// Category is a grouping label for plants, normalized from the catalog API.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IsAll reports whether id selects the unscoped plant list.
func IsAll(id string) bool {
	return id == "" || id == AllCategoryID
}

const positionKeyPrefix = "@"

// CategoryKey identifies the category at position in the fetched list. A
// category without an id is keyed by its position so it can still be
// selected.
func CategoryKey(c Category, position int) string {
	if c.ID != "" {
		return c.ID
	}
	return positionKeyPrefix + strconv.Itoa(position)
}

// IsPositionKey reports whether key was made by CategoryKey for an id-less
// category.
func IsPositionKey(key string) bool {
	if !strings.HasPrefix(key, positionKeyPrefix) {
		return false
	}
	_, err := strconv.Atoi(key[len(positionKeyPrefix):])
	return err == nil
}

// PlantScope maps a selection key to the category id sent to the plants
// endpoint. Id-less categories list every plant.
func PlantScope(key string) string {
	if IsPositionKey(key) {
		return AllCategoryID
	}
	return key
}

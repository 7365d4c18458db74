package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "7", CategoryKey(Category{ID: "7"}, 3))
	assert.Equal(t, "@3", CategoryKey(Category{Name: "Unsorted"}, 3))

	assert.True(t, IsPositionKey("@3"))
	assert.False(t, IsPositionKey("@x"))
	assert.False(t, IsPositionKey("3"))

	assert.Equal(t, AllCategoryID, PlantScope("@3"))
	assert.Equal(t, "7", PlantScope("7"))
	assert.Equal(t, "", PlantScope(""))
}

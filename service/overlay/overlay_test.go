package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	entity "greenearth.GO/model/entity/catalog"
)

func TestOverlay_ZeroValueHidden(t *testing.T) {
	var o Overlay
	assert.False(t, o.Visible())
	assert.Equal(t, Hidden, o.View().State)
}

func TestOverlay_OpenShow(t *testing.T) {
	var o Overlay
	gen := o.Open("42")
	v := o.View()
	assert.Equal(t, Loading, v.State)
	assert.Equal(t, LoadingText, v.Body)
	assert.False(t, v.CanAdd)

	ok := o.Resolve(gen, &entity.Plant{ID: "42", Name: "Neem", Description: "short"}, nil)
	assert.True(t, ok)
	v = o.View()
	assert.Equal(t, Shown, v.State)
	assert.Equal(t, "Neem", v.Title)
	assert.Equal(t, "short", v.Body)
	assert.True(t, v.CanAdd)
}

func TestOverlay_ErrorThenReopen(t *testing.T) {
	var o Overlay
	gen42 := o.Open("42")
	o.Resolve(gen42, nil, errors.New("boom"))
	assert.Equal(t, Error, o.View().State)
	assert.Equal(t, ErrorText, o.View().Body)

	o.Close()
	assert.False(t, o.Visible())

	gen43 := o.Open("43")
	assert.True(t, o.Resolve(gen43, &entity.Plant{ID: "43", Name: "Teak"}, nil))
	assert.Equal(t, "Teak", o.View().Title)
	assert.Equal(t, "43", o.View().PlantID)
}

func TestOverlay_StaleResultDiscarded(t *testing.T) {
	var o Overlay
	gen42 := o.Open("42")
	gen43 := o.Open("43")
	assert.True(t, o.Resolve(gen43, &entity.Plant{ID: "43", Name: "Teak"}, nil))

	assert.False(t, o.Resolve(gen42, &entity.Plant{ID: "42", Name: "Neem"}, nil))
	assert.Equal(t, "Teak", o.View().Title)
}

func TestOverlay_ResultAfterCloseDiscarded(t *testing.T) {
	var o Overlay
	gen := o.Open("42")
	o.Close()
	assert.False(t, o.Resolve(gen, &entity.Plant{ID: "42"}, nil))
	assert.False(t, o.Visible())
}

func TestOverlay_DefaultTitleAndText(t *testing.T) {
	var o Overlay
	gen := o.Open("9")
	o.Resolve(gen, &entity.Plant{ID: "9"}, nil)
	v := o.View()
	assert.Equal(t, DefaultTitle, v.Title)
	assert.Equal(t, NoDetailsText, v.Body)
}

func TestDetailText_Priority(t *testing.T) {
	assert.Equal(t, "d", DetailText(entity.Plant{Details: "d", Description: "s"}))
	assert.Equal(t, "s", DetailText(entity.Plant{Description: "s"}))
	assert.Equal(t, NoDetailsText, DetailText(entity.Plant{}))
}

// Package overlay models the plant detail modal:
//
//	Hidden -> Loading -> Shown
//	Hidden -> Loading -> Error
//	any    -> Hidden (Close)
//
// Every Open and Close advances a generation counter. A fetch result is only
// admitted if it carries the current generation, so a slow response for an
// earlier open never overwrites a newer one.
package overlay

import (
	entity "greenearth.GO/model/entity/catalog"
)

type State string

const (
	Hidden  State = "hidden"
	Loading State = "loading"
	Shown   State = "shown"
	Error   State = "error"
)

const (
	LoadingText   = "Loading..."
	ErrorText     = "Error loading details."
	NoDetailsText = "No details available."
	DefaultTitle  = "Tree Detail"
)

// Overlay is the per-visitor modal state. The zero value is Hidden.
type Overlay struct {
	State      State         `json:"state"`
	PlantID    string        `json:"plant_id,omitempty"`
	Generation uint64        `json:"generation"`
	Plant      *entity.Plant `json:"plant,omitempty"`
}

func (o *Overlay) current() State {
	if o.State == "" {
		return Hidden
	}
	return o.State
}

// Open starts loading plant id and returns the generation the fetch must
// present to Resolve.
func (o *Overlay) Open(id string) uint64 {
	o.Generation++
	o.State = Loading
	o.PlantID = id
	o.Plant = nil
	return o.Generation
}

// Resolve admits a fetch result. It reports false, and changes nothing, when
// gen is stale or the overlay is no longer loading.
func (o *Overlay) Resolve(gen uint64, plant *entity.Plant, err error) bool {
	if gen != o.Generation || o.current() != Loading {
		return false
	}
	if err != nil || plant == nil {
		o.State = Error
		o.Plant = nil
		return true
	}
	o.State = Shown
	o.Plant = plant
	return true
}

// Close hides the overlay from any state and invalidates in-flight fetches.
func (o *Overlay) Close() {
	o.Generation++
	o.State = Hidden
	o.PlantID = ""
	o.Plant = nil
}

func (o *Overlay) Visible() bool {
	return o.current() != Hidden
}

// View is what the modal shows for the current state.
type View struct {
	State   State
	Visible bool
	PlantID string
	Title   string
	Body    string
	Plant   *entity.Plant
	// CanAdd is true only when a plant is shown; the add action is scoped to it.
	CanAdd bool
}

func (o *Overlay) View() View {
	v := View{State: o.current(), Visible: o.Visible(), PlantID: o.PlantID, Title: DefaultTitle}
	switch v.State {
	case Loading:
		v.Body = LoadingText
	case Error:
		v.Body = ErrorText
	case Shown:
		v.Plant = o.Plant
		v.CanAdd = true
		if o.Plant.Name != "" {
			v.Title = o.Plant.Name
		}
		v.Body = DetailText(*o.Plant)
	}
	return v
}

// DetailText picks the long-form details, then the short description, then a
// fixed placeholder.
func DetailText(p entity.Plant) string {
	switch {
	case p.Details != "":
		return p.Details
	case p.Description != "":
		return p.Description
	}
	return NoDetailsText
}

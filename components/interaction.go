package components

import "github.com/yohamta/donburi"

// Toggle is a two-valued feature flag flipped by user input
type Toggle struct {
	On bool
}

// Toggle flips the value and returns the new one
func (t *Toggle) Toggle() bool {
	t.On = !t.On
	return t.On
}

// Gate is the start overlay that must be dismissed before audio plays
type Gate struct {
	Shown bool
}

// Toggle flips visibility and returns the new value
func (g *Gate) Toggle() bool {
	g.Shown = !g.Shown
	return g.Shown
}

// Dismiss hides the gate. It reports true only on the shown->hidden transition.
func (g *Gate) Dismiss() bool {
	if !g.Shown {
		return false
	}
	g.Shown = false
	return true
}

// InteractionData holds every user-facing toggle of the greeting.
// Candle.On means blown out, Cake.On means cut, Card.On means open.
type InteractionData struct {
	Candle Toggle
	Cake   Toggle
	Card   Toggle
	Mute   Toggle
	Play   Toggle
	Gate   Gate
}

// NewInteractionData returns the state a freshly mounted scene starts with
func NewInteractionData() InteractionData {
	return InteractionData{
		Card: Toggle{On: true},
		Mute: Toggle{On: true},
		Gate: Gate{Shown: true},
	}
}

func (d *InteractionData) CandleBlown() bool { return d.Candle.On }
func (d *InteractionData) CakeCut() bool     { return d.Cake.On }
func (d *InteractionData) CardOpen() bool    { return d.Card.On }
func (d *InteractionData) Muted() bool       { return d.Mute.On }
func (d *InteractionData) Playing() bool     { return d.Play.On }
func (d *InteractionData) GateShown() bool   { return d.Gate.Shown }

var Interaction = donburi.NewComponentType[InteractionData]()

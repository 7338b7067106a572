package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a one-shot eased value (frame pop-in, gate fade).
// Delay counts down before the tween starts advancing.
type TweenData struct {
	Tween *gween.Tween
	Delay float32
	Value float32
	Done  bool
}

var Tween = donburi.NewComponentType[TweenData]()

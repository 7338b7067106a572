package tags

import "github.com/yohamta/donburi"

var (
	Cake        = donburi.NewTag().SetName("Cake")
	Card        = donburi.NewTag().SetName("Card")
	Knife       = donburi.NewTag().SetName("Knife")
	Frame       = donburi.NewTag().SetName("Frame")
	Skyline     = donburi.NewTag().SetName("Skyline")
	HitRegion   = donburi.NewTag().SetName("HitRegion")
	GateOverlay = donburi.NewTag().SetName("GateOverlay")
)

// Resolv tags for pointer hit testing
const (
	ResolvHitRegion = "hitregion"
	ResolvPointer   = "pointer"
)

package components

import "github.com/yohamta/donburi"

// OverrideRequest asks to replace one slot's image with Ref (a data: URL or resolved link).
// An empty Ref with Clear set restores the configured asset.
type OverrideRequest struct {
	Slot  string
	Ref   string
	Clear bool
}

// OverrideData queues override requests from the HUD and dropped files (singleton).
// Selected is the slot that dropped files and typed links apply to.
type OverrideData struct {
	Enabled  bool
	Selected int
	Queue    []OverrideRequest
	Status   string
}

var Override = donburi.NewComponentType[OverrideData]()

package systems

import (
	"log"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRouter turns this frame's discrete input into toggle flips.
// Every event flips; nothing is debounced or coalesced.
func UpdateRouter(ecs *ecs.ECS) {
	state := GetInteraction(ecs)
	if state == nil {
		return
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionBlowCandle).JustPressed && !input.TextFocused {
		state.Candle.Toggle()
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		if scene := GetScene(ecs); scene != nil {
			scene.Debug = !scene.Debug
		}
	}

	pointer := getOrCreatePointer(ecs)
	if pointer.Pressed && !pointer.Blocked() {
		RoutePointer(ecs, float64(pointer.X), float64(pointer.Y))
	}
}

// RoutePointer flips the toggle owned by the hit region under (x, y).
// It reports whether a region was hit. Presses are ignored while the gate is shown.
func RoutePointer(ecs *ecs.ECS, x, y float64) bool {
	state := GetInteraction(ecs)
	if state == nil || state.GateShown() {
		return false
	}

	region, ok := HitTest(ecs, x, y)
	if !ok {
		return false
	}

	switch components.HitRegion.Get(region).Target {
	case components.HitCandle:
		state.Candle.Toggle()
		pulseProp(ecs, tags.Cake)
	case components.HitCake:
		state.Cake.Toggle()
		pulseProp(ecs, tags.Cake)
	case components.HitCard:
		state.Card.Toggle()
		pulseProp(ecs, tags.Card)
	default:
		return false
	}
	return true
}

// HitTest returns the highest-priority hit region containing (x, y)
func HitTest(ecs *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	cursor := resolv.NewObject(x, y, 1, 1, tags.ResolvPointer)
	space.Add(cursor)
	defer space.Remove(cursor)

	check := cursor.Check(0, 0, tags.ResolvHitRegion)
	if check == nil {
		return nil, false
	}

	var best *donburi.Entry
	bestPriority := 0
	for _, obj := range check.Objects {
		// resolv checks by cell; keep only regions that really contain the point
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		hr := components.HitRegion.Get(entry)
		if best == nil || hr.Priority > bestPriority {
			best = entry
			bestPriority = hr.Priority
		}
	}
	return best, best != nil
}

func pulseProp(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	if entry, ok := tag.First(ecs.World); ok {
		TriggerSquashStretch(entry, 1/cfg.Cake.SquashOnPress, cfg.Cake.SquashOnPress)
	}
}

// PressMute flips the mute toggle and applies it to the player when one is attached
func PressMute(ecs *ecs.ECS) {
	state := GetInteraction(ecs)
	if state == nil {
		return
	}
	muted := state.Mute.Toggle()

	audio := GetAudio(ecs)
	if audio == nil || !audio.Ready() {
		return
	}
	if muted {
		audio.Player.Mute()
	} else {
		audio.Player.Unmute()
	}
}

// PressPlay pauses or resumes the music. It does nothing until the player is ready.
func PressPlay(ecs *ecs.ECS) {
	state := GetInteraction(ecs)
	audio := GetAudio(ecs)
	if state == nil || audio == nil || !audio.Ready() {
		return
	}
	if state.Playing() {
		audio.Player.Pause()
	} else {
		audio.Player.Play()
	}
	state.Play.Toggle()
}

// DismissGate hides the start gate and starts playback.
// Only the first call has any effect.
func DismissGate(ecs *ecs.ECS) bool {
	state := GetInteraction(ecs)
	if state == nil || !state.Gate.Dismiss() {
		return false
	}
	state.Play.On = true

	if audio := GetAudio(ecs); audio != nil && audio.Ready() {
		audio.Player.Play()
	}
	StartGateFade(ecs)
	log.Printf("[Scene] Gate dismissed")
	return true
}

package systems

import (
	"image"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Raw input sources, swapped out in tests
var (
	keyPressed   = ebiten.IsKeyPressed
	pointerPress = pollPointer
)

// SetKeySource replaces the raw key poller; nil restores ebiten's
func SetKeySource(fn func(ebiten.Key) bool) {
	if fn == nil {
		fn = ebiten.IsKeyPressed
	}
	keyPressed = fn
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls raw input into the Input and Pointer components.
// Must run BEFORE UpdateRouter in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if input.Subscribers > 0 {
		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if keyPressed(key) {
					input.Current[actionID] = true
				}
			}
		}
	}

	pointer := getOrCreatePointer(ecs)
	pointer.X, pointer.Y, pointer.Pressed = pointerPress()
}

// pollPointer reports a left click or a new touch this frame
func pollPointer() (x, y int, pressed bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}

// SetPointerBlockers replaces the HUD rectangles that swallow pointer presses
func SetPointerBlockers(ecs *ecs.ECS, rects []image.Rectangle) {
	pointer := getOrCreatePointer(ecs)
	pointer.Blockers = append(pointer.Blockers[:0], rects...)
}

// SetTextFocus records whether a HUD text field has keyboard focus.
// Scene key actions are skipped while it does.
func SetTextFocus(ecs *ecs.ECS, focused bool) {
	getOrCreateInput(ecs).TextFocused = focused
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// KeyboardSubscription keeps keyboard actions flowing into the Input component.
// Once released it delivers nothing; Release may be called any number of times.
type KeyboardSubscription struct {
	entry    *donburi.Entry
	released bool
}

// SubscribeKeyboard starts routing keyboard actions for this ECS
func SubscribeKeyboard(ecs *ecs.ECS) *KeyboardSubscription {
	getOrCreateInput(ecs).Subscribers++
	entry, _ := components.Input.First(ecs.World)
	return &KeyboardSubscription{entry: entry}
}

// Active reports whether the subscription still delivers
func (s *KeyboardSubscription) Active() bool {
	return s != nil && !s.released
}

// Release stops delivery and drops any key state captured for this frame
func (s *KeyboardSubscription) Release() {
	if !s.Active() {
		return
	}
	s.released = true
	if !s.entry.Valid() {
		return
	}
	input := components.Input.Get(s.entry)
	if input.Subscribers > 0 {
		input.Subscribers--
	}
	if input.Subscribers == 0 {
		input.Current = [cfg.ActionCount]bool{}
	}
}

package systems

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"sync"
	"testing"
	"time"

	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestTable builds the greeting's entities from the embedded layout without a window
func newTestTable(t *testing.T) *ecs.ECS {
	t.Helper()

	variant, err := cfg.ResolveVariant("skyline")
	if err != nil {
		t.Fatalf("ResolveVariant: %v", err)
	}
	layout, err := assets.LoadSceneLayout(cfg.Scene.LayoutPath)
	if err != nil {
		t.Fatalf("LoadSceneLayout: %v", err)
	}

	orig := droppedFiles
	droppedFiles = func() fs.FS { return nil }
	t.Cleanup(func() { droppedFiles = orig })

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateScene(context.Background(), e, variant, nil)
	factory.CreateSpace(e, layout.Width, layout.Height)
	for _, region := range layout.HitRegions {
		if _, err := factory.CreateHitRegion(e, region); err != nil {
			t.Fatalf("CreateHitRegion: %v", err)
		}
	}
	factory.CreateSprings(e)

	cake, _ := layout.Prop("cake")
	card, _ := layout.Prop("card")
	knife, _ := layout.Prop("knife")
	factory.CreateCake(e, cake)
	factory.CreateCard(e, card)
	factory.CreateKnife(e, knife)
	factory.CreateFrames(e, layout.Frames, variant.PhotoRefs())
	factory.CreateSkyline(e, variant.SkylineRef())
	factory.CreateGateOverlay(e, true)
	factory.CreateAudio(e, variant.MusicSettings())
	factory.CreateOverride(e, true)
	return e
}

// regionCenter returns the middle of the named hit region
func regionCenter(t *testing.T, e *ecs.ECS, target components.HitTarget) (float64, float64) {
	t.Helper()
	var found bool
	var x, y float64
	components.HitRegion.Each(e.World, func(entry *donburi.Entry) {
		if components.HitRegion.Get(entry).Target != target {
			return
		}
		o := components.Object.Get(entry)
		x, y = o.X+o.W/2, o.Y+o.H/2
		found = true
	})
	if !found {
		t.Fatalf("no %s region", target)
	}
	return x, y
}

// stubInput replaces the raw key and pointer sources for the duration of the test
func stubInput(t *testing.T) (keys map[ebiten.Key]bool, press func(x, y int)) {
	t.Helper()
	keys = map[ebiten.Key]bool{}
	var pending *image.Point

	origKey, origPointer := keyPressed, pointerPress
	keyPressed = func(k ebiten.Key) bool { return keys[k] }
	pointerPress = func() (int, int, bool) {
		if pending == nil {
			return 0, 0, false
		}
		p := *pending
		pending = nil
		return p.X, p.Y, true
	}
	t.Cleanup(func() {
		keyPressed, pointerPress = origKey, origPointer
	})

	return keys, func(x, y int) { pending = &image.Point{X: x, Y: y} }
}

// fakePlayer records what the audio system asked of it
type fakePlayer struct {
	playing bool
	muted   bool
	seeks   []time.Duration
	plays   int
	pauses  int
	seekErr error
}

func (p *fakePlayer) Play()           { p.playing = true; p.plays++ }
func (p *fakePlayer) Pause()          { p.playing = false; p.pauses++ }
func (p *fakePlayer) Mute()           { p.muted = true }
func (p *fakePlayer) Unmute()         { p.muted = false }
func (p *fakePlayer) IsPlaying() bool { return p.playing }

func (p *fakePlayer) SeekTo(offset time.Duration) error {
	p.seeks = append(p.seeks, offset)
	return p.seekErr
}

// fakeTextures serves images by ref; refs not in the map fail
type fakeTextures struct {
	mu     sync.Mutex
	images map[string]image.Image
	calls  []string
}

var errNotFound = errors.New("not found")

func (f *fakeTextures) Load(ctx context.Context, ref string, aspect float64) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, ref)
	if img, ok := f.images[ref]; ok {
		return img, nil
	}
	return nil, errNotFound
}

// memoryStore is an in-memory OverrideStore
type memoryStore struct {
	items   map[string][]byte
	deletes []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string][]byte{}}
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func (m *memoryStore) DeleteItem(key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.items, key)
	return nil
}

func useMemoryStore(t *testing.T) *memoryStore {
	t.Helper()
	store := newMemoryStore()
	SetOverrideStore(store)
	t.Cleanup(func() { SetOverrideStore(nil) })
	return store
}

// waitFor runs tick until done reports true or the deadline passes
func waitFor(t *testing.T, tick func(), done func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		tick()
		if done() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for condition")
}

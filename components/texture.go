package components

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TextureSource loads and decodes an image reference, cropping to aspect when > 0
type TextureSource interface {
	Load(ctx context.Context, ref string, aspect float64) (image.Image, error)
}

// TextureLoadResult is delivered by a background texture load
type TextureLoadResult struct {
	Ref   string
	Image image.Image
	Err   error
}

// TextureData is an image slot (photo frame or skyline) that loads asynchronously.
// Image is the decoded source; Ebiten is its GPU copy, created lazily by the renderer.
type TextureData struct {
	Slot     string
	Ref      string  // currently requested reference
	Default  string  // configured reference, restored when an override is cleared
	Fallback string  // loaded when Ref fails
	Aspect   float64 // crop to width/height when > 0
	Image    image.Image
	Ebiten   *ebiten.Image
	Failed   bool // Ref failed and the fallback (if any) is shown

	Pending chan TextureLoadResult
	Cancel  context.CancelFunc
}

// SetImage swaps the decoded image and drops the stale GPU copy
func (t *TextureData) SetImage(img image.Image) {
	t.Image = img
	if t.Ebiten != nil {
		t.Ebiten.Deallocate()
		t.Ebiten = nil
	}
}

// Loading reports whether a load is in flight
func (t *TextureData) Loading() bool {
	return t.Pending != nil
}

var Texture = donburi.NewComponentType[TextureData]()

package systems

import (
	"context"
	"log"

	"github.com/automoto/cakeday/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TextureSource loads and decodes an image reference
type TextureSource = components.TextureSource

// RequestTexture starts loading ref into tex, cancelling any load in flight.
// When ref fails the slot's fallback is loaded instead.
func RequestTexture(ctx context.Context, src TextureSource, tex *components.TextureData, ref string) {
	if tex.Cancel != nil {
		tex.Cancel()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	lctx, cancel := context.WithCancel(ctx)
	ch := make(chan components.TextureLoadResult, 1)
	tex.Ref = ref
	tex.Pending = ch
	tex.Cancel = cancel

	fallback, aspect := tex.Fallback, tex.Aspect
	go func() {
		img, err := src.Load(lctx, ref, aspect)
		if err != nil && fallback != "" && fallback != ref && lctx.Err() == nil {
			if fb, ferr := src.Load(lctx, fallback, aspect); ferr == nil {
				img = fb
			}
		}
		ch <- components.TextureLoadResult{Ref: ref, Image: img, Err: err}
	}()
}

// UpdateTextures swaps in finished texture loads on the update thread
func UpdateTextures(ecs *ecs.ECS) {
	components.Texture.Each(ecs.World, func(e *donburi.Entry) {
		tex := components.Texture.Get(e)
		if tex.Pending == nil {
			return
		}
		select {
		case res := <-tex.Pending:
			tex.Pending = nil
			if tex.Cancel != nil {
				tex.Cancel()
				tex.Cancel = nil
			}
			tex.Failed = res.Err != nil
			if res.Err != nil {
				log.Printf("Warning: Could not load image for %s: %v", tex.Slot, res.Err)
			}
			if res.Image != nil {
				tex.SetImage(res.Image)
			}
		default:
		}
	})
}

// CancelTextureLoads aborts every load in flight
func CancelTextureLoads(ecs *ecs.ECS) {
	components.Texture.Each(ecs.World, func(e *donburi.Entry) {
		tex := components.Texture.Get(e)
		if tex.Cancel != nil {
			tex.Cancel()
			tex.Cancel = nil
		}
	})
}

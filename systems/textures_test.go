package systems

import (
	"context"
	"image"
	"testing"

	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/automoto/cakeday/tags"
)

func TestBackgroundLoadFailureUsesFallback(t *testing.T) {
	e := newTestTable(t)
	skyline, ok := tags.Skyline.First(e.World)
	if !ok {
		t.Fatal("no skyline entity")
	}
	tex := components.Texture.Get(skyline)

	fallback := image.NewRGBA(image.Rect(0, 0, 8, 4))
	src := &fakeTextures{images: map[string]image.Image{
		cfg.Assets.SkylineFallback: fallback,
	}}

	RequestTexture(context.Background(), src, tex, tex.Default)
	if !tex.Loading() {
		t.Fatal("request should be in flight")
	}
	waitFor(t, func() { UpdateTextures(e) }, func() bool { return !tex.Loading() })

	if tex.Image != fallback {
		t.Error("fallback should be the active texture")
	}
	if !tex.Failed {
		t.Error("failed load should be recorded")
	}
	if len(src.calls) != 2 || src.calls[1] != cfg.Assets.SkylineFallback {
		t.Errorf("loads = %v", src.calls)
	}
}

func TestTextureLoadSuccess(t *testing.T) {
	e := newTestTable(t)
	skyline, _ := tags.Skyline.First(e.World)
	tex := components.Texture.Get(skyline)

	img := image.NewRGBA(image.Rect(0, 0, 16, 5))
	src := &fakeTextures{images: map[string]image.Image{"embed:sky.png": img}}

	RequestTexture(context.Background(), src, tex, "embed:sky.png")
	waitFor(t, func() { UpdateTextures(e) }, func() bool { return !tex.Loading() })

	if tex.Image != img || tex.Failed {
		t.Errorf("image=%v failed=%v", tex.Image == img, tex.Failed)
	}
	if tex.Ref != "embed:sky.png" {
		t.Errorf("ref = %q", tex.Ref)
	}
}

func TestNewRequestReplacesOld(t *testing.T) {
	e := newTestTable(t)
	skyline, _ := tags.Skyline.First(e.World)
	tex := components.Texture.Get(skyline)

	first := image.NewRGBA(image.Rect(0, 0, 1, 1))
	second := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src := &fakeTextures{images: map[string]image.Image{"a": first, "b": second}}

	RequestTexture(context.Background(), src, tex, "a")
	RequestTexture(context.Background(), src, tex, "b")
	waitFor(t, func() { UpdateTextures(e) }, func() bool { return !tex.Loading() })

	if tex.Image != second {
		t.Error("latest request should win")
	}
}

func TestCancelTextureLoads(t *testing.T) {
	e := newTestTable(t)
	skyline, _ := tags.Skyline.First(e.World)
	tex := components.Texture.Get(skyline)

	RequestTexture(context.Background(), &fakeTextures{}, tex, "missing")
	CancelTextureLoads(e)
	if tex.Cancel != nil {
		t.Error("cancel func should be cleared")
	}
}

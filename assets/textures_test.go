package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestTextureLoaderSources(t *testing.T) {
	pngBytes := encodePNG(t, 40, 20)

	dir := t.TempDir()
	localPath := filepath.Join(dir, "local.png")
	if err := os.WriteFile(localPath, pngBytes, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	loader := NewTextureLoader()
	loader.Client = srv.Client()

	tests := []struct {
		name    string
		ref     string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"embedded", "embed:images/photos/p1.png", 300, 208, false},
		{"local file", localPath, 40, 20, false},
		{"data url", EncodeDataURL(pngBytes), 40, 20, false},
		{"http", srv.URL + "/photo.png", 40, 20, false},
		{"http not found", srv.URL + "/missing.png", 0, 0, true},
		{"missing embed", "embed:images/nope.png", 0, 0, true},
		{"missing file", filepath.Join(dir, "nope.png"), 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := loader.Load(context.Background(), tt.ref, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTextureLoaderCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewTextureLoader()
	loader.Client = srv.Client()
	if _, err := loader.Load(ctx, srv.URL+"/slow.png", 0); err == nil {
		t.Fatal("expected error from cancelled load")
	}
}

func TestDecodeImageUnsupported(t *testing.T) {
	_, err := DecodeImage([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFitImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 200))

	tests := []struct {
		name   string
		aspect float64
		wantW  int
		wantH  int
	}{
		{"no crop", 0, 300, 200},
		{"square", 1, 200, 200},
		{"tall", 0.5, 100, 200},
		{"wide", 3, 300, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FitImage(src, tt.aspect).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("FitImage(aspect=%v) = %dx%d, want %dx%d", tt.aspect, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitImageDownscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, maxTextureSide*2, maxTextureSide))
	b := FitImage(src, 0).Bounds()
	if b.Dx() > maxTextureSide || b.Dy() > maxTextureSide {
		t.Errorf("FitImage left %dx%d, want within %d", b.Dx(), b.Dy(), maxTextureSide)
	}
}

package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when image bytes match no registered decoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

const (
	maxTextureBytes = 20 << 20
	maxTextureSide  = 1600
	embedPrefix     = "embed:"
)

// TextureLoader resolves image references: "embed:" paths, data: URLs,
// http(s) URLs and local files.
type TextureLoader struct {
	Client *http.Client
	FS     fs.FS
}

// NewTextureLoader returns a loader over the embedded images
func NewTextureLoader() *TextureLoader {
	return &TextureLoader{
		Client: &http.Client{Timeout: 20 * time.Second},
		FS:     imageFS,
	}
}

// Load reads and decodes ref, cropping to aspect (width/height) when aspect > 0
func (l *TextureLoader) Load(ctx context.Context, ref string, aspect float64) (image.Image, error) {
	data, err := l.read(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", shortRef(ref), err)
	}
	return FitImage(img, aspect), nil
}

func (l *TextureLoader) read(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case ref == "":
		return nil, errors.New("empty image reference")
	case strings.HasPrefix(ref, embedPrefix):
		path := strings.TrimPrefix(ref, embedPrefix)
		data, err := fs.ReadFile(l.FS, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded image %s: %w", path, err)
		}
		return data, nil
	case strings.HasPrefix(ref, "data:"):
		data, _, err := DecodeDataURL(ref)
		return data, err
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ResolveImageLink(ref))
	default:
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to read image file %s: %w", ref, err)
		}
		return data, nil
	}
}

func (l *TextureLoader) fetch(ctx context.Context, link string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", link, err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", link, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", link, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTextureBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", link, err)
	}
	return data, nil
}

// DecodeImage decodes any registered image format
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, ErrUnsupportedFormat
	}
	return img, err
}

// FitImage center-crops img to aspect and scales it down to a sane texture size
func FitImage(img image.Image, aspect float64) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	if aspect > 0 {
		cw, ch := w, h
		if float64(w)/float64(h) > aspect {
			cw = int(float64(h) * aspect)
		} else {
			ch = int(float64(w) / aspect)
		}
		if cw > 0 && ch > 0 && (cw != w || ch != h) {
			img = imaging.CropCenter(img, cw, ch)
			w, h = cw, ch
		}
	}

	if w > maxTextureSide || h > maxTextureSide {
		img = imaging.Fit(img, maxTextureSide, maxTextureSide, imaging.Lanczos)
	}
	return img
}

// shortRef keeps data: URLs out of log lines
func shortRef(ref string) string {
	if strings.HasPrefix(ref, "data:") && len(ref) > 32 {
		return ref[:32] + "..."
	}
	return ref
}

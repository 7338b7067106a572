package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:layout
	layoutFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// PropSpawn anchors a prop (cake, card, knife) in layout pixels
type PropSpawn struct {
	Name string
	X, Y float64
}

// FrameSpawn places a photo frame. Angle is in radians.
type FrameSpawn struct {
	Name       string
	Slot       string
	X, Y, W, H float64
	Angle      float64
}

// HitRegionSpawn is a clickable rectangle
type HitRegionSpawn struct {
	Name       string
	X, Y, W, H float64
	Priority   int
}

// SceneLayout is the table arrangement read from a Tiled map
type SceneLayout struct {
	Name       string
	Width      int
	Height     int
	Props      map[string]PropSpawn
	Frames     []FrameSpawn
	HitRegions []HitRegionSpawn
}

// Prop returns the named prop anchor
func (l *SceneLayout) Prop(name string) (PropSpawn, bool) {
	p, ok := l.Props[name]
	return p, ok
}

// LoadSceneLayout reads a layout from the embedded layout directory
func LoadSceneLayout(path string) (*SceneLayout, error) {
	return LoadSceneLayoutFS(layoutFS, path)
}

// LoadSceneLayoutFS reads a layout from any filesystem
func LoadSceneLayoutFS(fsys fs.FS, path string) (*SceneLayout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load layout %s: %w", path, err)
	}

	layout := &SceneLayout{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Props:  make(map[string]PropSpawn),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Props":
			for _, o := range og.Objects {
				layout.Props[o.Name] = PropSpawn{Name: o.Name, X: o.X, Y: o.Y}
			}
		case "Frames":
			for _, o := range og.Objects {
				slot := o.Properties.GetString("slot")
				if slot == "" {
					slot = o.Name
				}
				layout.Frames = append(layout.Frames, FrameSpawn{
					Name:  o.Name,
					Slot:  slot,
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Angle: o.Properties.GetFloat("angle") * math.Pi / 180,
				})
			}
		case "HitRegions":
			for _, o := range og.Objects {
				layout.HitRegions = append(layout.HitRegions, HitRegionSpawn{
					Name:     o.Name,
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Priority: o.Properties.GetInt("priority"),
				})
			}
		}
	}

	// Frames drawn back to front: smaller (farther) frames first
	sort.SliceStable(layout.Frames, func(i, j int) bool {
		return layout.Frames[i].W*layout.Frames[i].H < layout.Frames[j].W*layout.Frames[j].H
	})

	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", path, err)
	}
	return layout, nil
}

func (l *SceneLayout) validate() error {
	for _, name := range []string{"cake", "card", "knife"} {
		if _, ok := l.Props[name]; !ok {
			return fmt.Errorf("missing prop %q", name)
		}
	}
	for _, hr := range l.HitRegions {
		if hr.W <= 0 || hr.H <= 0 {
			return fmt.Errorf("hit region %q has no area", hr.Name)
		}
	}
	return nil
}

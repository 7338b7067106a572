package systems

import (
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/cakeday/assets"
	"github.com/automoto/cakeday/components"
	cfg "github.com/automoto/cakeday/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// droppedFiles is swapped out in tests
var droppedFiles = ebiten.DroppedFiles

// GetOverride returns the override panel state, or nil when the variant has none
func GetOverride(ecs *ecs.ECS) *components.OverrideData {
	entry, ok := components.Override.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Override.Get(entry)
}

// SelectedSlot is the slot dropped files and links apply to
func SelectedSlot(ov *components.OverrideData) string {
	slots := cfg.Assets.Slots()
	if ov.Selected < 0 || ov.Selected >= len(slots) {
		return slots[0]
	}
	return slots[ov.Selected]
}

// CycleOverrideSlot moves the selection to the next slot and returns it
func CycleOverrideSlot(ecs *ecs.ECS) string {
	ov := GetOverride(ecs)
	if ov == nil {
		return ""
	}
	ov.Selected = (ov.Selected + 1) % len(cfg.Assets.Slots())
	return SelectedSlot(ov)
}

// ApplyLink queues a user-supplied link for the selected slot
func ApplyLink(ecs *ecs.ECS, raw string) {
	ov := GetOverride(ecs)
	if ov == nil {
		return
	}
	ref := assets.ResolveImageLink(raw)
	if ref == "" {
		ov.Status = "Paste a link first"
		return
	}
	ov.Queue = append(ov.Queue, components.OverrideRequest{Slot: SelectedSlot(ov), Ref: ref})
}

// ApplyImageBytes queues raw image bytes (a picked or dropped file) for the selected slot
func ApplyImageBytes(ecs *ecs.ECS, data []byte) {
	ov := GetOverride(ecs)
	if ov == nil {
		return
	}
	ov.Queue = append(ov.Queue, components.OverrideRequest{Slot: SelectedSlot(ov), Ref: assets.EncodeDataURL(data)})
}

// ClearAllOverrides queues a reset of every slot
func ClearAllOverrides(ecs *ecs.ECS) {
	ov := GetOverride(ecs)
	if ov == nil {
		return
	}
	for _, slot := range cfg.Assets.Slots() {
		ov.Queue = append(ov.Queue, components.OverrideRequest{Slot: slot, Clear: true})
	}
}

// UpdateOverrides picks up dropped files and applies queued overrides
func UpdateOverrides(ecs *ecs.ECS) {
	ov := GetOverride(ecs)
	if ov == nil || !ov.Enabled {
		return
	}

	if files := droppedFiles(); files != nil {
		if data, name, err := firstDroppedFile(files); err != nil {
			log.Printf("Warning: Could not read dropped file: %v", err)
			ov.Status = "Could not read dropped file"
		} else if data != nil {
			log.Printf("[Override] %s dropped onto %s", name, SelectedSlot(ov))
			ApplyImageBytes(ecs, data)
		}
	}

	if len(ov.Queue) == 0 {
		return
	}
	scene := GetScene(ecs)
	for _, req := range ov.Queue {
		applyOverride(ecs, scene, ov, req)
	}
	ov.Queue = ov.Queue[:0]
}

func applyOverride(ecs *ecs.ECS, scene *components.SceneData, ov *components.OverrideData, req components.OverrideRequest) {
	entry, ok := findTexture(ecs, req.Slot)
	if !ok {
		// slot not shown by this variant; still keep persistence in sync
		if req.Clear {
			_ = ClearOverride(req.Slot)
		}
		return
	}
	tex := components.Texture.Get(entry)

	ref := req.Ref
	if req.Clear {
		ref = tex.Default
		_ = ClearOverride(req.Slot)
		ov.Status = "Cleared"
	} else {
		_ = SaveOverride(req.Slot, ref)
		ov.Status = fmt.Sprintf("Updated %s", req.Slot)
	}

	if scene == nil || scene.Textures == nil {
		tex.Ref = ref
		return
	}
	RequestTexture(scene.Ctx, scene.Textures, tex, ref)
}

// firstDroppedFile reads the first regular file in a drop
func firstDroppedFile(files fs.FS) ([]byte, string, error) {
	var data []byte
	var name string
	err := fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || data != nil {
			return nil
		}
		b, err := fs.ReadFile(files, p)
		if err != nil {
			return err
		}
		data, name = b, path.Base(p)
		return fs.SkipAll
	})
	if err != nil {
		return nil, "", err
	}
	return data, name, nil
}

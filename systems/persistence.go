package systems

import (
	"log"

	cfg "github.com/automoto/cakeday/config"
	"github.com/quasilyte/gdata"
)

// OverrideStore persists image overrides keyed by slot name
type OverrideStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
	DeleteItem(key string) error
}

var overrideStore OverrideStore

// InitPersistence opens the gdata store for override slots
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Assets.PersistAppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	overrideStore = m
	return nil
}

// SetOverrideStore replaces the backing store; nil disables persistence
func SetOverrideStore(s OverrideStore) {
	overrideStore = s
}

// LoadOverride returns the saved reference for slot, if any
func LoadOverride(slot string) (string, bool) {
	if overrideStore == nil {
		return "", false
	}
	data, err := overrideStore.LoadItem(slot)
	if err != nil {
		log.Printf("Warning: Could not load override %s: %v", slot, err)
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// LoadOverrides returns every saved override by slot
func LoadOverrides() map[string]string {
	saved := make(map[string]string)
	for _, slot := range cfg.Assets.Slots() {
		if ref, ok := LoadOverride(slot); ok {
			saved[slot] = ref
		}
	}
	return saved
}

// SaveOverride stores ref for slot
func SaveOverride(slot, ref string) error {
	if overrideStore == nil {
		return nil
	}
	if err := overrideStore.SaveItem(slot, []byte(ref)); err != nil {
		log.Printf("Warning: Could not save override %s: %v", slot, err)
		return err
	}
	return nil
}

// ClearOverride removes the saved reference for slot
func ClearOverride(slot string) error {
	if overrideStore == nil {
		return nil
	}
	if err := overrideStore.DeleteItem(slot); err != nil {
		log.Printf("Warning: Could not clear override %s: %v", slot, err)
		return err
	}
	return nil
}

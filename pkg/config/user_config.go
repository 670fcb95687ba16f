package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// UserConfigAppName is the gdata application name of the per-user store.
const UserConfigAppName = "invaders"

// Storage keys of the per-user override fragment.
const (
	userConfigObject   = "config"
	userConfigProperty = "game"
)

// OpenUserStore opens the per-user gdata store.
//
// Returns:
//   - *gdata.Manager: the store, or nil when the platform offers no storage
//   - error: why the store could not be opened (not fatal for callers)
func OpenUserStore(appName string) (*gdata.Manager, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}
	return manager, nil
}

// ApplyUserOverrides overlays the user's stored YAML fragment on cfg and
// re-validates it.
//
// A nil manager or a missing fragment leaves cfg untouched. When the
// fragment is unreadable or produces an invalid config, cfg is restored to
// its previous values and the error is returned.
func ApplyUserOverrides(manager *gdata.Manager, cfg *GameConfig) error {
	if manager == nil {
		return nil
	}
	if !manager.ObjectPropExists(userConfigObject, userConfigProperty) {
		return nil
	}

	data, err := manager.LoadObjectProp(userConfigObject, userConfigProperty)
	if err != nil {
		return fmt.Errorf("failed to load user config: %w", err)
	}

	backup := *cfg
	backup.Swarm.RowTiers = append([]int(nil), cfg.Swarm.RowTiers...)
	if err := cfg.Overlay(data); err != nil {
		*cfg = backup
		return fmt.Errorf("failed to apply user config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		*cfg = backup
		return fmt.Errorf("invalid user config: %w", err)
	}

	log.Printf("[Config] Applied user overrides (%d bytes)", len(data))
	return nil
}

// SaveUserConfig writes cfg to the per-user store so it can be edited and
// picked up by ApplyUserOverrides on the next start.
//
// A nil manager is a no-op.
func SaveUserConfig(manager *gdata.Manager, cfg *GameConfig) error {
	if manager == nil {
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal game config: %w", err)
	}
	if err := manager.SaveObjectProp(userConfigObject, userConfigProperty, data); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	log.Printf("[Config] User config saved")
	return nil
}

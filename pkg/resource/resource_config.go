package resource

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceConfig is the top-level resource configuration.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  sprites:
//	    images: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of images loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource is a single image definition.
//
// Example:
//
//	- id: SPRITE_PLAYER
//	  path: sprites/player
type ImageResource struct {
	ID   string `yaml:"id"`   // Sprite ID
	Path string `yaml:"path"` // Relative file path from base_path; ".png" is implied
}

// ParseResourceConfig parses resources.yaml content.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if len(cfg.Groups) == 0 {
		return nil, fmt.Errorf("resource config has no groups")
	}
	for name, group := range cfg.Groups {
		seen := make(map[string]bool, len(group.Images))
		for i, img := range group.Images {
			if img.ID == "" || img.Path == "" {
				return nil, fmt.Errorf("group %s: image %d needs both id and path", name, i)
			}
			if seen[img.ID] {
				return nil, fmt.Errorf("group %s: duplicate image id %s", name, img.ID)
			}
			seen[img.ID] = true
		}
	}
	return &cfg, nil
}

// buildFullPath joins the base path and a resource's relative path.
//
// Parameters:
//   - basePath: the base path from ResourceConfig (e.g., "assets")
//   - relativePath: the resource's relative path (e.g., "sprites/player.png")
//
// Returns:
//   - the full file path (e.g., "assets/sprites/player.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}

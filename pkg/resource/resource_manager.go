// Package resource loads sprite images described by data/resources.yaml.
//
// Images are decoded into image.Image values scaled to entity sizes; each
// frontend converts them to whatever it draws with. The package does not
// depend on a graphics backend.
package resource

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"golang.org/x/image/draw"
)

// ReadFileFunc reads a resource file. embedded.ReadFile and os.ReadFile
// both satisfy it.
type ReadFileFunc func(path string) ([]byte, error)

// ResourceManager loads and caches images by path and by sprite ID.
//
// It is not safe for concurrent use; load everything before the game loop
// starts.
type ResourceManager struct {
	readFile   ReadFileFunc
	imageCache map[string]image.Image // path -> decoded image

	config      *ResourceConfig
	resourceMap map[string]string // sprite ID -> full path
}

// NewResourceManager creates a manager reading files through readFile.
// A nil readFile reads from disk.
func NewResourceManager(readFile ReadFileFunc) *ResourceManager {
	if readFile == nil {
		readFile = os.ReadFile
	}
	return &ResourceManager{
		readFile:    readFile,
		imageCache:  make(map[string]image.Image),
		resourceMap: make(map[string]string),
	}
}

// LoadResourceConfig reads and parses the resource configuration.
//
// Parameters:
//   - configPath: e.g. "data/resources.yaml"
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("failed to load resource config %s: %w", configPath, err)
	}

	rm.config = cfg
	rm.buildResourceMap()
	return nil
}

func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}
	}
}

// LoadImage decodes the image at path and caches it.
func (rm *ResourceManager) LoadImage(path string) (image.Image, error) {
	if img, ok := rm.imageCache[path]; ok {
		return img, nil
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rm.imageCache[path] = img
	return img, nil
}

// LoadImageByID loads the image configured for a sprite ID.
func (rm *ResourceManager) LoadImageByID(id string) (image.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	path, ok := rm.resourceMap[id]
	if !ok {
		return nil, fmt.Errorf("resource ID not found: %s", id)
	}
	return rm.LoadImage(path)
}

// LoadSprites loads every image of a group, scaled to the entity size given
// in sizes. Sprites missing from sizes keep their natural size.
//
// A sprite that cannot be loaded is logged and left out of the result; the
// game still starts and drawing it is a no-op. Only a missing config or
// group is an error.
func (rm *ResourceManager) LoadSprites(groupName string, sizes map[components.SpriteID]components.Bounds) (map[components.SpriteID]image.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return nil, fmt.Errorf("resource group not found: %s", groupName)
	}

	sprites := make(map[components.SpriteID]image.Image, len(group.Images))
	for _, res := range group.Images {
		img, err := rm.LoadImageByID(res.ID)
		if err != nil {
			log.Printf("[ResourceManager] Skipping sprite %s: %v", res.ID, err)
			continue
		}
		id := components.SpriteID(res.ID)
		if size, ok := sizes[id]; ok {
			img = Scale(img, size.Width, size.Height)
		}
		sprites[id] = img
	}

	for _, id := range components.AllSprites() {
		if _, ok := sprites[id]; !ok {
			log.Printf("[ResourceManager] Sprite %s has no image, it will not be drawn", id)
		}
	}
	log.Printf("[ResourceManager] Loaded %d sprites from group %s", len(sprites), groupName)
	return sprites, nil
}

// Scale resizes img to w x h with nearest-neighbour sampling, which keeps
// pixel art crisp. img is returned unchanged when it already has that size
// or the size is not positive.
func Scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() == w && b.Dy() == h) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// SpriteSizes maps every sprite to the size of the entity drawing it.
func SpriteSizes(cfg *config.GameConfig) map[components.SpriteID]components.Bounds {
	alien := components.Bounds{Width: cfg.Swarm.AlienWidth, Height: cfg.Swarm.AlienHeight}
	bullet := components.Bounds{Width: cfg.Bullet.Width, Height: cfg.Bullet.Height}

	sizes := map[components.SpriteID]components.Bounds{
		components.SpritePlayer:         {Width: cfg.Player.Width, Height: cfg.Player.Height},
		components.SpriteAlienDestroyed: alien,
		components.SpritePlayerBullet:   bullet,
		components.SpriteAlienBullet:    bullet,
	}
	for tier := 0; tier < components.AlienTierCount; tier++ {
		sizes[components.AlienSprite(tier, components.PhaseA)] = alien
		sizes[components.AlienSprite(tier, components.PhaseB)] = alien
	}
	return sizes
}

// MissingFiles returns, sorted, the configured paths that exists reports as
// absent.
func (rm *ResourceManager) MissingFiles(exists func(path string) bool) []string {
	var missing []string
	for _, path := range rm.resourceMap {
		if !exists(path) {
			missing = append(missing, path)
		}
	}
	sort.Strings(missing)
	return missing
}

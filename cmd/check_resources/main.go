// check_resources validates data/game.yaml and checks that every sprite
// listed in data/resources.yaml exists and decodes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/resource"
)

func main() {
	root := flag.String("root", ".", "repository root containing data/ and assets/")
	flag.Parse()

	problems := check(*root)
	for _, p := range problems {
		fmt.Println("✗", p)
	}
	if len(problems) > 0 {
		fmt.Printf("%d problem(s) found\n", len(problems))
		os.Exit(1)
	}
	fmt.Println("✓ all resources OK")
}

func check(root string) []string {
	var problems []string

	cfg, err := config.LoadGameConfig(filepath.Join(root, "data", "game.yaml"))
	if err != nil {
		problems = append(problems, err.Error())
		cfg = config.Default()
	}

	rm := resource.NewResourceManager(func(path string) ([]byte, error) {
		return os.ReadFile(filepath.Join(root, path))
	})
	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
		return append(problems, err.Error())
	}

	for _, path := range rm.MissingFiles(func(path string) bool {
		_, err := os.Stat(filepath.Join(root, path))
		return err == nil
	}) {
		problems = append(problems, "missing file "+path)
	}

	sprites, err := rm.LoadSprites("sprites", resource.SpriteSizes(cfg))
	if err != nil {
		return append(problems, err.Error())
	}
	for _, id := range components.AllSprites() {
		if _, ok := sprites[id]; !ok {
			problems = append(problems, fmt.Sprintf("sprite %s has no usable image", id))
		}
	}
	return problems
}

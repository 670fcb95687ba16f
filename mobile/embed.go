//go:build mobile

// Resources for the mobile binding. They are copied here before an
// ebitenmobile build; see mobile.go.

package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/game.yaml data/resources.yaml
var dataFS embed.FS

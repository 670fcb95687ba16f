// embed.go declares the embedded resources. It must stay in the repository
// root, next to assets/ and data/, because //go:embed only reaches files
// below the declaring package.
package main

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/game.yaml data/resources.yaml
var dataFS embed.FS

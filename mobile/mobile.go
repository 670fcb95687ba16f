//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// It is compiled only with -tags mobile. The assets/ and data/ directories
// must be copied next to this file before building:
//
//	cp -r assets data mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.invaders -o build/android/invaders.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Invaders.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/embedded"
)

func init() {
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("failed to start game: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy is an exported no-op so ebitenmobile recognises the package.
func Dummy() {}

//go:build !mobile

package utils

import "os"

// IsMobile reports whether the game runs on a touch device. Desktop builds
// return false unless INVADERS_MOBILE_EMULATE=1, which shows the touch zone
// overlay for local debugging.
func IsMobile() bool {
	return os.Getenv("INVADERS_MOBILE_EMULATE") == "1"
}

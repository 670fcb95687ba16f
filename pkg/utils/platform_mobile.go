//go:build mobile

package utils

// IsMobile reports whether the game runs on a touch device.
func IsMobile() bool {
	return true
}

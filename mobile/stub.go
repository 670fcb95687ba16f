//go:build !mobile

// Package mobile is the ebitenmobile binding; the real entry point is only
// compiled with -tags mobile.
package mobile

// Dummy is an exported no-op so the package builds without the mobile tag.
func Dummy() {}

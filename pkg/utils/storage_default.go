//go:build !android

package utils

// EnsureStorageDir prepares the per-user store directory. gdata creates it
// on its own outside Android, so this is a no-op.
func EnsureStorageDir() error {
	return nil
}

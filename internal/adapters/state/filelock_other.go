//go:build !unix

package state

// lockFile is a no-op where flock(2) is unavailable.
func lockFile(string) (func() error, error) {
	return func() error { return nil }, nil
}

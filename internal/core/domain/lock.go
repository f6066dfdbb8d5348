package domain

import "path/filepath"

// LockPath returns the advisory lock file guarding buildDir. It lives next to the
// directory so a clean build can remove and recreate the directory while holding it.
func LockPath(buildDir string) string {
	dir := filepath.Clean(buildDir)
	return filepath.Join(filepath.Dir(dir), "."+filepath.Base(dir)+".lock")
}

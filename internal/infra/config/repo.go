// Where: internal/infra/config/repo.go
// What: Generated project root discovery.
// Why: Let the config patcher run from any directory inside a generated app.
package config

import (
	"os"
	"path/filepath"
)

// projectMarkers identify the root of a generated app.
var projectMarkers = []string{
	"firebase.json",
	".firebaserc",
}

// ResolveProjectRoot searches upward from startDir for a generated app root.
// When none is found startDir itself is returned, so later steps report the
// concrete missing directory.
func ResolveProjectRoot(startDir string) string {
	if root, ok := findProjectRoot(startDir); ok {
		return root
	}
	return startDir
}

func findProjectRoot(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

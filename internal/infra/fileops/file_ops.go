// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for scaffold output and config patching.
// Why: Keep create/overwrite semantics in one place.
package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned when a destination already exists and overwrite is off.
var ErrExists = errors.New("file already exists")

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, dirMode)
}

// WriteNewFile writes content to path, creating parent directories. Without
// overwrite an existing path fails with ErrExists and is left untouched.
func WriteNewFile(path string, content []byte, overwrite bool) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	if !overwrite && FileOrDirExists(path) {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("destination is a directory: %s", path)
	}
	if err := os.WriteFile(path, content, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReplaceFile overwrites an existing file in place, keeping its permissions.
func ReplaceFile(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func FileOrDirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

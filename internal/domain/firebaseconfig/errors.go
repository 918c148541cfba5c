// Where: internal/domain/firebaseconfig/errors.go
// What: Failure kinds of a single-environment patch.
// Why: Let callers tell missing prerequisites from external tool failures.
package firebaseconfig

import "errors"

var (
	ErrDirNotFound  = errors.New("terraform directory not found")
	ErrFileNotFound = errors.New("environment file not found")
)

// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Surface every failure once, in one format, with exit code 1.
package command

import (
	"fmt"
	"io"

	"github.com/poruru-code/appgen/internal/infra/ui"
)

// exitWithError prints an error message to the error writer and returns
// exit code 1 for CLI error handling.
func exitWithError(errOut io.Writer, err error) int {
	ui.New(errOut).Error(fmt.Sprintf("✗ %v", err))
	return 1
}

// Where: cmd/appgen/main.go
// What: appgen entrypoint.
// Why: Run the app generator with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru-code/appgen/internal/command"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(command.RunGenerate(os.Args[1:], deps))
}

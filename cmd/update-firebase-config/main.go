// Where: cmd/update-firebase-config/main.go
// What: update-firebase-config entrypoint.
// Why: Patch generated environment files from terraform outputs.
package main

import (
	"fmt"
	"os"

	"github.com/poruru-code/appgen/internal/command"
	"github.com/poruru-code/appgen/internal/infra/shell"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(command.RunUpdateFirebaseConfig(os.Args[1:], command.Dependencies{
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		WorkingDir: wd,
		Runner:     shell.ExecRunner{},
	}))
}

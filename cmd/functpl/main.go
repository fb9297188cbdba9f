// Where: cli/cmd/functpl/main.go
// What: CLI entrypoint.
// Why: Execute functpl commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/functpl/cli/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}

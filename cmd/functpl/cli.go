// Where: cli/cmd/functpl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/functpl/cli/internal/command"
	"github.com/poruru-code/functpl/cli/internal/infra/config"
	"github.com/poruru-code/functpl/cli/internal/infra/interaction"
	"github.com/poruru-code/functpl/cli/internal/usecase/catalog"
)

var (
	stdin  = os.Stdin
	stdout = os.Stdout
	stderr = os.Stderr
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// Piped stdin gets a line prompter since the TUI needs a terminal.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:        stdout,
		ErrOut:     stderr,
		Prompter:   newPrompter(),
		Catalog:    catalog.NewService(),
		ConfigPath: config.GlobalConfigPath,
		Getwd:      os.Getwd,
	}
}

func newPrompter() interaction.Prompter {
	if interaction.IsTerminal(stdin) {
		return interaction.HuhPrompter{}
	}
	return interaction.NewLinePrompter(stdin, stderr)
}

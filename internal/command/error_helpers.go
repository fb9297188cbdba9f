// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output with follow-up hints.
// Why: Keep failure output and exit codes consistent across commands.
package command

import (
	"errors"
	"fmt"
	"io"

	"github.com/poruru-code/functpl/cli/internal/usecase/catalog"
)

// exitWithError prints an error message, plus a hint for catalog lookups
// the user can correct, and returns exit code 1.
func exitWithError(out io.Writer, err error) int {
	userUI := legacyUI(out)
	userUI.Warn(fmt.Sprintf("✗ %v", err))
	if hint := errorHint(err); hint != "" {
		userUI.Info("  " + hint)
	}
	return 1
}

func errorHint(err error) string {
	var invalid *catalog.InvalidValueError
	switch {
	case errors.Is(err, catalog.ErrTemplateNotFound):
		return fmt.Sprintf("Run `%s list` to see available template ids.", cliName())
	case errors.Is(err, catalog.ErrSettingNotFound):
		return fmt.Sprintf("Run `%s show <id>` to see the settings a template prompts for.", cliName())
	case errors.Is(err, catalog.ErrMissingValue):
		return "Pass the value with --set <setting>=<value>."
	case errors.As(err, &invalid):
		return fmt.Sprintf("Pass another value with --set %s=<value>.", invalid.Setting)
	default:
		return ""
	}
}

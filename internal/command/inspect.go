// Where: cli/internal/command/inspect.go
// What: auth-level and function-name command handlers.
// Why: Inspect function artifacts without loading a feed.
package command

import (
	"io"

	"github.com/poruru-code/functpl/cli/internal/domain/funcconfig"
	"github.com/poruru-code/functpl/cli/internal/infra/ui"
	"github.com/poruru-code/functpl/cli/internal/usecase/catalog"
)

func runAuthLevel(cli CLI, _ Dependencies, out io.Writer) int {
	userUI, err := commandUI(out, cli)
	if err != nil {
		return exitWithError(out, err)
	}
	inspection, err := catalog.InspectFile(cli.AuthLevel.Path)
	if err != nil {
		return exitWithError(out, err)
	}

	trigger := inspection.TriggerType
	if trigger == "" {
		trigger = "-"
	}
	userUI.Block("🔐", "Function configuration", []ui.KeyValue{
		{Key: "Trigger", Value: trigger},
		{Key: "HTTP trigger", Value: inspection.HTTP},
		{Key: "Timer trigger", Value: inspection.Timer},
		{Key: "Disabled", Value: inspection.Disabled},
		{Key: "Auth level", Value: string(inspection.AuthLevel)},
	})
	return 0
}

func runFunctionName(cli CLI, _ Dependencies, out io.Writer) int {
	name, err := funcconfig.FunctionNameFromID(cli.FunctionName.ResourceID)
	if err != nil {
		return exitWithError(out, err)
	}
	legacyUI(out).Info(name)
	return 0
}

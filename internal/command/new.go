// Where: cli/internal/command/new.go
// What: new command handler.
// Why: Collect prompted settings and emit the rendered function.json.
package command

import (
	"fmt"
	"io"

	"github.com/poruru-code/functpl/cli/internal/infra/config"
	"github.com/poruru-code/functpl/cli/internal/infra/fileops"
	"github.com/poruru-code/functpl/cli/internal/usecase/catalog"
)

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	session, err := openCatalog(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	// Resolve through findTemplate first so a typo gets suggestions.
	tmpl, err := session.findTemplate(cli.New.ID)
	if err != nil {
		return exitWithError(out, err)
	}

	var ask catalog.AskFunc
	if !cli.New.NoPrompt && deps.Prompter != nil {
		ask = catalog.PromptAsker(deps.Prompter, session.ui)
	}
	result, err := catalog.Generate(session.templates, catalog.GenerateRequest{
		TemplateID: tmpl.ID,
		Provided:   cli.New.Set,
		Ask:        ask,
	})
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.New.Output == "" {
		if _, err := out.Write(result.FunctionJSON); err != nil {
			return exitWithError(out, err)
		}
	} else {
		if err := fileops.WriteFile(cli.New.Output, result.FunctionJSON, 0o644); err != nil {
			return exitWithError(out, err)
		}
		session.ui.Success(fmt.Sprintf("Wrote %s from %s", cli.New.Output, result.Template.ID))
	}

	if !cli.New.NoSave && session.configPath != "" {
		if err := config.RecordUsage(session.configPath, session.feedDir, result.Template.ID); err != nil {
			session.ui.Warn(fmt.Sprintf("Warning: failed to save global config: %v", err))
		}
	}
	return 0
}

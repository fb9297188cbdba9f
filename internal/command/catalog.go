// Where: cli/internal/command/catalog.go
// What: list, show, bindings, and validate command handlers.
// Why: Read-only catalog commands share feed loading and rendering.
package command

import (
	"fmt"
	"io"

	"github.com/poruru-code/functpl/cli/internal/infra/render"
	"github.com/poruru-code/functpl/cli/internal/usecase/catalog"
)

func runList(cli CLI, deps Dependencies, out io.Writer) int {
	session, err := openCatalog(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}

	filter := catalog.Filter{
		Language:  cli.List.Language,
		Category:  cli.List.Category,
		HTTPOnly:  cli.List.HTTP,
		TimerOnly: cli.List.Timer,
		Query:     cli.List.Query,
	}
	text, err := render.RenderTemplateList(filter.Apply(session.templates.FunctionTemplates))
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprint(out, text)
	reportFailures(session.ui, session.templates.Failures, cli.List.ShowFailures)
	return 0
}

func runShow(cli CLI, deps Dependencies, out io.Writer) int {
	session, err := openCatalog(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	tmpl, err := session.findTemplate(cli.Show.ID)
	if err != nil {
		return exitWithError(out, err)
	}
	text, err := render.RenderTemplateDetail(tmpl)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprint(out, text)
	return 0
}

func runBindings(cli CLI, deps Dependencies, out io.Writer) int {
	session, err := openCatalog(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	text, err := render.RenderBindingList(session.templates.BindingTemplates)
	if err != nil {
		return exitWithError(out, err)
	}
	fmt.Fprint(out, text)
	return 0
}

func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	session, err := openCatalog(cli, deps, out)
	if err != nil {
		return exitWithError(out, err)
	}
	tmpl, err := session.findTemplate(cli.Validate.ID)
	if err != nil {
		return exitWithError(out, err)
	}
	if err := catalog.ValidateSetting(tmpl, cli.Validate.Setting, cli.Validate.Value); err != nil {
		return exitWithError(out, err)
	}
	session.ui.Success(fmt.Sprintf("%q is a valid value for %s", cli.Validate.Value, cli.Validate.Setting))
	return 0
}

// Where: cli/internal/command/session.go
// What: Shared feed resolution and loading for catalog commands.
// Why: Every catalog command resolves config, feed dir, and language the same way.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/infra/config"
	"github.com/poruru-code/functpl/cli/internal/infra/ui"
	"github.com/poruru-code/functpl/cli/internal/usecase/catalog"
)

const maxSuggestions = 5

var errCatalogNotConfigured = errors.New("template catalog is not configured")

type catalogSession struct {
	ui         ui.UserInterface
	config     config.GlobalConfig
	configPath string
	feedDir    string
	language   string
	templates  template.Templates
}

func openCatalog(cli CLI, deps Dependencies, out io.Writer) (catalogSession, error) {
	userUI, err := commandUI(out, cli)
	if err != nil {
		return catalogSession{}, err
	}
	session := catalogSession{ui: userUI, config: config.DefaultGlobalConfig()}

	if path, err := deps.ConfigPath(); err != nil {
		userUI.Warn(fmt.Sprintf("Warning: global config unavailable: %v", err))
	} else {
		session.configPath = path
		cfg, err := config.LoadGlobalConfigOrDefault(path)
		if err != nil {
			userUI.Warn(fmt.Sprintf("Warning: ignoring global config: %v", err))
		} else {
			session.config = cfg
		}
	}

	cwd, err := deps.Getwd()
	if err != nil {
		cwd = ""
	}
	session.feedDir, err = config.ResolveFeedDir(cli.Feed, cwd, session.config)
	if err != nil {
		return catalogSession{}, err
	}
	session.language = config.ResolveLanguage(cli.Lang, session.config)

	if deps.Catalog == nil {
		return catalogSession{}, errCatalogNotConfigured
	}
	session.templates, err = deps.Catalog.Load(session.feedDir, session.language)
	if err != nil {
		return catalogSession{}, err
	}
	return session, nil
}

// findTemplate wraps catalog.Find with suggestions from history and similar ids.
func (s catalogSession) findTemplate(id string) (template.FunctionTemplate, error) {
	tmpl, err := catalog.Find(s.templates.FunctionTemplates, id)
	if err == nil {
		return tmpl, nil
	}
	if !errors.Is(err, catalog.ErrTemplateNotFound) {
		return template.FunctionTemplate{}, err
	}
	similar := catalog.Filter{Query: similarityKey(id)}.Apply(s.templates.FunctionTemplates)
	suggestions := template.BuildSuggestions("", nil, template.TemplateIDs(similar))
	if len(suggestions) == 0 {
		recent := []string{}
		for _, entry := range s.config.RecentTemplates {
			if _, findErr := catalog.Find(s.templates.FunctionTemplates, entry); findErr == nil {
				recent = append(recent, entry)
			}
		}
		suggestions = template.BuildSuggestions("", recent, nil)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	if len(suggestions) > 0 {
		return template.FunctionTemplate{}, fmt.Errorf("%w (did you mean: %s?)", err, strings.Join(suggestions, ", "))
	}
	return template.FunctionTemplate{}, err
}

// similarityKey keeps the trigger part of ids like "HttpTrigger-JavaScript".
func similarityKey(id string) string {
	key := strings.TrimSpace(id)
	if idx := strings.Index(key, "-"); idx > 0 {
		key = key[:idx]
	}
	return key
}

func reportFailures(userUI ui.UserInterface, failures []template.ParseFailure, verbose bool) {
	if len(failures) == 0 {
		return
	}
	if verbose {
		for _, failure := range failures {
			userUI.Skipped(failure.Index, failure)
		}
		return
	}
	noun := "templates"
	if len(failures) == 1 {
		noun = "template"
	}
	userUI.Warn(fmt.Sprintf("%d %s could not be parsed (use --show-failures to list them)", len(failures), noun))
}

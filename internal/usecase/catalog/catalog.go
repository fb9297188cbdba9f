// Where: cli/internal/usecase/catalog/catalog.go
// What: Catalog workflow: load a feed, filter and look up templates.
// Why: Keep feed orchestration out of the command handlers.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/infra/feed"
	"github.com/poruru-code/functpl/cli/internal/infra/script"
)

// ErrTemplateNotFound is returned when no template carries the requested id.
var ErrTemplateNotFound = errors.New("template not found")

var (
	errLoaderNotConfigured = errors.New("feed loader is not configured")
	errParserNotConfigured = errors.New("feed parser is not configured")
)

// Service loads and parses template feeds.
type Service struct {
	Loader feed.Loader
	Parser script.Parser
}

// NewService returns a Service reading feeds from disk.
func NewService() Service {
	return Service{Loader: feed.DirLoader{}, Parser: script.DefaultParser{}}
}

// Load reads the feed in dir with resources for language and parses it.
func (s Service) Load(dir, language string) (template.Templates, error) {
	if s.Loader == nil {
		return template.Templates{}, errLoaderNotConfigured
	}
	if s.Parser == nil {
		return template.Templates{}, errParserNotConfigured
	}
	raw, err := s.Loader.Load(dir, language)
	if err != nil {
		return template.Templates{}, fmt.Errorf("load feed: %w", err)
	}
	templates, err := s.Parser.Parse(raw)
	if err != nil {
		return template.Templates{}, fmt.Errorf("parse feed: %w", err)
	}
	return templates, nil
}

// Filter narrows a template list. Zero values match everything.
type Filter struct {
	Language  string
	Category  string
	HTTPOnly  bool
	TimerOnly bool
	// Query is a case-insensitive substring matched against id and name.
	Query string
}

// Apply returns the templates matching every populated field, in order.
func (f Filter) Apply(templates []template.FunctionTemplate) []template.FunctionTemplate {
	out := make([]template.FunctionTemplate, 0, len(templates))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, t := range templates {
		if f.Language != "" && !strings.EqualFold(string(t.Language), f.Language) {
			continue
		}
		if f.Category != "" && !hasCategoryFold(t, f.Category) {
			continue
		}
		if f.HTTPOnly && !t.IsHTTPTrigger {
			continue
		}
		if f.TimerOnly && !t.IsTimerTrigger {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.ID), query) &&
			!strings.Contains(strings.ToLower(t.Name), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func hasCategoryFold(t template.FunctionTemplate, category string) bool {
	for _, c := range t.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// Find returns the template with id. An exact match wins over a case-insensitive one.
func Find(templates []template.FunctionTemplate, id string) (template.FunctionTemplate, error) {
	id = strings.TrimSpace(id)
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	for _, t := range templates {
		if strings.EqualFold(t.ID, id) {
			return t, nil
		}
	}
	return template.FunctionTemplate{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
}

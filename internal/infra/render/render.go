// Where: cli/internal/infra/render/render.go
// What: Render catalog listings, template details, and function.json output.
// Why: Keep presentation in embedded templates instead of command handlers.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	txttemplate "text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/functpl/cli/internal/domain/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// RenderTemplateList renders one row per function template.
func RenderTemplateList(templates []template.FunctionTemplate) (string, error) {
	data := listTemplateData{Rows: make([]listRow, 0, len(templates))}
	for _, t := range templates {
		data.Rows = append(data.Rows, listRow{
			ID:       t.ID,
			Language: string(t.Language),
			Trigger:  triggerLabel(t).String(),
			Name:     t.Name,
		})
	}
	return renderTemplate("list.tmpl", data)
}

// RenderTemplateDetail renders a single template with its prompted settings.
func RenderTemplateDetail(t template.FunctionTemplate) (string, error) {
	files := make([]string, 0, len(t.TemplateFiles))
	for name := range t.TemplateFiles {
		files = append(files, name)
	}
	sort.Strings(files)

	data := detailTemplateData{
		ID:                  t.ID,
		Name:                t.Name,
		Language:            string(t.Language),
		DefaultFunctionName: t.DefaultFunctionName,
		Trigger:             triggerLabel(t).String(),
		Categories:          t.Categories,
		Files:               files,
		Settings:            settingRows(t.UserPromptedSettings),
	}
	return renderTemplate("detail.tmpl", data)
}

// RenderBindingList renders every binding template and its settings.
func RenderBindingList(bindings []template.BindingTemplate) (string, error) {
	data := bindingsTemplateData{Bindings: make([]bindingRow, 0, len(bindings))}
	for _, b := range bindings {
		data.Bindings = append(data.Bindings, bindingRow{
			Type:        b.Type,
			Direction:   b.Direction,
			DisplayName: b.DisplayName,
			Trigger:     b.Trigger.String(),
			Settings:    settingRows(b.Settings),
		})
	}
	return renderTemplate("bindings.tmpl", data)
}

func triggerLabel(t template.FunctionTemplate) template.TriggerKind {
	switch {
	case t.IsHTTPTrigger:
		return template.TriggerHTTP
	case t.IsTimerTrigger:
		return template.TriggerTimer
	default:
		return template.TriggerNone
	}
}

func settingRows(settings []template.BindingSetting) []settingRow {
	rows := make([]settingRow, 0, len(settings))
	for _, s := range settings {
		row := settingRow{
			Name:        s.Name,
			Label:       s.Label,
			Description: s.Description,
			ValueType:   string(s.ValueType),
			Required:    s.Required,
			Validated:   s.HasValidator(),
		}
		if s.DefaultValue != nil {
			row.Default = fmt.Sprint(s.DefaultValue)
		}
		for _, e := range s.Enums {
			row.Enums = append(row.Enums, e.Value)
		}
		rows = append(rows, row)
	}
	return rows
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", strings.TrimSuffix(name, ".tmpl"), err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*txttemplate.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*txttemplate.Template), nil
	}
	tmpl, err := txttemplate.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

type listTemplateData struct {
	Rows []listRow
}

type listRow struct {
	ID       string
	Language string
	Trigger  string
	Name     string
}

type detailTemplateData struct {
	ID                  string
	Name                string
	Language            string
	DefaultFunctionName string
	Trigger             string
	Categories          []string
	Files               []string
	Settings            []settingRow
}

type bindingsTemplateData struct {
	Bindings []bindingRow
}

type bindingRow struct {
	Type        string
	Direction   string
	DisplayName string
	Trigger     string
	Settings    []settingRow
}

type settingRow struct {
	Name        string
	Label       string
	Description string
	ValueType   string
	Required    bool
	Validated   bool
	Default     string
	Enums       []string
}

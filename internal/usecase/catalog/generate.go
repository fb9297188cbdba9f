// Where: cli/internal/usecase/catalog/generate.go
// What: Produce function.json output and inspect existing configurations.
// Why: Give the new and auth-level commands a single orchestration entry point.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poruru-code/functpl/cli/internal/domain/funcconfig"
	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/infra/feed"
	"github.com/poruru-code/functpl/cli/internal/infra/render"
)

// GenerateRequest captures the inputs of the new command.
type GenerateRequest struct {
	TemplateID string
	Provided   map[string]string
	Ask        AskFunc
}

// GenerateResult is the rendered function configuration.
type GenerateResult struct {
	Template     template.FunctionTemplate
	Values       map[string]string
	FunctionJSON []byte
}

// Generate looks up the template, collects its settings, and renders function.json.
func Generate(templates template.Templates, req GenerateRequest) (GenerateResult, error) {
	tmpl, err := Find(templates.FunctionTemplates, req.TemplateID)
	if err != nil {
		return GenerateResult{}, err
	}
	values, err := CollectSettings(tmpl, req.Provided, req.Ask)
	if err != nil {
		return GenerateResult{}, err
	}
	payload, err := render.RenderFunctionJSON(tmpl, values)
	if err != nil {
		return GenerateResult{}, err
	}
	return GenerateResult{Template: tmpl, Values: values, FunctionJSON: payload}, nil
}

// Inspection summarizes a function configuration.
type Inspection struct {
	TriggerType string
	HTTP        bool
	Timer       bool
	Disabled    bool
	AuthLevel   funcconfig.AuthLevel
}

// InspectFile reads and inspects a function.json (or .jsonc/.yaml) file.
func InspectFile(path string) (Inspection, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Inspection{}, fmt.Errorf("read function config: %w", err)
	}
	normalized, err := feed.Normalize(payload, filepath.Ext(path))
	if err != nil {
		return Inspection{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	var raw any
	if err := json.Unmarshal(normalized, &raw); err != nil {
		return Inspection{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return Inspect(funcconfig.Parse(raw))
}

// Inspect classifies the trigger and resolves the auth level of cfg.
func Inspect(cfg funcconfig.Config) (Inspection, error) {
	level, err := cfg.AuthLevel()
	if err != nil {
		return Inspection{}, err
	}
	out := Inspection{
		HTTP:      cfg.IsHTTPTrigger(),
		Timer:     cfg.IsTimerTrigger(),
		Disabled:  cfg.Disabled(),
		AuthLevel: level,
	}
	if trigger, ok := cfg.TriggerBinding(); ok {
		out.TriggerType = trigger.Type()
	}
	return out, nil
}

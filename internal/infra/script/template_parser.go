// Where: cli/internal/infra/script/template_parser.go
// What: Raw template to FunctionTemplate conversion.
// Why: Join template metadata with the shared binding templates.
package script

import (
	"github.com/poruru-code/functpl/cli/internal/domain/funcconfig"
	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/domain/value"
)

// ParseTemplate converts a raw template. Prompted settings are copies of
// the matching binding template settings, so bindings is never modified.
func ParseTemplate(raw RawTemplate, res Resources, bindings []template.BindingTemplate) (template.FunctionTemplate, error) {
	functionConfig := funcconfig.Parse(raw.Function)

	name, err := ResolveResourceValue(res, raw.Metadata.Name)
	if err != nil {
		return template.FunctionTemplate{}, err
	}

	categories := raw.Metadata.Category
	if categories == nil {
		categories = []string{}
	}

	return template.FunctionTemplate{
		ID:                   raw.ID,
		Name:                 name,
		DefaultFunctionName:  raw.Metadata.DefaultFunctionName,
		Language:             template.ScriptLanguage(template.ProjectLanguage(raw.Metadata.Language)),
		IsHTTPTrigger:        functionConfig.IsHTTPTrigger(),
		IsTimerTrigger:       functionConfig.IsTimerTrigger(),
		UserPromptedSettings: userPromptedSettings(raw.Metadata.UserPrompt, functionConfig, bindings),
		TemplateFiles:        raw.Files,
		Categories:           categories,
		FunctionConfig:       functionConfig,
	}, nil
}

// userPromptedSettings looks up each prompted name on the trigger binding's
// template. Names without a match are skipped; duplicates are kept.
func userPromptedSettings(names []string, cfg funcconfig.Config, bindings []template.BindingTemplate) []template.BindingSetting {
	out := []template.BindingSetting{}
	trigger, ok := cfg.TriggerBinding()
	if !ok {
		return out
	}
	bindingTemplate, ok := template.FindBindingTemplate(bindings, trigger.Type())
	if !ok {
		return out
	}
	for _, name := range names {
		setting, ok := bindingTemplate.Setting(name)
		if !ok {
			continue
		}
		setting = setting.Clone()
		if specific, ok := trigger.Field(setting.Name); ok && value.IsTruthy(specific) {
			setting.DefaultValue = specific
		}
		out = append(out, setting)
	}
	return out
}

// Where: cli/internal/usecase/catalog/prompt.go
// What: Adapt an interaction.Prompter into an AskFunc.
// Why: Choose select or free-text prompts from the setting's value type.
package catalog

import (
	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/infra/interaction"
	"github.com/poruru-code/functpl/cli/internal/infra/ui"
)

// PromptAsker asks through p, reporting rejected answers on out when it is set.
func PromptAsker(p interaction.Prompter, out ui.UserInterface) AskFunc {
	return func(q Question) (string, error) {
		if q.Previous != nil && out != nil {
			out.Warn(q.Previous.Error())
		}
		title := q.Setting.Label
		if title == "" {
			title = q.Setting.Name
		}

		switch {
		case q.Setting.ValueType == template.ValueEnum && len(q.Setting.Enums) > 0:
			return p.SelectValue(title, enumOptions(q.Setting))
		case q.Setting.ValueType == template.ValueBoolean:
			return p.SelectValue(title, booleanOptions(q.Default))
		}

		setting := q.Setting
		return p.Input(interaction.InputRequest{
			Title:       title,
			Description: setting.Description,
			Default:     q.Default,
			Validate: func(value string) error {
				return CheckValue(setting, value)
			},
		})
	}
}

func enumOptions(setting template.BindingSetting) []interaction.SelectOption {
	options := make([]interaction.SelectOption, 0, len(setting.Enums))
	for _, e := range setting.Enums {
		label := e.DisplayName
		if label == "" {
			label = e.Value
		}
		options = append(options, interaction.SelectOption{Label: label, Value: e.Value})
	}
	return options
}

func booleanOptions(def string) []interaction.SelectOption {
	if def == "true" {
		return []interaction.SelectOption{{Label: "true", Value: "true"}, {Label: "false", Value: "false"}}
	}
	return []interaction.SelectOption{{Label: "false", Value: "false"}, {Label: "true", Value: "true"}}
}

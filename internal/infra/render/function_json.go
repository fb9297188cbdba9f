// Where: cli/internal/infra/render/function_json.go
// What: Produce a function.json from a template and collected setting values.
// Why: The template's configuration is shared and must never be mutated.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/domain/value"
)

// RenderFunctionJSON returns an indented copy of the template's function
// configuration with prompted values written onto the trigger binding.
func RenderFunctionJSON(tmpl template.FunctionTemplate, values map[string]string) ([]byte, error) {
	raw := tmpl.FunctionConfig.Raw()
	if raw == nil {
		return nil, fmt.Errorf("template %s has no function configuration", tmpl.ID)
	}
	cfg, err := deepCopy(raw)
	if err != nil {
		return nil, fmt.Errorf("copy function configuration: %w", err)
	}

	trigger := triggerBinding(cfg)
	for _, setting := range tmpl.UserPromptedSettings {
		input, ok := values[setting.Name]
		if !ok {
			continue
		}
		if trigger == nil {
			return nil, fmt.Errorf("template %s has no trigger binding for setting %s", tmpl.ID, setting.Name)
		}
		converted, err := convertSettingValue(setting, input)
		if err != nil {
			return nil, err
		}
		trigger[setting.Name] = converted
	}

	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode function configuration: %w", err)
	}
	return append(payload, '\n'), nil
}

func deepCopy(src map[string]any) (map[string]any, error) {
	payload, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func triggerBinding(cfg map[string]any) map[string]any {
	for _, entry := range value.AsSlice(cfg["bindings"]) {
		binding := value.AsMap(entry)
		if binding == nil {
			continue
		}
		if value.HasSuffixFold(value.AsString(binding["type"]), "trigger") {
			return binding
		}
	}
	return nil
}

func convertSettingValue(setting template.BindingSetting, input string) (any, error) {
	switch setting.ValueType {
	case template.ValueBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(input))
		if err != nil {
			return nil, fmt.Errorf("setting %s: %q is not a boolean", setting.Name, input)
		}
		return b, nil
	case template.ValueInt:
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return nil, fmt.Errorf("setting %s: %q is not an integer", setting.Name, input)
		}
		return n, nil
	case template.ValueCheckBoxList:
		parts := []string{}
		for _, part := range strings.Split(input, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		return parts, nil
	default:
		return input, nil
	}
}

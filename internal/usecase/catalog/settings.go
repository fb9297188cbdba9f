// Where: cli/internal/usecase/catalog/settings.go
// What: Collect and validate user-prompted template settings.
// Why: Apply the feed's validation rules the same way for flags and prompts.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/domain/template"
)

// MaxAttempts bounds how often a single setting is asked before giving up.
const MaxAttempts = 3

var (
	// ErrSettingNotFound is returned when a template has no prompted setting with the name.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrMissingValue is returned for a required setting with no value and no prompt.
	ErrMissingValue = errors.New("missing value")
)

// InvalidValueError reports a value rejected by a setting's rules.
type InvalidValueError struct {
	Setting string
	Value   string
	Message string
}

func (e *InvalidValueError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("invalid value %q for %s", e.Value, e.Setting)
	}
	return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Setting, e.Message)
}

// Question is handed to an AskFunc for each prompted setting.
type Question struct {
	Setting template.BindingSetting
	Default string
	Attempt int
	// Previous holds the rejection of the last answer, nil on the first attempt.
	Previous error
}

// AskFunc obtains an answer for a setting. A nil AskFunc disables prompting.
type AskFunc func(q Question) (string, error)

// DefaultString formats a setting default for display and input.
func DefaultString(setting template.BindingSetting) string {
	if setting.DefaultValue == nil {
		return ""
	}
	return fmt.Sprint(setting.DefaultValue)
}

// CheckValue applies the setting's enum constraint and compiled validators.
func CheckValue(setting template.BindingSetting, value string) error {
	if strings.TrimSpace(value) == "" && setting.Required {
		return &InvalidValueError{Setting: setting.Name, Value: value, Message: "a value is required"}
	}
	if setting.ValueType == template.ValueEnum && len(setting.Enums) > 0 {
		allowed := false
		for _, e := range setting.Enums {
			if e.Value == value {
				allowed = true
				break
			}
		}
		if !allowed {
			return &InvalidValueError{Setting: setting.Name, Value: value, Message: "not one of " + enumValues(setting)}
		}
	}
	if message, failed := setting.Validate(value); failed {
		return &InvalidValueError{Setting: setting.Name, Value: value, Message: message}
	}
	return nil
}

func enumValues(setting template.BindingSetting) string {
	values := make([]string, 0, len(setting.Enums))
	for _, e := range setting.Enums {
		values = append(values, e.Value)
	}
	return strings.Join(values, ", ")
}

// ValidateSetting checks value against the named prompted setting of tmpl.
func ValidateSetting(tmpl template.FunctionTemplate, name, value string) error {
	for _, setting := range tmpl.UserPromptedSettings {
		if setting.Name == name {
			return CheckValue(setting, value)
		}
	}
	return fmt.Errorf("%w: %s has no prompted setting %s", ErrSettingNotFound, tmpl.ID, name)
}

// CollectSettings resolves a value for every prompted setting of tmpl.
// Provided values are validated and never prompted for. Without ask, defaults
// fill the gaps; a required setting without a default fails with ErrMissingValue.
func CollectSettings(tmpl template.FunctionTemplate, provided map[string]string, ask AskFunc) (map[string]string, error) {
	known := map[string]struct{}{}
	for _, setting := range tmpl.UserPromptedSettings {
		known[setting.Name] = struct{}{}
	}
	for name := range provided {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("%w: %s has no prompted setting %s", ErrSettingNotFound, tmpl.ID, name)
		}
	}

	values := map[string]string{}
	for _, setting := range tmpl.UserPromptedSettings {
		if _, done := values[setting.Name]; done {
			continue
		}

		if value, ok := provided[setting.Name]; ok {
			if err := CheckValue(setting, value); err != nil {
				return nil, err
			}
			values[setting.Name] = value
			continue
		}

		def := DefaultString(setting)
		if ask == nil {
			if def == "" {
				if setting.Required {
					return nil, fmt.Errorf("%w: %s", ErrMissingValue, setting.Name)
				}
				continue
			}
			if err := CheckValue(setting, def); err != nil {
				return nil, err
			}
			values[setting.Name] = def
			continue
		}

		value, err := askUntilValid(setting, def, ask)
		if err != nil {
			return nil, err
		}
		values[setting.Name] = value
	}
	return values, nil
}

func askUntilValid(setting template.BindingSetting, def string, ask AskFunc) (string, error) {
	q := Question{Setting: setting, Default: def}
	var last error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		q.Attempt = attempt
		q.Previous = last
		answer, err := ask(q)
		if err != nil {
			return "", fmt.Errorf("ask %s: %w", setting.Name, err)
		}
		if answer == "" {
			answer = def
		}
		if last = CheckValue(setting, answer); last == nil {
			return answer, nil
		}
	}
	return "", last
}

// Where: cli/internal/infra/script/raw.go
// What: Raw script feed records as defined by the external feed.
// Why: Decode loosely typed JSON into explicit optional/required fields at the boundary.
package script

import (
	"encoding/json"
	"fmt"

	"github.com/poruru-code/functpl/cli/internal/domain/value"
)

// RawFeed is an undecoded feed: the resources object, the template array
// entries, and the binding config object.
type RawFeed struct {
	Resources json.RawMessage
	Templates []json.RawMessage
	Config    json.RawMessage
}

// RawTemplate describes a script template before it has been parsed.
type RawTemplate struct {
	ID       string            `json:"id"`
	Function any               `json:"function"`
	Metadata RawMetadata       `json:"metadata"`
	Files    map[string]string `json:"files"`
}

// RawMetadata is the metadata block of a raw template.
type RawMetadata struct {
	DefaultFunctionName string   `json:"defaultFunctionName"`
	Name                string   `json:"name"`
	Language            string   `json:"language"`
	UserPrompt          []string `json:"userPrompt,omitempty"`
	Category            []string `json:"category,omitempty"`
}

// RawSetting describes a binding setting before it has been parsed.
// Name, label, enum entries and error texts may be variable references.
type RawSetting struct {
	Name         any            `json:"name"`
	Value        string         `json:"value"`
	Label        any            `json:"label"`
	Help         string         `json:"help,omitempty"`
	DefaultValue any            `json:"defaultValue,omitempty"`
	Required     bool           `json:"required,omitempty"`
	Resource     string         `json:"resource,omitempty"`
	Validators   []RawValidator `json:"validators,omitempty"`
	Enum         []RawEnum      `json:"enum,omitempty"`
}

// RawValidator is one expression/error-text rule of a setting.
type RawValidator struct {
	Expression string `json:"expression"`
	ErrorText  any    `json:"errorText"`
}

// RawEnum is one enum choice of a setting.
type RawEnum struct {
	Value   any `json:"value"`
	Display any `json:"display"`
}

// RawBinding describes a binding type in the binding config.
type RawBinding struct {
	Type          string       `json:"type"`
	Documentation string       `json:"documentation,omitempty"`
	DisplayName   string       `json:"displayName"`
	Direction     string       `json:"direction"`
	Settings      []RawSetting `json:"settings"`
}

// Config is the binding config: shared variables and binding types.
type Config struct {
	Variables Variables    `json:"variables,omitempty"`
	Bindings  []RawBinding `json:"bindings"`
}

// DecodeResources validates and decodes the resources object.
func DecodeResources(data []byte) (Resources, error) {
	var res Resources
	if err := decodeValidated(data, schemaResources, &res); err != nil {
		return Resources{}, fmt.Errorf("decode resources: %w", err)
	}
	return res, nil
}

// DecodeConfig validates and decodes the binding config object.
func DecodeConfig(data []byte) (Config, error) {
	var cfg Config
	if err := decodeValidated(data, schemaConfig, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode binding config: %w", err)
	}
	return cfg, nil
}

// DecodeTemplate validates and decodes one raw template entry.
func DecodeTemplate(data []byte) (RawTemplate, error) {
	var raw RawTemplate
	if err := decodeValidated(data, schemaTemplate, &raw); err != nil {
		return RawTemplate{}, fmt.Errorf("decode template: %w", err)
	}
	return raw, nil
}

// SplitTemplates splits a JSON array of templates into its entries.
func SplitTemplates(data []byte) ([]json.RawMessage, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode template list: %w", err)
	}
	return entries, nil
}

// peekTemplateID returns the id of a raw entry for diagnostics, empty when unreadable.
func peekTemplateID(data []byte) string {
	var head struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return ""
	}
	return value.AsString(head.ID)
}

func decodeValidated(data []byte, name schemaName, out any) error {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return err
	}
	if err := validateDocument(name, document); err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

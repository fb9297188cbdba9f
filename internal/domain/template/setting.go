// Where: cli/internal/domain/template/setting.go
// What: Binding setting model with a compiled validator.
// Why: Prompted values are validated the same way wherever they are collected.
package template

// Validator checks a candidate value. It returns the message of the first
// failing rule, and false when the value is accepted.
type Validator func(value string) (string, bool)

// BindingSetting is a single configurable field of a binding.
type BindingSetting struct {
	Name         string
	Label        string
	Description  string
	ValueType    ValueType
	ResourceType ResourceType
	DefaultValue any
	Required     bool
	Enums        []EnumValue
	validator    Validator
}

// WithValidator returns a copy of the setting using v.
func (s BindingSetting) WithValidator(v Validator) BindingSetting {
	s.validator = v
	return s
}

// HasValidator reports whether any validation rule is attached.
func (s BindingSetting) HasValidator() bool {
	return s.validator != nil
}

// Validate runs the compiled rules. Settings without rules accept everything.
func (s BindingSetting) Validate(value string) (string, bool) {
	if s.validator == nil {
		return "", false
	}
	return s.validator(value)
}

// Clone returns a copy that shares no mutable state with s.
func (s BindingSetting) Clone() BindingSetting {
	out := s
	if s.Enums != nil {
		out.Enums = append([]EnumValue(nil), s.Enums...)
	}
	return out
}

// Where: cli/internal/domain/template/types.go
// What: Typed binding and function template model.
// Why: Keep parsed feed data independent from the raw feed schema.
package template

import "github.com/poruru-code/functpl/cli/internal/domain/funcconfig"

// ValueType is the input kind of a binding setting.
type ValueType string

const (
	ValueString       ValueType = "string"
	ValueBoolean      ValueType = "boolean"
	ValueEnum         ValueType = "enum"
	ValueCheckBoxList ValueType = "checkBoxList"
	ValueInt          ValueType = "int"
)

// ResourceType tags settings that reference a cloud resource.
type ResourceType string

const (
	ResourceDocumentDB ResourceType = "DocumentDB"
	ResourceStorage    ResourceType = "Storage"
	ResourceEventHub   ResourceType = "EventHub"
	ResourceServiceBus ResourceType = "ServiceBus"
)

// TriggerKind classifies a binding type tag.
type TriggerKind int

const (
	TriggerNone TriggerKind = iota
	TriggerHTTP
	TriggerTimer
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerHTTP:
		return "http"
	case TriggerTimer:
		return "timer"
	default:
		return "none"
	}
}

// EnumValue is one selectable choice of an enum setting.
type EnumValue struct {
	Value       string
	DisplayName string
}

// BindingTemplate describes one binding type offered by the feed.
type BindingTemplate struct {
	Type        string
	Direction   string
	DisplayName string
	Trigger     TriggerKind
	Settings    []BindingSetting
}

// IsHTTPTrigger reports whether the type tag begins with "http".
func (b BindingTemplate) IsHTTPTrigger() bool {
	return b.Trigger == TriggerHTTP
}

// IsTimerTrigger reports whether the type tag begins with "timer".
func (b BindingTemplate) IsTimerTrigger() bool {
	return b.Trigger == TriggerTimer
}

// Setting returns the first setting with the given name.
func (b BindingTemplate) Setting(name string) (BindingSetting, bool) {
	for _, s := range b.Settings {
		if s.Name == name {
			return s, true
		}
	}
	return BindingSetting{}, false
}

// FunctionTemplate is a parsed, ready-to-scaffold function template.
type FunctionTemplate struct {
	ID                   string
	Name                 string
	DefaultFunctionName  string
	Language             ProjectLanguage
	IsHTTPTrigger        bool
	IsTimerTrigger       bool
	UserPromptedSettings []BindingSetting
	TemplateFiles        map[string]string
	Categories           []string
	FunctionConfig       funcconfig.Config
}

// HasCategory reports whether the template is tagged with category.
func (f FunctionTemplate) HasCategory(category string) bool {
	for _, c := range f.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ParseFailure records a template that could not be parsed.
type ParseFailure struct {
	Index      int
	TemplateID string
	Err        error
}

func (f ParseFailure) Error() string {
	if f.TemplateID == "" {
		return f.Err.Error()
	}
	return f.TemplateID + ": " + f.Err.Error()
}

func (f ParseFailure) Unwrap() error {
	return f.Err
}

// Templates is the result of parsing a whole feed.
type Templates struct {
	FunctionTemplates []FunctionTemplate
	BindingTemplates  []BindingTemplate
	Failures          []ParseFailure
}

// BindingTemplate returns the first binding template with the given type tag.
func (t Templates) BindingTemplate(bindingType string) (BindingTemplate, bool) {
	return FindBindingTemplate(t.BindingTemplates, bindingType)
}

// FindBindingTemplate returns the first binding template whose type equals bindingType.
func FindBindingTemplate(bindings []BindingTemplate, bindingType string) (BindingTemplate, bool) {
	for _, b := range bindings {
		if b.Type == bindingType {
			return b, true
		}
	}
	return BindingTemplate{}, false
}

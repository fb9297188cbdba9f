// Where: cli/internal/domain/funcconfig/function.go
// What: Parsed function configuration (function.json) model.
// Why: Classify trigger bindings and auth level from loosely typed configs.
package funcconfig

import (
	"fmt"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/domain/value"
)

// AuthLevel is the HTTP authorization level of a function.
type AuthLevel string

const (
	AuthLevelAdmin     AuthLevel = "admin"
	AuthLevelFunction  AuthLevel = "function"
	AuthLevelAnonymous AuthLevel = "anonymous"
)

// UnrecognizedAuthLevelError reports an authLevel outside the known set.
type UnrecognizedAuthLevelError struct {
	Value string
}

func (e *UnrecognizedAuthLevelError) Error() string {
	return fmt.Sprintf("Unrecognized auth level %q.", e.Value)
}

// Binding is a single raw binding entry. Fields beyond type/direction are
// binding-specific, so it stays a map.
type Binding map[string]any

// Type returns the binding type tag.
func (b Binding) Type() string {
	return value.AsString(b["type"])
}

// Direction returns the binding direction ("in", "out"), empty when unset.
func (b Binding) Direction() string {
	return value.AsString(b["direction"])
}

// AuthLevel returns the raw authLevel field.
func (b Binding) AuthLevel() string {
	return value.AsString(b["authLevel"])
}

// Field returns an arbitrary binding field.
func (b Binding) Field(name string) (any, bool) {
	v, ok := b[name]
	return v, ok
}

// Clone returns a shallow copy of the binding.
func (b Binding) Clone() Binding {
	return Binding(value.CopyMap(map[string]any(b)))
}

// Config is the parsed view over a function configuration object.
type Config struct {
	raw      map[string]any
	bindings []Binding
	disabled bool
}

// Parse builds a Config from any value. It never fails: malformed input
// yields an empty configuration.
func Parse(raw any) Config {
	cfg := Config{raw: value.AsMap(raw)}
	if cfg.raw == nil {
		return cfg
	}
	cfg.disabled = value.AsBool(cfg.raw["disabled"])
	for _, entry := range value.AsSlice(cfg.raw["bindings"]) {
		if m := value.AsMap(entry); m != nil {
			cfg.bindings = append(cfg.bindings, Binding(m))
		}
	}
	return cfg
}

// Raw returns the original object, nil when the source was not an object.
func (c Config) Raw() map[string]any {
	return c.raw
}

// Bindings returns the bindings in declaration order.
func (c Config) Bindings() []Binding {
	return c.bindings
}

// Disabled reports the disabled flag.
func (c Config) Disabled() bool {
	return c.disabled
}

// TriggerBinding returns the first binding whose type ends with "trigger".
func (c Config) TriggerBinding() (Binding, bool) {
	for _, b := range c.bindings {
		if t := b.Type(); t != "" && value.HasSuffixFold(t, "trigger") {
			return b, true
		}
	}
	return nil, false
}

// IsHTTPTrigger reports whether the trigger binding is an HTTP trigger.
func (c Config) IsHTTPTrigger() bool {
	trigger, ok := c.TriggerBinding()
	return ok && value.HasPrefixFold(trigger.Type(), "http")
}

// IsTimerTrigger reports whether the trigger binding is a timer trigger.
func (c Config) IsTimerTrigger() bool {
	trigger, ok := c.TriggerBinding()
	return ok && value.HasPrefixFold(trigger.Type(), "timer")
}

// AuthLevel returns the trigger binding's auth level. Other HTTP bindings
// never contribute, and "function" is the default.
func (c Config) AuthLevel() (AuthLevel, error) {
	trigger, ok := c.TriggerBinding()
	if !ok {
		return AuthLevelFunction, nil
	}
	raw := trigger.AuthLevel()
	if raw == "" {
		return AuthLevelFunction, nil
	}
	switch level := AuthLevel(strings.ToLower(raw)); level {
	case AuthLevelAdmin, AuthLevelFunction, AuthLevelAnonymous:
		return level, nil
	}
	return "", &UnrecognizedAuthLevelError{Value: raw}
}

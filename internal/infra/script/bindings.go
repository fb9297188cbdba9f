// Where: cli/internal/infra/script/bindings.go
// What: Binding config parsing into typed binding templates.
// Why: Resolve localized text and compile validators once per feed.
package script

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/domain/value"
)

// validatorTimeout bounds a single expression match.
const validatorTimeout = time.Second

// ParseBindings converts every raw binding of cfg, in order, into a BindingTemplate.
func ParseBindings(cfg Config, res Resources) ([]template.BindingTemplate, error) {
	out := make([]template.BindingTemplate, 0, len(cfg.Bindings))
	for _, raw := range cfg.Bindings {
		binding, err := parseBinding(raw, res, cfg.Variables)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", raw.Type, err)
		}
		out = append(out, binding)
	}
	return out, nil
}

func parseBinding(raw RawBinding, res Resources, vars Variables) (template.BindingTemplate, error) {
	displayName, err := ResolveResourceValue(res, raw.DisplayName)
	if err != nil {
		return template.BindingTemplate{}, err
	}
	settings := make([]template.BindingSetting, 0, len(raw.Settings))
	for _, rawSetting := range raw.Settings {
		setting, err := ParseSetting(rawSetting, res, vars)
		if err != nil {
			return template.BindingTemplate{}, err
		}
		settings = append(settings, setting)
	}
	return template.BindingTemplate{
		Type:        raw.Type,
		Direction:   raw.Direction,
		DisplayName: displayName,
		Trigger:     ClassifyTrigger(raw.Type),
		Settings:    settings,
	}, nil
}

// ClassifyTrigger classifies a binding type tag by case-insensitive prefix.
func ClassifyTrigger(bindingType string) template.TriggerKind {
	switch {
	case bindingType == "":
		return template.TriggerNone
	case value.HasPrefixFold(bindingType, "http"):
		return template.TriggerHTTP
	case value.HasPrefixFold(bindingType, "timer"):
		return template.TriggerTimer
	default:
		return template.TriggerNone
	}
}

// ParseSetting converts a raw setting into a BindingSetting with its validator compiled.
// Validator faults surface as rejection messages, never as parse errors.
func ParseSetting(raw RawSetting, res Resources, vars Variables) (template.BindingSetting, error) {
	name, err := resolveVariableString(res, vars, raw.Name)
	if err != nil {
		return template.BindingSetting{}, err
	}
	label, err := resolveVariableString(res, vars, raw.Label)
	if err != nil {
		return template.BindingSetting{}, fmt.Errorf("setting %q label: %w", name, err)
	}

	var description string
	if raw.Help != "" {
		help, err := ResolveResourceValue(res, raw.Help)
		if err != nil {
			return template.BindingSetting{}, fmt.Errorf("setting %q help: %w", name, err)
		}
		description = ReplaceHTMLLinkWithMarkdown(help)
	}

	enums := make([]template.EnumValue, 0, len(raw.Enum))
	for _, ev := range raw.Enum {
		enumValue, err := resolveVariableString(res, vars, ev.Value)
		if err != nil {
			return template.BindingSetting{}, fmt.Errorf("setting %q enum: %w", name, err)
		}
		display, err := resolveVariableString(res, vars, ev.Display)
		if err != nil {
			return template.BindingSetting{}, fmt.Errorf("setting %q enum: %w", name, err)
		}
		enums = append(enums, template.EnumValue{Value: enumValue, DisplayName: display})
	}

	setting := template.BindingSetting{
		Name:         name,
		Label:        label,
		Description:  description,
		ValueType:    template.ValueType(raw.Value),
		ResourceType: template.ResourceType(raw.Resource),
		DefaultValue: raw.DefaultValue,
		Required:     raw.Required,
		Enums:        enums,
	}

	if len(raw.Validators) == 0 {
		return setting, nil
	}
	return setting.WithValidator(compileValidators(raw.Validators, res, vars)), nil
}

type compiledRule struct {
	source     string
	expression *regexp2.Regexp
	compileErr error
	errorText  any
}

// compileValidators builds a predicate that reports the first failing rule
// in declaration order. Empty values fail every rule. A rule whose
// expression does not compile rejects every value; error texts are resolved
// only when their rule rejects, so neither fault can fail the feed parse.
func compileValidators(rules []RawValidator, res Resources, vars Variables) template.Validator {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		re, err := regexp2.Compile(ecmaLegacyExpression(rule.Expression), regexp2.ECMAScript)
		if err == nil {
			re.MatchTimeout = validatorTimeout
		}
		compiled = append(compiled, compiledRule{
			source:     rule.Expression,
			expression: re,
			compileErr: err,
			errorText:  rule.ErrorText,
		})
	}

	return func(candidate string) (string, bool) {
		for _, rule := range compiled {
			if rule.compileErr != nil {
				return fmt.Sprintf("invalid validator expression %q: %v", rule.source, rule.compileErr), true
			}
			if candidate == "" {
				return rule.message(res, vars), true
			}
			matched, err := rule.expression.MatchString(candidate)
			if err != nil || !matched {
				return rule.message(res, vars), true
			}
		}
		return "", false
	}
}

func (r compiledRule) message(res Resources, vars Variables) string {
	text, err := resolveVariableString(res, vars, r.errorText)
	if err != nil {
		return err.Error()
	}
	return ReplaceHTMLLinkWithMarkdown(text)
}

// ecmaLegacyExpression drops the backslash from \p and \P. Without the
// unicode flag those are identity escapes, while regexp2 would read a
// Unicode property class.
func ecmaLegacyExpression(expr string) string {
	if !strings.Contains(expr, `\p`) && !strings.Contains(expr, `\P`) {
		return expr
	}
	var b strings.Builder
	b.Grow(len(expr))
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c != '\\' || i+1 >= len(expr) {
			b.WriteByte(c)
			continue
		}
		next := expr[i+1]
		if next != 'p' && next != 'P' {
			b.WriteByte(c)
		}
		b.WriteByte(next)
		i++
	}
	return b.String()
}

func resolveVariableString(res Resources, vars Variables, raw any) (string, error) {
	resolved, err := ResolveVariableValue(res, vars, raw)
	if err != nil {
		return "", err
	}
	return value.AsString(resolved), nil
}

// Where: cli/internal/infra/script/template_parser_test.go
// What: Tests for raw template conversion.
// Why: Language remap and prompted settings feed the create workflow.
package script

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru-code/functpl/cli/internal/domain/template"
)

func parseFixtureTemplate(t *testing.T, raw string) (template.FunctionTemplate, []template.BindingTemplate) {
	t.Helper()
	res := mustFixtureResources(t)
	bindings, err := ParseBindings(mustFixtureConfig(t), res)
	if err != nil {
		t.Fatalf("parse bindings: %v", err)
	}
	rawTemplate, err := DecodeTemplate([]byte(raw))
	if err != nil {
		t.Fatalf("decode template: %v", err)
	}
	parsed, err := ParseTemplate(rawTemplate, res, bindings)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	return parsed, bindings
}

func TestParseTemplateHTTP(t *testing.T) {
	parsed, bindings := parseFixtureTemplate(t, fixtureHTTPTemplate)

	if parsed.ID != "HttpTrigger-CSharp" || parsed.Name != "HTTP trigger" || parsed.DefaultFunctionName != "HttpTrigger" {
		t.Fatalf("unexpected identity: %#v", parsed)
	}
	if parsed.Language != template.LanguageCSharpScript {
		t.Errorf("language = %q", parsed.Language)
	}
	if !parsed.IsHTTPTrigger || parsed.IsTimerTrigger {
		t.Errorf("trigger flags = %v/%v", parsed.IsHTTPTrigger, parsed.IsTimerTrigger)
	}
	if diff := cmp.Diff([]string{"$temp_category_core"}, parsed.Categories); diff != "" {
		t.Errorf("categories (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"run.csx": "// run"}, parsed.TemplateFiles); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}

	// Missing names are skipped and duplicates are kept.
	if len(parsed.UserPromptedSettings) != 2 {
		t.Fatalf("prompted settings = %d, want 2", len(parsed.UserPromptedSettings))
	}
	for _, s := range parsed.UserPromptedSettings {
		if s.Name != "authLevel" || s.DefaultValue != "anonymous" {
			t.Errorf("prompted setting = %q default %v", s.Name, s.DefaultValue)
		}
	}

	shared, _ := bindings[0].Setting("authLevel")
	if shared.DefaultValue != "function" {
		t.Fatalf("shared binding template was modified: default %v", shared.DefaultValue)
	}
}

func TestParseTemplateTimerKeepsFunctionDefault(t *testing.T) {
	parsed, _ := parseFixtureTemplate(t, fixtureTimerTemplate)

	if parsed.Language != template.LanguageJavaScript {
		t.Errorf("language = %q", parsed.Language)
	}
	if !parsed.IsTimerTrigger || parsed.IsHTTPTrigger {
		t.Errorf("trigger flags = %v/%v", parsed.IsHTTPTrigger, parsed.IsTimerTrigger)
	}
	if parsed.Categories == nil || len(parsed.Categories) != 0 {
		t.Errorf("categories should default to empty, got %#v", parsed.Categories)
	}
	if len(parsed.UserPromptedSettings) != 1 {
		t.Fatalf("prompted settings = %d", len(parsed.UserPromptedSettings))
	}
	schedule := parsed.UserPromptedSettings[0]
	if schedule.DefaultValue != "0 */5 * * * *" {
		t.Errorf("schedule default = %v", schedule.DefaultValue)
	}
	if _, failed := schedule.Validate("0 */5 * * * *"); failed {
		t.Errorf("copied setting lost its validator behavior")
	}
	if msg, failed := schedule.Validate("bad"); !failed || msg != "Invalid cron expression" {
		t.Errorf("Validate(bad) = %q, %v", msg, failed)
	}
}

func TestParseTemplateFalsyTriggerFieldKeepsDefault(t *testing.T) {
	res := mustFixtureResources(t)
	bindings, err := ParseBindings(mustFixtureConfig(t), res)
	if err != nil {
		t.Fatalf("parse bindings: %v", err)
	}
	raw := RawTemplate{
		ID: "HttpTrigger-Empty",
		Function: map[string]any{"bindings": []any{
			map[string]any{"type": "httpTrigger", "direction": "in", "authLevel": ""},
		}},
		Metadata: RawMetadata{Name: "plain", UserPrompt: []string{"authLevel"}},
	}
	parsed, err := ParseTemplate(raw, res, bindings)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if got := parsed.UserPromptedSettings[0].DefaultValue; got != "function" {
		t.Fatalf("default = %v, want function", got)
	}
}

func TestParseTemplateWithoutTrigger(t *testing.T) {
	raw := RawTemplate{
		ID:       "Manual",
		Function: map[string]any{"bindings": []any{map[string]any{"type": "blob", "direction": "out"}}},
		Metadata: RawMetadata{Name: "Manual", UserPrompt: []string{"path"}},
	}
	parsed, err := ParseTemplate(raw, Resources{}, nil)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if len(parsed.UserPromptedSettings) != 0 {
		t.Fatalf("expected no prompted settings without a trigger")
	}
}

func TestParseTemplateLanguageRemap(t *testing.T) {
	tests := map[string]template.ProjectLanguage{
		"C#":         template.LanguageCSharpScript,
		"F#":         template.LanguageFSharpScript,
		"Java":       template.LanguageJava,
		"JavaScript": template.LanguageJavaScript,
	}
	for in, want := range tests {
		raw := RawTemplate{Metadata: RawMetadata{Name: "n", Language: in}}
		parsed, err := ParseTemplate(raw, Resources{}, nil)
		if err != nil {
			t.Fatalf("parse template: %v", err)
		}
		if parsed.Language != want {
			t.Errorf("language %q -> %q, want %q", in, parsed.Language, want)
		}
	}
}

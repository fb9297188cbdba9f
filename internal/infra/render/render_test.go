package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru-code/functpl/cli/internal/domain/funcconfig"
	"github.com/poruru-code/functpl/cli/internal/domain/template"
)

func httpTemplate() template.FunctionTemplate {
	authLevel := template.BindingSetting{
		Name:         "authLevel",
		Label:        "Authorization level",
		ValueType:    template.ValueEnum,
		DefaultValue: "function",
		Enums: []template.EnumValue{
			{Value: "function", DisplayName: "Function"},
			{Value: "anonymous", DisplayName: "Anonymous"},
		},
	}
	return template.FunctionTemplate{
		ID:                   "HttpTrigger-JavaScript",
		Name:                 "HTTP trigger",
		DefaultFunctionName:  "HttpTrigger",
		Language:             template.LanguageJavaScript,
		IsHTTPTrigger:        true,
		UserPromptedSettings: []template.BindingSetting{authLevel},
		TemplateFiles:        map[string]string{"index.js": "module.exports = ...", "function.json": "{}"},
		Categories:           []string{"Core", "API"},
		FunctionConfig: funcconfig.Parse(map[string]any{
			"bindings": []any{
				map[string]any{"type": "httpTrigger", "direction": "in", "name": "req", "authLevel": "function"},
				map[string]any{"type": "http", "direction": "out", "name": "res"},
			},
		}),
	}
}

func TestRenderTemplateList(t *testing.T) {
	timer := template.FunctionTemplate{ID: "TimerTrigger-Python", Name: "Timer trigger", Language: template.LanguagePython, IsTimerTrigger: true}
	out, err := RenderTemplateList([]template.FunctionTemplate{httpTemplate(), timer})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "TRIGGER") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); fields[0] != "HttpTrigger-JavaScript" || fields[2] != "http" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); fields[0] != "TimerTrigger-Python" || fields[2] != "timer" {
		t.Fatalf("unexpected row %q", lines[2])
	}
	if lines[3] != "2 templates" {
		t.Fatalf("unexpected footer %q", lines[3])
	}
}

func TestRenderTemplateListSingular(t *testing.T) {
	out, err := RenderTemplateList([]template.FunctionTemplate{httpTemplate()})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	if !strings.HasSuffix(out, "\n1 template\n") {
		t.Fatalf("unexpected footer in %q", out)
	}
}

func TestRenderTemplateDetail(t *testing.T) {
	out, err := RenderTemplateDetail(httpTemplate())
	if err != nil {
		t.Fatalf("render detail: %v", err)
	}
	for _, want := range []string{
		"Id:          HttpTrigger-JavaScript\n",
		"Function:    HttpTrigger\n",
		"Trigger:     http\n",
		"Categories:  Core, API\n",
		"Files:       function.json, index.js\n",
		"  - authLevel (enum): Authorization level\n",
		"      default: function\n",
		"      values: function, anonymous\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTemplateDetailWithoutSettings(t *testing.T) {
	out, err := RenderTemplateDetail(template.FunctionTemplate{ID: "Blank", Name: "Blank"})
	if err != nil {
		t.Fatalf("render detail: %v", err)
	}
	if strings.Contains(out, "Settings:") {
		t.Fatalf("unexpected settings section:\n%s", out)
	}
	if !strings.Contains(out, "Categories:  -\n") || !strings.Contains(out, "Trigger:     none\n") {
		t.Fatalf("unexpected placeholders:\n%s", out)
	}
}

func TestRenderBindingList(t *testing.T) {
	bindings := []template.BindingTemplate{
		{
			Type:        "httpTrigger",
			Direction:   "in",
			DisplayName: "HTTP trigger",
			Trigger:     template.TriggerHTTP,
			Settings:    []template.BindingSetting{{Name: "authLevel", ValueType: template.ValueEnum}},
		},
		{Type: "blob", Direction: "out"},
	}
	out, err := RenderBindingList(bindings)
	if err != nil {
		t.Fatalf("render bindings: %v", err)
	}
	want := "httpTrigger (in) [http trigger]: HTTP trigger\n" +
		"  - authLevel (enum)\n" +
		"blob (out)\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("bindings mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFunctionJSON(t *testing.T) {
	tmpl := httpTemplate()
	payload, err := RenderFunctionJSON(tmpl, map[string]string{"authLevel": "anonymous", "unknown": "x"})
	if err != nil {
		t.Fatalf("render function.json: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := map[string]any{
		"bindings": []any{
			map[string]any{"type": "httpTrigger", "direction": "in", "name": "req", "authLevel": "anonymous"},
			map[string]any{"type": "http", "direction": "out", "name": "res"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("function.json mismatch (-want +got):\n%s", diff)
	}

	level, err := tmpl.FunctionConfig.AuthLevel()
	if err != nil || level != funcconfig.AuthLevelFunction {
		t.Fatalf("source configuration mutated: %v, %v", level, err)
	}
}

func TestRenderFunctionJSONConvertsTypes(t *testing.T) {
	tmpl := template.FunctionTemplate{
		ID: "TimerTrigger-JavaScript",
		UserPromptedSettings: []template.BindingSetting{
			{Name: "runOnStartup", ValueType: template.ValueBoolean},
			{Name: "retries", ValueType: template.ValueInt},
			{Name: "tags", ValueType: template.ValueCheckBoxList},
		},
		FunctionConfig: funcconfig.Parse(map[string]any{
			"bindings": []any{map[string]any{"type": "timerTrigger", "name": "myTimer"}},
		}),
	}
	payload, err := RenderFunctionJSON(tmpl, map[string]string{"runOnStartup": "true", "retries": "3", "tags": "a, b,"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	binding := got["bindings"].([]any)[0].(map[string]any)
	if binding["runOnStartup"] != true || binding["retries"] != float64(3) {
		t.Fatalf("unexpected converted values: %#v", binding)
	}
	if diff := cmp.Diff([]any{"a", "b"}, binding["tags"]); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}

	if _, err := RenderFunctionJSON(tmpl, map[string]string{"retries": "many"}); err == nil {
		t.Fatalf("expected integer conversion error")
	}
}

func TestRenderFunctionJSONRequiresConfiguration(t *testing.T) {
	if _, err := RenderFunctionJSON(template.FunctionTemplate{ID: "Empty"}, nil); err == nil {
		t.Fatalf("expected error for missing configuration")
	}
}

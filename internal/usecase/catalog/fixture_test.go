package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleTemplates = `[
  {
    "id": "HttpTrigger-JavaScript",
    "function": {"bindings": [
      {"type": "httpTrigger", "direction": "in", "name": "req", "authLevel": "function"},
      {"type": "http", "direction": "out", "name": "res"}
    ]},
    "metadata": {"name": "$HttpTrigger_name", "defaultFunctionName": "HttpTrigger", "language": "JavaScript", "userPrompt": ["authLevel"], "category": ["Core", "API"]},
    "files": {"index.js": "module.exports = async function () {}"}
  },
  {
    "id": "TimerTrigger-CSharp",
    "function": {"bindings": [{"type": "timerTrigger", "direction": "in", "name": "myTimer", "schedule": "0 */5 * * * *"}]},
    "metadata": {"name": "$TimerTrigger_name", "defaultFunctionName": "TimerTrigger", "language": "C#", "userPrompt": ["schedule"], "category": ["Core"]},
    "files": {"run.csx": "// run"}
  },
  {
    "id": "Broken-Python",
    "function": {"bindings": []},
    "metadata": {"name": "$missing_name", "language": "Python"},
    "files": {}
  }
]`

const sampleBindings = `{
  "variables": {"scheduleError": "$schedule_error"},
  "bindings": [
    {
      "type": "httpTrigger",
      "displayName": "$httpTrigger_displayName",
      "direction": "in",
      "settings": [
        {
          "name": "authLevel",
          "value": "enum",
          "label": "$authLevel_label",
          "defaultValue": "function",
          "enum": [
            {"value": "function", "display": "Function"},
            {"value": "anonymous", "display": "Anonymous"},
            {"value": "admin", "display": "Admin"}
          ]
        }
      ]
    },
    {
      "type": "timerTrigger",
      "displayName": "Timer trigger",
      "direction": "in",
      "settings": [
        {
          "name": "schedule",
          "value": "string",
          "label": "Schedule",
          "required": true,
          "validators": [{"expression": "^\\S+( \\S+){5}$", "errorText": "[variables('scheduleError')]"}]
        }
      ]
    }
  ]
}`

const sampleResources = `{
  "HttpTrigger_name": "HTTP trigger",
  "TimerTrigger_name": "Timer trigger",
  "httpTrigger_displayName": "HTTP trigger",
  "authLevel_label": "Authorization level",
  "schedule_error": "Invalid cron expression"
}`

func writeFeed(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"templates/templates.json": sampleTemplates,
		"bindings/bindings.json":   sampleBindings,
		"resources/Resources.json": sampleResources,
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

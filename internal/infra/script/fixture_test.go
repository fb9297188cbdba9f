// Where: cli/internal/infra/script/fixture_test.go
// What: Shared feed fixtures for parser tests.
// Why: Keep the raw feed shape readable next to the assertions.
package script

import (
	"encoding/json"
	"testing"
)

const fixtureResources = `{
  "lang": {
    "httpTrigger_displayName": "HTTP トリガー"
  },
  "en": {
    "httpTrigger_displayName": "HTTP trigger",
    "timerTrigger_displayName": "Timer trigger",
    "authLevel_label": "Authorization level",
    "authLevel_help": "Determines what <a href=\"https://aka.ms/keys\">keys</a> are needed",
    "authLevel_function": "Function",
    "authLevel_anonymous": "Anonymous",
    "schedule_label": "Schedule",
    "schedule_error": "Invalid cron expression",
    "path_required": "A path is required",
    "path_format": "Path must be lower case",
    "HttpTrigger_name": "HTTP trigger",
    "TimerTrigger_name": "Timer trigger"
  }
}`

const fixtureConfig = `{
  "variables": {
    "authLevelLabel": "$authLevel_label",
    "functionName": "function"
  },
  "bindings": [
    {
      "type": "httpTrigger",
      "displayName": "$httpTrigger_displayName",
      "direction": "in",
      "settings": [
        {
          "name": "authLevel",
          "value": "enum",
          "label": "[variables('authLevelLabel')]",
          "help": "$authLevel_help",
          "defaultValue": "function",
          "enum": [
            {"value": "[variables('functionName')]", "display": "$authLevel_function"},
            {"value": "anonymous", "display": "$authLevel_anonymous"}
          ]
        }
      ]
    },
    {
      "type": "timerTrigger",
      "displayName": "$timerTrigger_displayName",
      "direction": "in",
      "settings": [
        {
          "name": "schedule",
          "value": "string",
          "label": "$schedule_label",
          "defaultValue": "0 * * * * *",
          "required": true,
          "validators": [
            {"expression": "^\\S+( \\S+){5}$", "errorText": "$schedule_error"}
          ]
        }
      ]
    },
    {
      "type": "blob",
      "displayName": "Blob",
      "direction": "out",
      "settings": [
        {
          "name": "path",
          "value": "string",
          "label": "Path",
          "resource": "Storage",
          "validators": [
            {"expression": ".+", "errorText": "$path_required"},
            {"expression": "^[a-z/{}]+$", "errorText": "$path_format"}
          ]
        }
      ]
    }
  ]
}`

const fixtureHTTPTemplate = `{
  "id": "HttpTrigger-CSharp",
  "function": {
    "bindings": [
      {"type": "httpTrigger", "direction": "in", "name": "req", "authLevel": "anonymous"},
      {"type": "http", "direction": "out", "name": "res"}
    ]
  },
  "metadata": {
    "defaultFunctionName": "HttpTrigger",
    "name": "$HttpTrigger_name",
    "language": "C#",
    "userPrompt": ["authLevel", "missingSetting", "authLevel"],
    "category": ["$temp_category_core"]
  },
  "files": {"run.csx": "// run"}
}`

const fixtureTimerTemplate = `{
  "id": "TimerTrigger-JavaScript",
  "function": {
    "bindings": [
      {"type": "timerTrigger", "direction": "in", "name": "myTimer", "schedule": "0 */5 * * * *"}
    ]
  },
  "metadata": {
    "defaultFunctionName": "TimerTrigger",
    "name": "$TimerTrigger_name",
    "language": "JavaScript",
    "userPrompt": ["schedule"]
  },
  "files": {"index.js": "module.exports = async function () {}"}
}`

const fixtureBrokenTemplate = `{
  "id": "Broken-Python",
  "function": {"bindings": []},
  "metadata": {
    "defaultFunctionName": "Broken",
    "name": "$does_not_exist",
    "language": "Python"
  },
  "files": {}
}`

func fixtureFeed(templates ...string) RawFeed {
	entries := make([]json.RawMessage, 0, len(templates))
	for _, tmpl := range templates {
		entries = append(entries, json.RawMessage(tmpl))
	}
	return RawFeed{
		Resources: json.RawMessage(fixtureResources),
		Templates: entries,
		Config:    json.RawMessage(fixtureConfig),
	}
}

func mustFixtureResources(t *testing.T) Resources {
	t.Helper()
	res, err := DecodeResources([]byte(fixtureResources))
	if err != nil {
		t.Fatalf("decode resources: %v", err)
	}
	return res
}

func mustFixtureConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := DecodeConfig([]byte(fixtureConfig))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	return cfg
}

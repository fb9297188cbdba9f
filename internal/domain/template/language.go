// Where: cli/internal/domain/template/language.go
// What: Project language tags and the script feed remap.
// Why: The script feed reuses project language tags for script variants.
package template

// ProjectLanguage is the source language tag of a template.
type ProjectLanguage string

const (
	LanguageJavaScript   ProjectLanguage = "JavaScript"
	LanguageTypeScript   ProjectLanguage = "TypeScript"
	LanguageCSharp       ProjectLanguage = "C#"
	LanguageCSharpScript ProjectLanguage = "C# (script)"
	LanguageFSharp       ProjectLanguage = "F#"
	LanguageFSharpScript ProjectLanguage = "F# (script)"
	LanguageJava         ProjectLanguage = "Java"
	LanguagePython       ProjectLanguage = "Python"
	LanguagePowerShell   ProjectLanguage = "PowerShell"
)

// ScriptLanguage maps a script feed language tag to the tag used downstream.
// C# and F# become their script variants; everything else, Java included,
// passes through.
func ScriptLanguage(language ProjectLanguage) ProjectLanguage {
	switch language {
	case LanguageCSharp:
		return LanguageCSharpScript
	case LanguageFSharp:
		return LanguageFSharpScript
	default:
		return language
	}
}

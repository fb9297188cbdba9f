// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep application identity in one place for config paths and env keys.
package meta

const (
	// Project Identity
	AppName   = "functpl"
	Slug      = "functpl"
	EnvPrefix = "FUNCTPL"

	// Directory Layout
	HomeDir    = ".functpl"
	ConfigFile = "config.yaml"

	// Feed Layout
	TemplatesFile      = "templates/templates"
	BindingsFile       = "bindings/bindings"
	ResourcesDir       = "resources"
	ResourcesBaseName  = "Resources"
	DefaultLanguage    = "en"
	MaxRecentTemplates = 10
)

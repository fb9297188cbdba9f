// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/functpl/cli/internal/domain/template"
	"github.com/poruru-code/functpl/cli/internal/infra/config"
	"github.com/poruru-code/functpl/cli/internal/infra/interaction"
	"github.com/poruru-code/functpl/cli/internal/meta"
	"github.com/poruru-code/functpl/cli/internal/version"
)

// CatalogLoader loads and parses a template feed.
type CatalogLoader interface {
	Load(dir, language string) (template.Templates, error)
}

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the process defaults in Run.
type Dependencies struct {
	Out        io.Writer
	ErrOut     io.Writer
	Prompter   interaction.Prompter
	Catalog    CatalogLoader
	ConfigPath func() (string, error)
	Getwd      func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Feed    string `name:"feed" short:"f" help:"Template feed directory"`
	Lang    string `name:"lang" short:"l" help:"Resource language (e.g. ja-JP)"`
	EnvFile string `name:"env-file" help:"Path to .env file"`
	Emoji   bool   `name:"emoji" help:"Enable emoji output (default: auto)"`
	NoEmoji bool   `name:"no-emoji" help:"Disable emoji output"`

	List         ListCmd         `cmd:"" help:"List function templates"`
	Show         ShowCmd         `cmd:"" help:"Show a function template and its prompted settings"`
	Bindings     BindingsCmd     `cmd:"" help:"List binding templates"`
	Validate     ValidateCmd     `cmd:"" help:"Validate a setting value against a template's rules"`
	New          NewCmd          `cmd:"" help:"Collect settings and print function.json for a template"`
	AuthLevel    AuthLevelCmd    `cmd:"" name:"auth-level" help:"Inspect the trigger and auth level of a function.json"`
	FunctionName FunctionNameCmd `cmd:"" name:"function-name" help:"Extract the function name from a resource id"`
	Version      VersionCmd      `cmd:"" help:"Show version information"`
}

type (
	// ListCmd defines the list command flags.
	ListCmd struct {
		Language     string `help:"Only templates in this language"`
		Category     string `help:"Only templates in this category"`
		HTTP         bool   `name:"http" help:"Only HTTP-triggered templates"`
		Timer        bool   `name:"timer" help:"Only timer-triggered templates"`
		Query        string `short:"q" help:"Substring matched against id and name"`
		ShowFailures bool   `name:"show-failures" help:"List templates that failed to parse"`
	}

	ShowCmd struct {
		ID string `arg:"" name:"id" help:"Template id"`
	}

	BindingsCmd struct{}

	ValidateCmd struct {
		ID      string `arg:"" name:"id" help:"Template id"`
		Setting string `arg:"" name:"setting" help:"Setting name"`
		Value   string `arg:"" name:"value" help:"Candidate value"`
	}

	// NewCmd defines the new command flags.
	NewCmd struct {
		ID       string            `arg:"" name:"id" help:"Template id"`
		Set      map[string]string `name:"set" help:"Setting value (key=value, repeatable)"`
		NoPrompt bool              `name:"no-prompt" help:"Use defaults instead of prompting"`
		Output   string            `short:"o" help:"Write function.json to this path instead of stdout"`
		NoSave   bool              `name:"no-save" help:"Do not record the feed and template in the global config"`
	}

	AuthLevelCmd struct {
		Path string `arg:"" name:"path" help:"Path to function.json" type:"existingfile"`
	}

	FunctionNameCmd struct {
		ResourceID string `arg:"" name:"resource-id" help:"Function resource id"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out
	ui := legacyUI(out)

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.Slug),
		kong.Description("Browse script function templates and generate function.json files."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			ui.Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			ui.Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	ui.Warn("unknown command")
	return 1
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.ConfigPath == nil {
		deps.ConfigPath = config.GlobalConfigPath
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	return deps
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"list":                            runList,
		"show <id>":                       runShow,
		"bindings":                        runBindings,
		"validate <id> <setting> <value>": runValidate,
		"new <id>":                        runNew,
		"auth-level <path>":               runAuthLevel,
		"function-name <resource-id>":     runFunctionName,
		"version":                         func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	legacyUI(out).Info(version.String())
	return 0
}

// runNoArgs prints a short usage summary.
func runNoArgs(out io.Writer) int {
	ui := legacyUI(out)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s list [--language <lang>] [--http|--timer] [-q <text>]", cmd))
	ui.Info(fmt.Sprintf("  %s show <id>", cmd))
	ui.Info(fmt.Sprintf("  %s new <id> [--set key=value]... [--no-prompt]", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected a value") {
		ui := legacyUI(out)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--feed"):
			ui.Warn("`-f/--feed` expects a value. Provide a feed directory or set FUNCTPL_FEED_DIR.")
			ui.Info(fmt.Sprintf("Example: %s --feed ./templates-feed list", cmd))
			return 1
		case strings.Contains(msg, "--lang"):
			ui.Warn("`-l/--lang` expects a value such as ja-JP.")
			ui.Info(fmt.Sprintf("Example: %s --lang ja-JP list", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.local list", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}

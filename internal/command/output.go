// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and emoji resolution.
package command

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/poruru-code/functpl/cli/internal/infra/interaction"
	"github.com/poruru-code/functpl/cli/internal/infra/ui"
	"github.com/poruru-code/functpl/cli/internal/meta"
)

func legacyUI(out io.Writer) ui.UserInterface {
	return ui.NewLegacyUI(out)
}

func commandUI(out io.Writer, cli CLI) (ui.UserInterface, error) {
	emojiEnabled, err := resolveEmojiEnabled(out, cli)
	if err != nil {
		return nil, err
	}
	return ui.NewUI(out, emojiEnabled), nil
}

func resolveEmojiEnabled(out io.Writer, cli CLI) (bool, error) {
	if cli.Emoji && cli.NoEmoji {
		return false, errors.New("--emoji and --no-emoji cannot be used together")
	}
	if cli.Emoji {
		return true, nil
	}
	if cli.NoEmoji {
		return false, nil
	}
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false, nil
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "dumb" {
		return false, nil
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file), nil
	}
	return false, nil
}

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	return name
}

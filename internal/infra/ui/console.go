// Where: cli/internal/infra/ui/console.go
// What: Console output helpers for catalog commands.
// Why: Standardize emojis, indentation, and section layout across commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// Header prints a section header with an emoji.
// Example: 🧩 Templates.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart prints a blank line followed by a header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// BlockEnd ends a logical block.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Rows prints key-value items with keys padded to the longest key.
// Booleans render as yes/no.
// Example:    Auth level:    anonymous.
func (c *Console) Rows(rows []KeyValue) {
	width := 0
	for _, kv := range rows {
		if n := len(kv.Key) + 1; n > width {
			width = n
		}
	}
	for _, kv := range rows {
		fmt.Fprintf(c.Out, "   %-*s %s\n", width, kv.Key+":", formatValue(kv.Value))
	}
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	c.prefixed("✅", "[ok] ", msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	c.prefixed("⚠️", "[warn] ", msg)
}

// Skipped reports a feed entry left out of the catalog.
// Example: ⏭️ template #2 skipped: Broken-Python: Resource "$name" not found.
func (c *Console) Skipped(index int, reason error) {
	c.prefixed("⏭️", "[skip] ", fmt.Sprintf("template #%d skipped: %v", index, reason))
}

func (c *Console) prefixed(emoji, fallback, msg string) {
	prefix := c.emojiPrefix(emoji)
	if prefix == "" {
		prefix = fallback
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}

func formatValue(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case nil:
		return "-"
	default:
		return fmt.Sprint(v)
	}
}

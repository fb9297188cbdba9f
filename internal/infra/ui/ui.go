// Where: cli/internal/infra/ui/ui.go
// What: UserInterface used by usecases and commands.
// Why: Keep output behind a small interface so tests can capture it.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Skipped(index int, reason error)
	Block(emoji, title string, rows []KeyValue)
}

// NewLegacyUI returns a UserInterface that prints every message unprefixed.
func NewLegacyUI(out io.Writer) UserInterface {
	return legacyUI{out: out, console: NewWithEmoji(out, false)}
}

type legacyUI struct {
	out     io.Writer
	console *Console
}

func (l legacyUI) Info(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l legacyUI) Warn(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l legacyUI) Success(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l legacyUI) Skipped(index int, reason error) {
	fmt.Fprintf(l.out, "template #%d skipped: %v\n", index, reason)
}

func (l legacyUI) Block(emoji, title string, rows []KeyValue) {
	l.console.BlockStart(emoji, title)
	l.console.Rows(rows)
	l.console.BlockEnd()
}

// NewUI returns an emoji-aware UserInterface writing to out.
func NewUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Skipped(index int, reason error) {
	c.console.Skipped(index, reason)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	c.console.Rows(rows)
	c.console.BlockEnd()
}

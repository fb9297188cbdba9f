// Where: cli/internal/infra/interaction/interaction.go
// What: Interactive primitives for setting prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// SelectOption represents a single option in a selection menu.
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// InputRequest describes a free-text prompt.
type InputRequest struct {
	Title       string
	Description string
	Default     string
	// Validate rejects a candidate answer. Nil accepts everything.
	Validate func(string) error
}

// Prompter defines the interface for interactive user input and selection.
type Prompter interface {
	Input(req InputRequest) (string, error)
	SelectValue(title string, options []SelectOption) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ErrNoInput is returned by LinePrompter when the input stream is exhausted.
var ErrNoInput = errors.New("no input available")

// LinePrompter reads answers line by line. It serves piped stdin where a TUI cannot run.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and echoing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Input re-reads until req.Validate accepts the answer or the input ends.
func (p *LinePrompter) Input(req InputRequest) (string, error) {
	for {
		if req.Default != "" {
			_, _ = fmt.Fprintf(p.out, "%s [%s]: ", req.Title, req.Default)
		} else {
			_, _ = fmt.Fprintf(p.out, "%s: ", req.Title)
		}
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			line = req.Default
		}
		if req.Validate == nil {
			return line, nil
		}
		if err := req.Validate(line); err != nil {
			_, _ = fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}
		return line, nil
	}
}

func (p *LinePrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}
	_, _ = fmt.Fprintln(p.out, title)
	for i, opt := range options {
		_, _ = fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt.Label)
	}
	_, _ = fmt.Fprint(p.out, "> ")
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(options) {
		return options[n-1].Value, nil
	}
	for _, opt := range options {
		if line == opt.Value || line == opt.Label {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("invalid selection %q", line)
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Where: cli/internal/infra/interaction/selector.go
// What: Interactive prompt helpers using the huh library.
// Why: Provide keyboard-based input and selection for template settings.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(req InputRequest, input *string) error {
	field := huh.NewInput().
		Title(req.Title).
		Value(input)
	if req.Description != "" {
		field.Description(req.Description)
	}
	if req.Default != "" {
		field.Placeholder(req.Default)
	}
	if req.Validate != nil {
		field.Validate(func(value string) error {
			if value == "" {
				value = req.Default
			}
			return req.Validate(value)
		})
	}
	return field.Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(req InputRequest) (string, error) {
	var input string
	if err := runInputPrompt(req, &input); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	if input == "" {
		input = req.Default
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := runSelectPrompt(title, huhOptions, &selected)
	if err != nil {
		return "", fmt.Errorf("prompt select value: %w", err)
	}
	return selected, nil
}

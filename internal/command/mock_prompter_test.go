package command

import (
	"errors"

	"github.com/poruru-code/functpl/cli/internal/infra/interaction"
)

var errNoQueuedAnswer = errors.New("no queued answer")

type mockPrompter struct {
	inputAnswers  []string
	selectAnswers []string
	inputTitles   []string
	selectTitles  []string
}

func (m *mockPrompter) Input(req interaction.InputRequest) (string, error) {
	m.inputTitles = append(m.inputTitles, req.Title)
	return popQueued(&m.inputAnswers)
}

func (m *mockPrompter) SelectValue(title string, _ []interaction.SelectOption) (string, error) {
	m.selectTitles = append(m.selectTitles, title)
	return popQueued(&m.selectAnswers)
}

func popQueued(values *[]string) (string, error) {
	if len(*values) == 0 {
		return "", errNoQueuedAnswer
	}
	value := (*values)[0]
	*values = (*values)[1:]
	return value, nil
}

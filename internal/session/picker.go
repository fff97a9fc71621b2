package session

import (
	"github.com/pterm/pterm"
)

// AnyTitle is the picker entry that clears the job-title constraint
const AnyTitle = "(any title)"

// Picker chooses a job title from the dataset's distinct titles.
type Picker interface {
	PickJobTitle(titles []string) (string, error)
}

// InteractivePicker prompts on the terminal with a searchable pterm select.
type InteractivePicker struct{}

// PickJobTitle returns the chosen title, or "" when AnyTitle is chosen.
func (InteractivePicker) PickJobTitle(titles []string) (string, error) {
	options := make([]string, 0, len(titles)+1)
	options = append(options, AnyTitle)
	options = append(options, titles...)

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Job title").
		WithMaxHeight(15).
		Show()
	if err != nil {
		return "", err
	}
	if choice == AnyTitle {
		return "", nil
	}
	return choice, nil
}

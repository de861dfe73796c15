package disk

import (
	"github.com/pterm/pterm"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Prompter

// Prompter asks the operator a yes/no question during planning and
// verification. Confirm never returns true alongside an error.
type Prompter interface {
	Confirm(question string) (bool, error)
}

type terminalPrompter struct {
	confirm pterm.InteractiveConfirmPrinter
}

func NewTerminalPrompter() Prompter {
	return terminalPrompter{
		confirm: *pterm.DefaultInteractiveConfirm.WithDefaultValue(false),
	}
}

func (p terminalPrompter) Confirm(question string) (bool, error) {
	answer, err := p.confirm.Show(question)
	if err != nil {
		return false, err
	}
	return answer, nil
}

type staticPrompter struct {
	answer bool
}

// NewStaticPrompter answers every question with answer. Used for unattended
// runs and dry-run planning.
func NewStaticPrompter(answer bool) Prompter {
	return staticPrompter{answer: answer}
}

func (p staticPrompter) Confirm(string) (bool, error) { return p.answer, nil }

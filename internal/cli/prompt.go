package cli

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
)

// Prompter asks interactive questions on the terminal.
type Prompter struct {
	rl *readline.Instance
}

// NewPrompter creates a prompter reading from the controlling terminal.
func NewPrompter() (*Prompter, error) {
	rl, err := readline.New("")
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return &Prompter{rl: rl}, nil
}

// Close releases the underlying terminal.
func (p *Prompter) Close() error {
	return p.rl.Close()
}

// Confirm asks a yes/no question and returns the answer. An empty reply
// returns def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	p.rl.SetPrompt(fmt.Sprintf("%s [%s]: ", question, hint))

	line, err := p.rl.Readline()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask asks for a string value, returning def on an empty reply.
func (p *Prompter) Ask(question, def string) (string, error) {
	if def != "" {
		p.rl.SetPrompt(fmt.Sprintf("%s [%s]: ", question, def))
	} else {
		p.rl.SetPrompt(question + ": ")
	}

	line, err := p.rl.Readline()
	if err != nil {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

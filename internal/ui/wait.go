package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// doneMsg carries the result of the awaited operation into the model.
type doneMsg struct {
	err error
}

// waitModel renders a spinner and a message while a blocking operation runs.
// The operation cannot be cancelled from the keyboard; the provider request
// runs to completion or failure, so key events are ignored.
type waitModel struct {
	spinner spinner.Model
	message string
	run     func() error
	err     error
}

func newWaitModel(message string, run func() error) waitModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DimStyle
	return waitModel{spinner: sp, message: message, run: run}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return doneMsg{err: m.run()} },
	)
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m waitModel) View() string {
	return fmt.Sprintf("%s %s\n", m.spinner.View(), DimStyle.Render(m.message))
}

// Await runs fn while showing a spinner with the given message. On a
// non-interactive terminal it prints the message once and just blocks.
func Await(message string, fn func() error) error {
	if !IsInteractive() {
		fmt.Println(message)
		return fn()
	}

	p := tea.NewProgram(newWaitModel(message, fn))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run progress display: %w", err)
	}

	return final.(waitModel).err
}

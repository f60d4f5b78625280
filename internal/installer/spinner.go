package installer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// runWithSpinner shows a spinner on out while fn runs and returns fn's error.
func runWithSpinner(out io.Writer, message string, fn func() error) error {
	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(out), tea.WithInput(nil))

	uiDone := make(chan struct{})
	go func() {
		defer close(uiDone)
		// Spinner failures must not affect the command result.
		_, _ = p.Run()
	}()

	err := fn()
	p.Send(spinnerDoneMsg{err: err})
	<-uiDone
	return err
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✗ %s\n", m.message)
		}
		return fmt.Sprintf("✓ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

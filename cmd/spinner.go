package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loadDoneMsg struct {
	err error
}

type loadSpinnerModel struct {
	spinner spinner.Model
	label   string
	load    tea.Cmd
	err     error
	done    bool
}

func newLoadSpinnerModel(label string, load tea.Cmd) loadSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
	)

	return loadSpinnerModel{spinner: s, label: label, load: load}
}

func (m loadSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m loadSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loadSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runWithSpinner shows label on output while load runs and returns load's error.
func runWithSpinner(ctx context.Context, output io.Writer, label string, load func(context.Context) error) error {
	loadCmd := func() tea.Msg {
		return loadDoneMsg{err: load(ctx)}
	}

	p := tea.NewProgram(
		newLoadSpinnerModel(label, loadCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loadSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statusCheckDoneMsg struct {
	err error
}

type statusCheckSpinnerModel struct {
	spinner spinner.Model
	label   string
	check   tea.Cmd
	err     error
	done    bool
}

func newStatusCheckSpinnerModel(label string, check tea.Cmd) statusCheckSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return statusCheckSpinnerModel{
		spinner: s,
		label:   label,
		check:   check,
	}
}

func (m statusCheckSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.check)
}

func (m statusCheckSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusCheckDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m statusCheckSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runStatusCheckSpinner(ctx context.Context, output io.Writer, check func(context.Context) error) error {
	checkCmd := func() tea.Msg {
		return statusCheckDoneMsg{err: check(ctx)}
	}

	p := tea.NewProgram(
		newStatusCheckSpinnerModel("Checking price and availability...", checkCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(statusCheckSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/ccteam/internal/adapters/render/console"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stepReporter marks the current step done and moves the spinner to next.
// An empty next keeps the current label.
type stepReporter func(done, next string)

type stepDoneMsg struct {
	err error
}

type stepAdvanceMsg struct {
	done string
	next string
}

type stepSpinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	err     error
	done    bool
}

var stepDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

func newStepSpinnerModel(label string, work tea.Cmd) stepSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return stepSpinnerModel{
		spinner: s,
		label:   label,
		work:    work,
	}
}

func (m stepSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m stepSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stepAdvanceMsg:
		if msg.next != "" {
			m.label = msg.next
		}
		return m, tea.Println(stepDoneStyle.Render("✔") + " " + msg.done)
	case stepDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m stepSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runSteps runs work behind a spinner on interactive output, or prints one
// line per finished step otherwise.
func runSteps(ctx context.Context, output io.Writer, interactive bool, label string, work func(context.Context, stepReporter) error) error {
	if !interactive {
		return work(ctx, func(done, _ string) {
			console.Done(output, done)
		})
	}

	var p *tea.Program
	report := func(done, next string) {
		p.Send(stepAdvanceMsg{done: done, next: next})
	}
	workCmd := func() tea.Msg {
		return stepDoneMsg{err: work(ctx, report)}
	}

	p = tea.NewProgram(
		newStepSpinnerModel(label, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(stepSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

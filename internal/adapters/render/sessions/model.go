package sessions

import (
	"errors"
	"io"

	"github.com/bnema/ccteam/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// model renders once on its first message and quits; View then holds the
// finished table.
type model struct {
	records []domain.SessionRecord
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(records []domain.SessionRecord, opts RenderOptions) model {
	return model{
		records: records,
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.records, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out the active session table.
func Render(records []domain.SessionRecord, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(records, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

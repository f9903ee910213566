package sessions

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultWidth = 80

	nameColumnWidth = 17
	timeColumnWidth = 20
	timeLayout      = "2006-01-02 15:04"
	emptyMessage    = "No active ccteam sessions found."
)

type RenderOptions struct {
	// Width is the separator length; zero falls back to DefaultWidth.
	Width int
	// Location for start times; nil means local time.
	Location *time.Location
}

func renderView(records []domain.SessionRecord, opts RenderOptions, s styles) string {
	if len(records) == 0 {
		return s.empty.Render(emptyMessage)
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	lines := []string{
		"",
		s.header.Render(fmt.Sprintf("%-*s %-*s %s", nameColumnWidth, "SESSION", timeColumnWidth, "STARTED AT", "WORKING DIRECTORY")),
		s.separator.Render(strings.Repeat("─", width)),
	}

	for _, record := range records {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			s.name.Render(fmt.Sprintf("%-*s", nameColumnWidth, record.Name)),
			s.detail.Render(fmt.Sprintf("%-*s", timeColumnWidth, record.StartedAt.In(loc).Format(timeLayout))),
			record.WorkingDirectory,
		))
	}

	lines = append(lines, "", s.footer.Render(fmt.Sprintf("Found %d active session(s)", len(records))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

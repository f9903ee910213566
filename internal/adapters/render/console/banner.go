package console

import (
	"strings"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	bannerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(1, 2).
			Margin(1, 1)
	bannerTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	commandLine = lipgloss.NewStyle().Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	roleStyles = map[domain.Role]lipgloss.Style{
		domain.RoleManager: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		domain.RoleLeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.RoleWorker:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
	roleSummaries = map[domain.Role]string{
		domain.RoleManager: "Task decomposition & delegation",
		domain.RoleLeader:  "Review & implementation specs",
		domain.RoleWorker:  "Code implementation",
	}
)

// AttachBanner tells the user how to join a freshly started session.
func AttachBanner(multiplexer string, session domain.SessionName) string {
	lines := []string{
		bannerTitle.Render("Claude Code Team Ready!"),
		"",
		"Your team is set up with 3 roles:",
	}
	for _, role := range domain.Roles {
		lines = append(lines, roleStyles[role].Render("  • "+role.Title())+" - "+roleSummaries[role])
	}
	lines = append(lines,
		"",
		"To start collaborating:",
		promptStyle.Render("  $ ")+commandLine.Render(AttachCommand(multiplexer, session)),
	)

	return bannerBox.Render(strings.Join(lines, "\n"))
}

func AttachCommand(multiplexer string, session domain.SessionName) string {
	if multiplexer == "" {
		multiplexer = "tmux"
	}
	return multiplexer + " attach-session -t " + string(session)
}

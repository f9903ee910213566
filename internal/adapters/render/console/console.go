package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func Prefix(level Level) string {
	switch level {
	case LevelWarn:
		return warnStyle.Render("[WARN]")
	case LevelError:
		return errorStyle.Render("[ERROR]")
	default:
		return infoStyle.Render("[INFO]")
	}
}

func Log(w io.Writer, level Level, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Prefix(level), fmt.Sprintf(format, args...))
}

func Info(w io.Writer, format string, args ...any) {
	Log(w, LevelInfo, format, args...)
}

func Warn(w io.Writer, format string, args ...any) {
	Log(w, LevelWarn, format, args...)
}

// Done prints a completed step line, used in place of a spinner when the
// output is not a terminal.
func Done(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", okStyle.Render("✔"), message)
}

func Session(name domain.SessionName) string {
	return nameStyle.Render(string(name))
}

// Error renders err as "Error: <message>" with the remediation hint, if any,
// indented on the following line.
func Error(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), err.Error())
	if hint := strings.TrimSpace(domain.Details(err)); hint != "" {
		for _, line := range strings.Split(hint, "\n") {
			fmt.Fprintf(w, "  %s\n", hintStyle.Render(line))
		}
	}
}

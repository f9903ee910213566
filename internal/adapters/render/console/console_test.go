package console

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogPrefixes(t *testing.T) {
	var buf bytes.Buffer

	Info(&buf, "starting %s", "team")
	Warn(&buf, "careful")
	Log(&buf, LevelError, "broken")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "starting team")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "[ERROR]")
}

func TestErrorRendersHintOnIndentedLine(t *testing.T) {
	var buf bytes.Buffer

	Error(&buf, fmt.Errorf("start: %w", domain.NewEnvironmentError("tmux is not installed", "Please install tmux first.")))

	out := buf.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "start: tmux is not installed\n")
	assert.Contains(t, out, "  ")
	assert.Contains(t, out, "Please install tmux first.")
}

func TestErrorWithoutHint(t *testing.T) {
	var buf bytes.Buffer

	Error(&buf, errors.New("boom"))

	assert.Contains(t, buf.String(), "boom")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestAttachBanner(t *testing.T) {
	banner := AttachBanner("tmux", "ccteam-ab12C")

	assert.Contains(t, banner, "tmux attach-session -t ccteam-ab12C")
	assert.Contains(t, banner, "Manager")
	assert.Contains(t, banner, "Leader")
	assert.Contains(t, banner, "Worker")
}

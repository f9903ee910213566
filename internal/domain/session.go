package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const (
	SessionPrefix = "ccteam-"

	sessionSuffixLength = 5
	sessionAlphabet     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var sessionNamePattern = regexp.MustCompile(`^ccteam-[A-Za-z0-9]{5}$`)

type SessionName string

// GenerateSessionName returns SessionPrefix followed by five random
// characters from a 62-symbol alphabet. Collisions are not guarded against.
func GenerateSessionName() (SessionName, error) {
	var b strings.Builder
	b.WriteString(SessionPrefix)

	max := big.NewInt(int64(len(sessionAlphabet)))
	for i := 0; i < sessionSuffixLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate session name: %w", err)
		}
		b.WriteByte(sessionAlphabet[n.Int64()])
	}

	return SessionName(b.String()), nil
}

func ParseSessionName(raw string) (SessionName, error) {
	trimmed := strings.TrimSpace(raw)
	if !sessionNamePattern.MatchString(trimmed) {
		return "", NewValidationError(
			fmt.Sprintf("invalid session ID format %q", raw),
			"expected format: ccteam-XXXXX",
		)
	}
	return SessionName(trimmed), nil
}

// HasSessionPrefix reports whether a multiplexer session name belongs to this tool.
func HasSessionPrefix(name string) bool {
	return strings.HasPrefix(name, SessionPrefix)
}

// PaneAddress is {session}:{window}.{pane}; the window is always 0.
func PaneAddress(session SessionName, role Role) string {
	return fmt.Sprintf("%s:0.%d", session, role.PaneIndex())
}

type SessionRecord struct {
	Name             SessionName
	StartedAt        time.Time
	WorkingDirectory string
}

func (r SessionRecord) Validate() error {
	if strings.TrimSpace(string(r.Name)) == "" {
		return fmt.Errorf("session name is required")
	}
	if r.StartedAt.IsZero() {
		return fmt.Errorf("start timestamp is required")
	}
	if strings.TrimSpace(r.WorkingDirectory) == "" {
		return fmt.Errorf("working directory is required")
	}

	return nil
}

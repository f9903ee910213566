package toml

import (
	"fmt"
	"time"

	"github.com/bnema/ccteam/internal/domain"
)

const (
	currentSchemaVersion = 1

	// Millisecond precision UTC, the common ISO-8601 rendering.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type sessionSchema struct {
	Version          int    `toml:"version"`
	SessionName      string `toml:"session_name"`
	StartedAt        string `toml:"started_at"`
	WorkingDirectory string `toml:"working_directory"`
}

func (s *sessionSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s sessionSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSessionSchema(record domain.SessionRecord) sessionSchema {
	return sessionSchema{
		Version:          currentSchemaVersion,
		SessionName:      string(record.Name),
		StartedAt:        record.StartedAt.UTC().Format(timestampLayout),
		WorkingDirectory: record.WorkingDirectory,
	}
}

func fromSessionSchema(s sessionSchema) (domain.SessionRecord, error) {
	if err := s.validateVersion(); err != nil {
		return domain.SessionRecord{}, err
	}

	startedAt, err := time.Parse(time.RFC3339Nano, s.StartedAt)
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("parse started_at: %w", err)
	}

	record := domain.SessionRecord{
		Name:             domain.SessionName(s.SessionName),
		StartedAt:        startedAt,
		WorkingDirectory: s.WorkingDirectory,
	}
	if err := record.Validate(); err != nil {
		return domain.SessionRecord{}, err
	}

	return record, nil
}

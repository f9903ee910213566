package ports

import (
	"context"

	"github.com/bnema/ccteam/internal/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, record domain.SessionRecord) error
	Delete(ctx context.Context, name domain.SessionName) error
	// Names lists every stored record name without decoding the records.
	Names(ctx context.Context) ([]domain.SessionName, error)
	// List returns the decodable records. Records that fail validation are
	// removed from the store and left out.
	List(ctx context.Context) ([]domain.SessionRecord, error)
}

package historyrepo

import (
	"context"
	"time"

	"github.com/vishnuv4/students-excel/internal/domain"
)

// Round is the persistence shape of an archived pairing round.
// It is not an HTTP DTO.
type Round struct {
	ID    domain.RoundID
	Label string

	// Seed records the shuffle seed when the round was generated
	// reproducibly; nil means the permutation was nondeterministic.
	Seed *int64

	Pairs []domain.Pair

	CreatedAt time.Time
}

// Repository provides access to archived pairing rounds.
//
// Labels are unique across the archive. List returns rounds newest first;
// ties break on label so ordering stays deterministic.
type Repository interface {
	Create(ctx context.Context, r Round) error
	GetByLabel(ctx context.Context, label string) (Round, error)
	List(ctx context.Context) ([]Round, error)
}

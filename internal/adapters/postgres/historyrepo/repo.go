package historyrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vishnuv4/students-excel/internal/adapters/postgres"
	"github.com/vishnuv4/students-excel/internal/domain"
	"github.com/vishnuv4/students-excel/internal/ports/out/historyrepo"
)

// Repo is a Postgres implementation of historyrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Create(ctx context.Context, round historyrepo.Round) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	roundUUID, err := uuid.Parse(string(round.ID))
	if err != nil {
		return fmt.Errorf("invalid round id: %w", err)
	}

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO pairing_rounds (id, label, seed, created_at)
			VALUES ($1, $2, $3, $4)
		`, roundUUID, round.Label, round.Seed, round.CreatedAt.UTC())
		if err != nil {
			if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode && pe.ConstraintName == "pairing_rounds_label_unique" {
				return historyrepo.ErrAlreadyExists
			}
			return err
		}

		for i, p := range round.Pairs {
			_, err := tx.Exec(ctx, `
				INSERT INTO pairing_pairs (round_id, position, name_a, name_b)
				VALUES ($1, $2, $3, $4)
			`, roundUUID, i, p.A, p.B)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) GetByLabel(ctx context.Context, label string) (historyrepo.Round, error) {
	if r.pool == nil {
		return historyrepo.Round{}, errors.New("nil postgres pool")
	}

	var (
		id        uuid.UUID
		seed      *int64
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, seed, created_at
		FROM pairing_rounds
		WHERE label = $1
	`, label).Scan(&id, &seed, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return historyrepo.Round{}, historyrepo.ErrNotFound
		}
		return historyrepo.Round{}, err
	}

	pairs, err := r.loadPairs(ctx, id)
	if err != nil {
		return historyrepo.Round{}, err
	}
	return historyrepo.Round{
		ID:        domain.RoundID(id.String()),
		Label:     label,
		Seed:      seed,
		Pairs:     pairs,
		CreatedAt: createdAt.UTC(),
	}, nil
}

func (r *Repo) List(ctx context.Context) ([]historyrepo.Round, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, label, seed, created_at
		FROM pairing_rounds
		ORDER BY created_at DESC, label ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]historyrepo.Round, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			label     string
			seed      *int64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &label, &seed, &createdAt); err != nil {
			return nil, err
		}
		out = append(out, historyrepo.Round{
			ID:        domain.RoundID(id.String()),
			Label:     label,
			Seed:      seed,
			CreatedAt: createdAt.UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		id, err := uuid.Parse(string(out[i].ID))
		if err != nil {
			return nil, fmt.Errorf("invalid stored round id: %w", err)
		}
		pairs, err := r.loadPairs(ctx, id)
		if err != nil {
			return nil, err
		}
		out[i].Pairs = pairs
	}
	return out, nil
}

func (r *Repo) loadPairs(ctx context.Context, roundID uuid.UUID) ([]domain.Pair, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name_a, name_b
		FROM pairing_pairs
		WHERE round_id = $1
		ORDER BY position ASC
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := make([]domain.Pair, 0)
	for rows.Next() {
		var p domain.Pair
		if err := rows.Scan(&p.A, &p.B); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

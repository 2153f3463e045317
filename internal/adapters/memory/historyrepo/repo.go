package historyrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/vishnuv4/students-excel/internal/domain"
	"github.com/vishnuv4/students-excel/internal/ports/out/historyrepo"
)

// Repo is an in-memory implementation of historyrepo.Repository. It is
// safe for concurrent use.
type Repo struct {
	mu      sync.RWMutex
	byLabel map[string]historyrepo.Round
}

func NewRepo() *Repo {
	return &Repo{byLabel: make(map[string]historyrepo.Round)}
}

func (r *Repo) Create(ctx context.Context, round historyrepo.Round) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byLabel[round.Label]; ok {
		return historyrepo.ErrAlreadyExists
	}
	r.byLabel[round.Label] = cloneRound(round)
	return nil
}

func (r *Repo) GetByLabel(ctx context.Context, label string) (historyrepo.Round, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	round, ok := r.byLabel[label]
	if !ok {
		return historyrepo.Round{}, historyrepo.ErrNotFound
	}
	return cloneRound(round), nil
}

func (r *Repo) List(ctx context.Context) ([]historyrepo.Round, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]historyrepo.Round, 0, len(r.byLabel))
	for _, round := range r.byLabel {
		out = append(out, cloneRound(round))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Label < out[j].Label
	})
	return out, nil
}

func cloneRound(r historyrepo.Round) historyrepo.Round {
	cp := r
	if r.Seed != nil {
		seed := *r.Seed
		cp.Seed = &seed
	}
	if r.Pairs != nil {
		cp.Pairs = append([]domain.Pair(nil), r.Pairs...)
	}
	return cp
}

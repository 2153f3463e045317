// Package contracttest holds behavioral suites every implementation of an
// out port must pass. Adapters run them from their own test files.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vishnuv4/students-excel/internal/domain"
	historyrepoport "github.com/vishnuv4/students-excel/internal/ports/out/historyrepo"
	workbookport "github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

type CleanupFunc = func()

type WorkbookRepoFactory func(t *testing.T) (workbookport.Repository, CleanupFunc)
type HistoryRepoFactory func(t *testing.T) (historyrepoport.Repository, CleanupFunc)

// RunWorkbookRepo exercises the workbook port contract. It only asserts
// about sheets it writes itself: a fresh xlsx workbook carries a default
// sheet, a fresh in-memory workbook carries none.
func RunWorkbookRepo(t *testing.T, newRepo WorkbookRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Missing sheet.
	if _, err := repo.ReadSheet(ctx, "no-such-sheet"); !errors.Is(err, workbookport.ErrSheetNotFound) {
		t.Fatalf("ReadSheet(missing) err=%v, want ErrSheetNotFound", err)
	}

	// Write/read round trip with whitespace that must be trimmed on read.
	in := workbookport.Sheet{
		Name:    "Names",
		Columns: []string{"Names"},
		Rows:    [][]string{{"  Jane Doe "}, {"Bob Smith"}},
	}
	if err := repo.WriteSheet(ctx, in); err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}
	got, err := repo.ReadSheet(ctx, "Names")
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}
	col := got.Column(0)
	if len(col) != 2 || col[0] != "Jane Doe" || col[1] != "Bob Smith" {
		t.Fatalf("column 0 = %v, want [Jane Doe, Bob Smith]", col)
	}
	if len(got.Columns) == 0 || got.Columns[0] != "Names" {
		t.Fatalf("header = %v, want [Names]", got.Columns)
	}

	// Two-column sheet where a trailing cell is the empty placeholder;
	// adapters may drop trailing empties, so access goes through Column.
	pairs := workbookport.Sheet{
		Name:    "Lab 1",
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"Jane Doe", "Bob Smith"}, {"Alice Lee", ""}},
	}
	if err := repo.WriteSheet(ctx, pairs); err != nil {
		t.Fatalf("WriteSheet pairs: %v", err)
	}
	got, err = repo.ReadSheet(ctx, "Lab 1")
	if err != nil {
		t.Fatalf("ReadSheet pairs: %v", err)
	}
	a, b := got.Column(0), got.Column(1)
	if len(a) != 2 || a[0] != "Jane Doe" || a[1] != "Alice Lee" {
		t.Fatalf("column A = %v", a)
	}
	if len(b) != 2 || b[0] != "Bob Smith" || b[1] != "" {
		t.Fatalf("column B = %v, want trailing placeholder to read back empty", b)
	}

	// Replace semantics: rewriting a sheet discards all previous rows.
	shorter := workbookport.Sheet{
		Name:    "Names",
		Columns: []string{"Names"},
		Rows:    [][]string{{"Sam Kim"}},
	}
	if err := repo.WriteSheet(ctx, shorter); err != nil {
		t.Fatalf("WriteSheet replace: %v", err)
	}
	got, err = repo.ReadSheet(ctx, "Names")
	if err != nil {
		t.Fatalf("ReadSheet after replace: %v", err)
	}
	if col := got.Column(0); len(col) != 1 || col[0] != "Sam Kim" {
		t.Fatalf("after replace column 0 = %v, want [Sam Kim]", col)
	}

	// Written sheets appear in SheetNames in write order.
	names, err := repo.SheetNames(ctx)
	if err != nil {
		t.Fatalf("SheetNames: %v", err)
	}
	if indexOf(names, "Names") < 0 || indexOf(names, "Lab 1") < 0 {
		t.Fatalf("SheetNames=%v, want it to contain Names and Lab 1", names)
	}
	if indexOf(names, "Names") > indexOf(names, "Lab 1") {
		t.Fatalf("SheetNames=%v, want Names before Lab 1", names)
	}
}

// RunHistoryRepo exercises the pairing-history archive contract.
func RunHistoryRepo(t *testing.T, newRepo HistoryRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	seed := int64(42)
	first := historyrepoport.Round{
		ID:    domain.RoundID(uuid.NewString()),
		Label: "Lab 1",
		Seed:  &seed,
		Pairs: []domain.Pair{
			{A: "Jane Doe", B: "Bob Smith"},
			{A: "Alice Lee", B: domain.Placeholder},
		},
		CreatedAt: time.Unix(1000, 0).UTC(),
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByLabel(ctx, "Lab 1")
	if err != nil {
		t.Fatalf("GetByLabel: %v", err)
	}
	if got.ID != first.ID || got.Label != "Lab 1" || !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("got=%+v, want %+v", got, first)
	}
	if got.Seed == nil || *got.Seed != seed {
		t.Fatalf("seed=%v, want %d", got.Seed, seed)
	}
	if len(got.Pairs) != 2 || got.Pairs[0] != first.Pairs[0] || got.Pairs[1] != first.Pairs[1] {
		t.Fatalf("pairs=%v, want order preserved: %v", got.Pairs, first.Pairs)
	}

	// Label uniqueness.
	dup := first
	dup.ID = domain.RoundID(uuid.NewString())
	if err := repo.Create(ctx, dup); !errors.Is(err, historyrepoport.ErrAlreadyExists) {
		t.Fatalf("Create duplicate label err=%v, want ErrAlreadyExists", err)
	}

	// Missing label.
	if _, err := repo.GetByLabel(ctx, "Lab 99"); !errors.Is(err, historyrepoport.ErrNotFound) {
		t.Fatalf("GetByLabel(missing) err=%v, want ErrNotFound", err)
	}

	// List returns newest first. Seedless rounds keep a nil Seed.
	second := historyrepoport.Round{
		ID:        domain.RoundID(uuid.NewString()),
		Label:     "Lab 2",
		Pairs:     []domain.Pair{{A: "Jane Doe", B: "Alice Lee"}},
		CreatedAt: time.Unix(2000, 0).UTC(),
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].Label != "Lab 2" || all[1].Label != "Lab 1" {
		t.Fatalf("List order=%v, want [Lab 2, Lab 1]", labelsOf(all))
	}
	if all[0].Seed != nil {
		t.Fatalf("Lab 2 seed=%v, want nil", all[0].Seed)
	}
	if len(all[0].Pairs) != 1 || len(all[1].Pairs) != 2 {
		t.Fatalf("List must hydrate pairs, got %v / %v", all[0].Pairs, all[1].Pairs)
	}
}

func indexOf(ss []string, want string) int {
	for i, s := range ss {
		if s == want {
			return i
		}
	}
	return -1
}

func labelsOf(rounds []historyrepoport.Round) []string {
	out := make([]string, 0, len(rounds))
	for _, r := range rounds {
		out = append(out, r.Label)
	}
	return out
}

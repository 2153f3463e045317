package pairing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/vishnuv4/students-excel/internal/domain"
	clockport "github.com/vishnuv4/students-excel/internal/ports/out/clock"
	"github.com/vishnuv4/students-excel/internal/ports/out/historyrepo"
	shuffleport "github.com/vishnuv4/students-excel/internal/ports/out/shuffle"
	"github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

// PairColumns are the headers written to generated pairing sheets.
var PairColumns = []string{"A", "B"}

type Service struct {
	wb      workbook.Repository
	history historyrepo.Repository // nil when no archive is configured
	shuf    shuffleport.Shuffler
	clk     clockport.Clock

	newRoundID func() domain.RoundID
}

func NewService(wb workbook.Repository, history historyrepo.Repository, shuf shuffleport.Shuffler, clk clockport.Clock) *Service {
	return &Service{
		wb:      wb,
		history: history,
		shuf:    shuf,
		clk:     clk,
		newRoundID: func() domain.RoundID {
			return domain.RoundID(uuid.NewString())
		},
	}
}

// SetNewRoundIDForTest overrides round ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewRoundIDForTest(fn func() domain.RoundID) {
	if fn != nil {
		s.newRoundID = fn
	}
}

// GenerateRound reads the roster from the names sheet, builds a random
// pairing round and replaces the target sheet with it. When a history
// archive is configured the round is recorded there under the target
// sheet name as its label; the label is resolved before the workbook
// write so a refused round never overwrites the target sheet.
func (s *Service) GenerateRound(ctx context.Context, in GenerateRoundInput) (GeneratedRound, error) {
	if s.history != nil {
		if _, err := s.history.GetByLabel(ctx, in.TargetSheet); err == nil {
			return GeneratedRound{}, roundAlreadyArchived(in.TargetSheet)
		} else if !errors.Is(err, historyrepo.ErrNotFound) {
			return GeneratedRound{}, err
		}
	}

	sheet, err := s.wb.ReadSheet(ctx, in.NamesSheet)
	if err != nil {
		return GeneratedRound{}, mapWorkbookErr(err, in.NamesSheet)
	}
	roster := dropBlank(sheet.Column(0))

	pairs, err := domain.BuildRound(roster, func(names []string) {
		s.shuf.Shuffle(names, in.Seed)
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyRoster) {
			return GeneratedRound{}, &Error{
				Status:  422,
				Code:    "EMPTY_ROSTER",
				Message: "no names to pair",
				Details: map[string]any{"sheet": in.NamesSheet},
			}
		}
		return GeneratedRound{}, err
	}

	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p.A, p.B})
	}
	out := workbook.Sheet{
		Name:    in.TargetSheet,
		Columns: append([]string(nil), PairColumns...),
		Rows:    rows,
	}
	if err := s.wb.WriteSheet(ctx, out); err != nil {
		return GeneratedRound{}, mapWorkbookErr(err, in.TargetSheet)
	}

	result := GeneratedRound{Label: in.TargetSheet, Pairs: pairs}
	if s.history != nil {
		rec := historyrepo.Round{
			ID:        s.newRoundID(),
			Label:     in.TargetSheet,
			Seed:      in.Seed,
			Pairs:     pairs,
			CreatedAt: s.clk.Now(),
		}
		if err := s.history.Create(ctx, rec); err != nil {
			// A concurrent run can still win the label between the
			// up-front check and here.
			if errors.Is(err, historyrepo.ErrAlreadyExists) {
				return GeneratedRound{}, roundAlreadyArchived(in.TargetSheet)
			}
			return GeneratedRound{}, err
		}
		result.RoundID = rec.ID
	}

	return result, nil
}

// CheckDuplicates compares every distinct pair of the named round sheets
// and reports the partnerships they share. All requested sheets are
// resolved before any comparison runs, so an unknown sheet fails the whole
// check up front.
func (s *Service) CheckDuplicates(ctx context.Context, in CheckDuplicatesInput) ([]Comparison, error) {
	if len(in.Sheets) < 2 {
		return nil, insufficientRounds(len(in.Sheets))
	}

	rounds := make([][]domain.Pair, 0, len(in.Sheets))
	for _, name := range in.Sheets {
		sheet, err := s.wb.ReadSheet(ctx, name)
		if err != nil {
			if errors.Is(err, workbook.ErrSheetNotFound) {
				return nil, unknownRound("sheet", name)
			}
			return nil, mapWorkbookErr(err, name)
		}
		rounds = append(rounds, pairsFromSheet(sheet))
	}

	return compareAll(in.Sheets, rounds), nil
}

// CheckHistory runs the duplicate comparison against archived rounds
// instead of workbook sheets.
func (s *Service) CheckHistory(ctx context.Context, labels []string) ([]Comparison, error) {
	if s.history == nil {
		return nil, historyDisabled()
	}
	if len(labels) < 2 {
		return nil, insufficientRounds(len(labels))
	}

	rounds := make([][]domain.Pair, 0, len(labels))
	for _, label := range labels {
		r, err := s.history.GetByLabel(ctx, label)
		if err != nil {
			if errors.Is(err, historyrepo.ErrNotFound) {
				return nil, unknownRound("label", label)
			}
			return nil, err
		}
		rounds = append(rounds, r.Pairs)
	}

	return compareAll(labels, rounds), nil
}

// ListHistory returns all archived rounds, newest first.
func (s *Service) ListHistory(ctx context.Context) ([]historyrepo.Round, error) {
	if s.history == nil {
		return nil, historyDisabled()
	}
	return s.history.List(ctx)
}

func compareAll(ids []string, rounds [][]domain.Pair) []Comparison {
	out := make([]Comparison, 0, len(rounds)*(len(rounds)-1)/2)
	for i := range rounds {
		for j := i + 1; j < len(rounds); j++ {
			out = append(out, Comparison{
				RoundA: ids[i],
				RoundB: ids[j],
				Common: domain.CommonPairs(rounds[i], rounds[j]),
			})
		}
	}
	return out
}

// pairsFromSheet reads pair rows as (column 0, column 1). Fully blank rows
// are skipped; a row with one blank side is kept as a placeholder pair.
func pairsFromSheet(s workbook.Sheet) []domain.Pair {
	a, b := s.Column(0), s.Column(1)
	pairs := make([]domain.Pair, 0, len(a))
	for i := range a {
		if a[i] == domain.Placeholder && b[i] == domain.Placeholder {
			continue
		}
		pairs = append(pairs, domain.Pair{A: a[i], B: b[i]})
	}
	return pairs
}

func dropBlank(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func insufficientRounds(got int) error {
	return &Error{
		Status:  422,
		Code:    "INSUFFICIENT_ROUNDS",
		Message: "need at least two rounds to compare",
		Details: map[string]any{"got": got},
	}
}

func unknownRound(kind, id string) error {
	return &Error{
		Status:  404,
		Code:    "UNKNOWN_ROUND",
		Message: "round not found",
		Details: map[string]any{kind: id},
	}
}

func roundAlreadyArchived(label string) error {
	return &Error{
		Status:  409,
		Code:    "ROUND_ALREADY_ARCHIVED",
		Message: "a round with this label is already archived",
		Details: map[string]any{"label": label},
	}
}

func historyDisabled() error {
	return &Error{
		Status:  409,
		Code:    "HISTORY_DISABLED",
		Message: "no pairing history archive is configured",
	}
}

func mapWorkbookErr(err error, sheet string) error {
	switch {
	case errors.Is(err, workbook.ErrSheetNotFound):
		return &Error{
			Status:  404,
			Code:    "SHEET_NOT_FOUND",
			Message: "sheet not found",
			Details: map[string]any{"sheet": sheet},
		}
	case errors.Is(err, workbook.ErrWorkbookNotFound):
		return &Error{
			Status:  404,
			Code:    "WORKBOOK_NOT_FOUND",
			Message: "workbook not found",
		}
	default:
		return err
	}
}

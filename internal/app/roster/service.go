package roster

import (
	"context"
	"errors"

	"github.com/vishnuv4/students-excel/internal/domain"
	"github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

type Service struct {
	wb workbook.Repository
}

func NewService(wb workbook.Repository) *Service {
	return &Service{wb: wb}
}

// NormalizeNames reads raw "Last, First" entries from the first column of
// the source sheet, converts them to display form, validates the count and
// replaces the target sheet with the result. The target sheet is written
// only after validation passes, so a failed run never commits a partial
// roster.
func (s *Service) NormalizeNames(ctx context.Context, in NormalizeNamesInput) (NormalizeNamesResult, error) {
	sheet, err := s.wb.ReadSheet(ctx, in.SourceSheet)
	if err != nil {
		return NormalizeNamesResult{}, mapWorkbookErr(err, in.SourceSheet)
	}

	raw := sheet.Column(0)
	if in.DropLeadingRows > 0 {
		if in.DropLeadingRows >= len(raw) {
			raw = nil
		} else {
			raw = raw[in.DropLeadingRows:]
		}
	}
	if in.DropTrailingRows > 0 {
		if in.DropTrailingRows >= len(raw) {
			raw = nil
		} else {
			raw = raw[:len(raw)-in.DropTrailingRows]
		}
	}

	names, err := domain.NormalizeRoster(raw, in.ExpectedCount)
	if err != nil {
		malformed := (*domain.MalformedNameError)(nil)
		if errors.As(err, &malformed) {
			return NormalizeNamesResult{}, &Error{
				Status:  422,
				Code:    "MALFORMED_NAME",
				Message: `roster entry is not in "Last, First" form`,
				Details: map[string]any{"raw": malformed.Raw, "sheet": in.SourceSheet},
			}
		}
		mismatch := (*domain.CountMismatchError)(nil)
		if errors.As(err, &mismatch) {
			return NormalizeNamesResult{}, &Error{
				Status:  422,
				Code:    "COUNT_MISMATCH",
				Message: "normalized roster size does not match the expected count",
				Details: map[string]any{"expected": mismatch.Expected, "actual": mismatch.Actual},
			}
		}
		return NormalizeNamesResult{}, err
	}

	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	out := workbook.Sheet{
		Name:    in.TargetSheet,
		Columns: []string{in.TargetSheet},
		Rows:    rows,
	}
	if err := s.wb.WriteSheet(ctx, out); err != nil {
		return NormalizeNamesResult{}, mapWorkbookErr(err, in.TargetSheet)
	}

	return NormalizeNamesResult{Sheet: in.TargetSheet, Names: names}, nil
}

// ListSheets returns the workbook's sheet names in workbook order.
func (s *Service) ListSheets(ctx context.Context) ([]string, error) {
	names, err := s.wb.SheetNames(ctx)
	if err != nil {
		return nil, mapWorkbookErr(err, "")
	}
	return names, nil
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

package roster

import (
	"context"
	"errors"
	"reflect"
	"testing"

	memworkbook "github.com/vishnuv4/students-excel/internal/adapters/memory/workbook"
	workbookport "github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

func seedSheet(t *testing.T, wb *memworkbook.Repo, s workbookport.Sheet) {
	t.Helper()
	if err := wb.WriteSheet(context.Background(), s); err != nil {
		t.Fatalf("seed sheet %s: %v", s.Name, err)
	}
}

func TestNormalizeNames_HappyPath(t *testing.T) {
	t.Parallel()

	wb := memworkbook.NewRepo()
	seedSheet(t, wb, workbookport.Sheet{
		Name:    "full_list",
		Columns: []string{"Student"},
		Rows: [][]string{
			{"Doe,  Jane "},
			{"Smith, Bob"},
			{"de  la Cruz , Maria"},
			{"Student, Test"},
		},
	})
	svc := NewService(wb)

	got, err := svc.NormalizeNames(context.Background(), NormalizeNamesInput{
		SourceSheet:      "full_list",
		TargetSheet:      "Names",
		ExpectedCount:    3,
		DropTrailingRows: 1,
	})
	if err != nil {
		t.Fatalf("NormalizeNames: %v", err)
	}

	want := []string{"Jane Doe", "Bob Smith", "Maria de la Cruz"}
	if !reflect.DeepEqual(got.Names, want) {
		t.Fatalf("names = %v, want %v", got.Names, want)
	}
	if got.Sheet != "Names" {
		t.Fatalf("sheet = %q, want Names", got.Sheet)
	}

	written, err := wb.ReadSheet(context.Background(), "Names")
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if !reflect.DeepEqual(written.Columns, []string{"Names"}) {
		t.Fatalf("target header = %v, want [Names]", written.Columns)
	}
	if !reflect.DeepEqual(written.Column(0), want) {
		t.Fatalf("target column = %v, want %v", written.Column(0), want)
	}
}

func TestNormalizeNames_DropLeadingRows(t *testing.T) {
	t.Parallel()

	wb := memworkbook.NewRepo()
	seedSheet(t, wb, workbookport.Sheet{
		Name:    "full_list",
		Columns: []string{"Student"},
		Rows: [][]string{
			{"Points Possible"},
			{"Doe, Jane"},
			{"Smith, Bob"},
			{"Student, Test"},
		},
	})
	svc := NewService(wb)

	got, err := svc.NormalizeNames(context.Background(), NormalizeNamesInput{
		SourceSheet:      "full_list",
		TargetSheet:      "Names",
		ExpectedCount:    2,
		DropLeadingRows:  1,
		DropTrailingRows: 1,
	})
	if err != nil {
		t.Fatalf("NormalizeNames: %v", err)
	}

	want := []string{"Jane Doe", "Bob Smith"}
	if !reflect.DeepEqual(got.Names, want) {
		t.Fatalf("names = %v, want %v", got.Names, want)
	}
}

func TestNormalizeNames_MalformedEntry(t *testing.T) {
	t.Parallel()

	wb := memworkbook.NewRepo()
	seedSheet(t, wb, workbookport.Sheet{
		Name:    "full_list",
		Columns: []string{"Student"},
		Rows:    [][]string{{"Doe, Jane"}, {"Prince"}},
	})
	svc := NewService(wb)

	_, err := svc.NormalizeNames(context.Background(), NormalizeNamesInput{
		SourceSheet:   "full_list",
		TargetSheet:   "Names",
		ExpectedCount: 2,
	})

	appErr := requireAppError(t, err, 422, "MALFORMED_NAME")
	if appErr.Details["raw"] != "Prince" {
		t.Fatalf("details.raw = %v, want Prince", appErr.Details["raw"])
	}
	if _, err := wb.ReadSheet(context.Background(), "Names"); !errors.Is(err, workbookport.ErrSheetNotFound) {
		t.Fatalf("target sheet written on failed run: err=%v", err)
	}
}

func TestNormalizeNames_CountMismatch(t *testing.T) {
	t.Parallel()

	wb := memworkbook.NewRepo()
	seedSheet(t, wb, workbookport.Sheet{
		Name:    "full_list",
		Columns: []string{"Student"},
		Rows:    [][]string{{"Doe, Jane"}, {"Smith, Bob"}},
	})
	svc := NewService(wb)

	_, err := svc.NormalizeNames(context.Background(), NormalizeNamesInput{
		SourceSheet:   "full_list",
		TargetSheet:   "Names",
		ExpectedCount: 5,
	})

	appErr := requireAppError(t, err, 422, "COUNT_MISMATCH")
	if appErr.Details["expected"] != 5 || appErr.Details["actual"] != 2 {
		t.Fatalf("details = %v, want expected=5 actual=2", appErr.Details)
	}
	if _, err := wb.ReadSheet(context.Background(), "Names"); !errors.Is(err, workbookport.ErrSheetNotFound) {
		t.Fatalf("target sheet written on failed run: err=%v", err)
	}
}

func TestNormalizeNames_DropAllRows(t *testing.T) {
	t.Parallel()

	wb := memworkbook.NewRepo()
	seedSheet(t, wb, workbookport.Sheet{
		Name:    "full_list",
		Columns: []string{"Student"},
		Rows:    [][]string{{"Student, Test"}},
	})
	svc := NewService(wb)

	_, err := svc.NormalizeNames(context.Background(), NormalizeNamesInput{
		SourceSheet:      "full_list",
		TargetSheet:      "Names",
		ExpectedCount:    1,
		DropTrailingRows: 3,
	})

	appErr := requireAppError(t, err, 422, "COUNT_MISMATCH")
	if appErr.Details["actual"] != 0 {
		t.Fatalf("details.actual = %v, want 0", appErr.Details["actual"])
	}
}

func TestNormalizeNames_MissingSourceSheet(t *testing.T) {
	t.Parallel()

	svc := NewService(memworkbook.NewRepo())

	_, err := svc.NormalizeNames(context.Background(), NormalizeNamesInput{
		SourceSheet:   "full_list",
		TargetSheet:   "Names",
		ExpectedCount: 1,
	})

	appErr := requireAppError(t, err, 404, "SHEET_NOT_FOUND")
	if appErr.Details["sheet"] != "full_list" {
		t.Fatalf("details.sheet = %v, want full_list", appErr.Details["sheet"])
	}
}

func TestListSheets(t *testing.T) {
	t.Parallel()

	wb := memworkbook.NewRepo()
	seedSheet(t, wb, workbookport.Sheet{Name: "full_list", Columns: []string{"Student"}})
	seedSheet(t, wb, workbookport.Sheet{Name: "Names", Columns: []string{"Names"}})
	svc := NewService(wb)

	got, err := svc.ListSheets(context.Background())
	if err != nil {
		t.Fatalf("ListSheets: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"full_list", "Names"}) {
		t.Fatalf("sheets = %v, want [full_list Names]", got)
	}
}

func requireAppError(t *testing.T, err error, status int, code string) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s error, got nil", code)
	}
	appErr := (*Error)(nil)
	if !errors.As(err, &appErr) {
		t.Fatalf("want *roster.Error, got %T: %v", err, err)
	}
	if appErr.Status != status || appErr.Code != code {
		t.Fatalf("error = %d %s, want %d %s", appErr.Status, appErr.Code, status, code)
	}
	return appErr
}

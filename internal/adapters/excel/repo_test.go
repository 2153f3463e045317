package excel

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	workbookport "github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

func TestRepo_MissingWorkbook(t *testing.T) {
	t.Parallel()

	repo := NewRepo(filepath.Join(t.TempDir(), "absent.xlsx"))

	if _, err := repo.SheetNames(context.Background()); !errors.Is(err, workbookport.ErrWorkbookNotFound) {
		t.Fatalf("SheetNames err=%v, want ErrWorkbookNotFound", err)
	}
	if _, err := repo.ReadSheet(context.Background(), "Names"); !errors.Is(err, workbookport.ErrWorkbookNotFound) {
		t.Fatalf("ReadSheet err=%v, want ErrWorkbookNotFound", err)
	}
	err := repo.WriteSheet(context.Background(), workbookport.Sheet{Name: "Names", Columns: []string{"Names"}})
	if !errors.Is(err, workbookport.ErrWorkbookNotFound) {
		t.Fatalf("WriteSheet err=%v, want ErrWorkbookNotFound", err)
	}
}

func TestRepo_ReplaceOnlySheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "students.xlsx")
	f := excelize.NewFile()
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("create workbook: %v", err)
	}
	_ = f.Close()

	repo := NewRepo(path)
	ctx := context.Background()

	// The default sheet is the only one in a fresh workbook; replacing it
	// must not trip over excelize's last-worksheet rule.
	first := workbookport.Sheet{
		Name:    "Sheet1",
		Columns: []string{"Names"},
		Rows:    [][]string{{"Jane Doe"}, {"Bob Smith"}},
	}
	if err := repo.WriteSheet(ctx, first); err != nil {
		t.Fatalf("WriteSheet: %v", err)
	}
	second := workbookport.Sheet{
		Name:    "Sheet1",
		Columns: []string{"Names"},
		Rows:    [][]string{{"Alice Lee"}},
	}
	if err := repo.WriteSheet(ctx, second); err != nil {
		t.Fatalf("WriteSheet replace: %v", err)
	}

	got, err := repo.ReadSheet(ctx, "Sheet1")
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}
	if col := got.Column(0); len(col) != 1 || col[0] != "Alice Lee" {
		t.Fatalf("column 0 = %v, want [Alice Lee]", col)
	}

	names, err := repo.SheetNames(ctx)
	if err != nil {
		t.Fatalf("SheetNames: %v", err)
	}
	for _, n := range names {
		if n == scratchSheet {
			t.Fatalf("scratch sheet leaked into workbook: %v", names)
		}
	}
}

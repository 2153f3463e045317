package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/vishnuv4/students-excel/internal/adapters/contracttest"
	workbookport "github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

func TestContract_ExcelWorkbookRepo(t *testing.T) {
	contracttest.RunWorkbookRepo(t, func(t *testing.T) (workbookport.Repository, func()) {
		t.Helper()
		path := filepath.Join(t.TempDir(), "students.xlsx")
		f := excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			t.Fatalf("create workbook: %v", err)
		}
		_ = f.Close()
		return NewRepo(path), nil
	})
}

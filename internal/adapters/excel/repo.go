// Package excel implements the workbook port on top of .xlsx files via
// excelize. Every call opens the file, acts and (for writes) saves it:
// the tool is a short-lived batch process, so holding the file open buys
// nothing and would complicate crash behavior.
package excel

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/xuri/excelize/v2"

	workbookport "github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

// scratchSheet parks the workbook while the only worksheet is being
// replaced; excelize refuses to delete the last one.
const scratchSheet = "__labpair_scratch__"

// Repo is an xlsx-backed implementation of workbook.Repository.
type Repo struct {
	path string
}

func NewRepo(path string) *Repo {
	return &Repo{path: path}
}

func (r *Repo) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, workbookport.ErrWorkbookNotFound
		}
		return nil, err
	}
	return f, nil
}

func (r *Repo) SheetNames(ctx context.Context) ([]string, error) {
	_ = ctx
	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func (r *Repo) ReadSheet(ctx context.Context, name string) (workbookport.Sheet, error) {
	_ = ctx
	f, err := r.open()
	if err != nil {
		return workbookport.Sheet{}, err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return workbookport.Sheet{}, err
	}
	if idx < 0 {
		return workbookport.Sheet{}, workbookport.ErrSheetNotFound
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return workbookport.Sheet{}, err
	}
	sheet := workbookport.Sheet{Name: name}
	if len(rows) > 0 {
		sheet.Columns = trimCells(rows[0])
		sheet.Rows = make([][]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			sheet.Rows = append(sheet.Rows, trimCells(row))
		}
	}
	return sheet, nil
}

func (r *Repo) WriteSheet(ctx context.Context, s workbookport.Sheet) error {
	_ = ctx
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("empty sheet name")
	}
	f, err := r.open()
	if err != nil {
		return err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(s.Name)
	if err != nil {
		return err
	}
	if idx >= 0 {
		// Replace wholesale: recreate the sheet so stale rows from a
		// longer previous version cannot survive.
		scratch := false
		if len(f.GetSheetList()) == 1 {
			if _, err := f.NewSheet(scratchSheet); err != nil {
				return err
			}
			scratch = true
		}
		if err := f.DeleteSheet(s.Name); err != nil {
			return err
		}
		if _, err := f.NewSheet(s.Name); err != nil {
			return err
		}
		if scratch {
			if err := f.DeleteSheet(scratchSheet); err != nil {
				return err
			}
		}
	} else {
		if _, err := f.NewSheet(s.Name); err != nil {
			return err
		}
	}

	all := make([][]string, 0, len(s.Rows)+1)
	if s.Columns != nil {
		all = append(all, s.Columns)
	}
	all = append(all, s.Rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		cells := append([]string(nil), row...)
		if err := f.SetSheetRow(s.Name, cell, &cells); err != nil {
			return err
		}
	}

	return f.Save()
}

func trimCells(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, strings.TrimSpace(c))
	}
	return out
}

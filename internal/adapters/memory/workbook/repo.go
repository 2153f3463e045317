package workbook

import (
	"context"
	"errors"
	"strings"
	"sync"

	workbookport "github.com/vishnuv4/students-excel/internal/ports/out/workbook"
)

// Repo is an in-memory implementation of workbook.Repository. It is safe
// for concurrent use.
type Repo struct {
	mu     sync.RWMutex
	sheets map[string]workbookport.Sheet
	order  []string
}

func NewRepo() *Repo {
	return &Repo{sheets: make(map[string]workbookport.Sheet)}
}

func (r *Repo) SheetNames(ctx context.Context) ([]string, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...), nil
}

func (r *Repo) ReadSheet(ctx context.Context, name string) (workbookport.Sheet, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sheets[name]
	if !ok {
		return workbookport.Sheet{}, workbookport.ErrSheetNotFound
	}
	return cloneSheet(s, true), nil
}

func (r *Repo) WriteSheet(ctx context.Context, s workbookport.Sheet) error {
	_ = ctx
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("empty sheet name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sheets[s.Name]; !ok {
		r.order = append(r.order, s.Name)
	}
	r.sheets[s.Name] = cloneSheet(s, false)
	return nil
}

// cloneSheet deep-copies a sheet; trim applies the port's read contract
// (cells trimmed of surrounding whitespace).
func cloneSheet(s workbookport.Sheet, trim bool) workbookport.Sheet {
	cp := workbookport.Sheet{Name: s.Name}
	cp.Columns = cloneCells(s.Columns, trim)
	if s.Rows != nil {
		cp.Rows = make([][]string, 0, len(s.Rows))
		for _, row := range s.Rows {
			cp.Rows = append(cp.Rows, cloneCells(row, trim))
		}
	}
	return cp
}

func cloneCells(cells []string, trim bool) []string {
	if cells == nil {
		return nil
	}
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if trim {
			c = strings.TrimSpace(c)
		}
		out = append(out, c)
	}
	return out
}

package workbook

import "errors"

var (
	ErrSheetNotFound    = errors.New("sheet not found")
	ErrWorkbookNotFound = errors.New("workbook not found")
)

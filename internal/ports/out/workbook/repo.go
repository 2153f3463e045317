// Package workbook defines the tabular storage port used by the roster
// and pairing services. A workbook is an ordered collection of named
// sheets; each sheet is a header row plus ordered rows of string cells.
// The port knows nothing about xlsx: adapters decide the file format.
package workbook

import "context"

// Sheet is one named table. Columns is the header row; Rows hold data
// cells only. Adapters trim surrounding whitespace from cells on read and
// may drop trailing empty cells, so consumers should access cells through
// Column rather than indexing Rows directly.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Column returns the values of column i across all rows. Rows shorter
// than i+1 contribute the empty string.
func (s Sheet) Column(i int) []string {
	out := make([]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		if i < len(r) {
			out = append(out, r[i])
		} else {
			out = append(out, "")
		}
	}
	return out
}

// Repository provides access to a single workbook.
//
// WriteSheet creates the named sheet or replaces an existing one
// wholesale; there is no partial update. SheetNames returns names in
// workbook order.
type Repository interface {
	SheetNames(ctx context.Context) ([]string, error)
	ReadSheet(ctx context.Context, name string) (Sheet, error)
	WriteSheet(ctx context.Context, sheet Sheet) error
}

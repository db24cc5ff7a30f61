// Package viewmodel derives the visible state of a tabular report: which
// rows match the active filters, in which order, on which page, and how many
// rows of each status are visible. A single TableViewModel owns that state
// and recomputes it synchronously on every input; presentation adapters only
// read snapshots.
package viewmodel

import "slices"

// Column describes one table column. Key is the field name in the row
// source, Title is what gets shown in headers.
type Column struct {
	Key   string
	Title string
}

// Row is one immutable record of the report.
type Row struct {
	ID     string
	Cells  []string // aligned with Table.Columns
	Type   string   // process type classifier ("importacao", "exportacao", ...)
	Status string
}

// Cell returns the value of column i, or "" when the row has no such cell.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// cloneRows copies rows together with their cells.
func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.Cells = slices.Clone(r.Cells)
		out[i] = r
	}
	return out
}

// Table is what row sources hand to the view model.
type Table struct {
	Title   string
	Columns []Column
	Rows    []Row
}

// ColumnIndex returns the index of the column with the given key or title,
// or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Key == name || c.Title == name {
			return i
		}
	}
	return -1
}

// ColumnState is the display state of a column.
type ColumnState int

const (
	ColumnDefault  ColumnState = iota // truncated to the default width
	ColumnExpanded                    // full width
	ColumnHidden                      // collapsed
)

func (s ColumnState) String() string {
	switch s {
	case ColumnExpanded:
		return "expanded"
	case ColumnHidden:
		return "hidden"
	default:
		return "default"
	}
}

// Package table contains pure helpers for table element structure: striping,
// cell and merge lookups, sanitizing after resize and track sizing.
package table

import (
	"slices"

	"plancanvas/common"
)

const (
	MaxRows    = 200
	MaxColumns = 50
)

type CellContent struct {
	Row       int              `yaml:"row"`
	Column    int              `yaml:"column"`
	Text      string           `yaml:"text"`
	TextAlign common.TextAlign `yaml:"text_align,omitempty"`
}

// Merge is a rectangular region rendered as a single cell anchored at its
// top-left cell.
type Merge struct {
	Row     int `yaml:"row"`
	Column  int `yaml:"column"`
	RowSpan int `yaml:"row_span"`
	ColSpan int `yaml:"col_span"`
}

// Contains reports whether cell lies inside merge region.
func (m Merge) Contains(row, col int) bool {
	return row >= m.Row && row < m.Row+m.RowSpan && col >= m.Column && col < m.Column+m.ColSpan
}

// IsAnchor reports whether cell is merge top-left cell.
func (m Merge) IsAnchor(row, col int) bool {
	return m.Row == row && m.Column == col
}

func (m Merge) overlaps(o Merge) bool {
	return m.Row < o.Row+o.RowSpan && o.Row < m.Row+m.RowSpan &&
		m.Column < o.Column+o.ColSpan && o.Column < m.Column+m.ColSpan
}

// Layout is the structural part of a table element.
type Layout struct {
	Rows         int           `yaml:"rows"`
	Columns      int           `yaml:"columns"`
	HeaderRows   int           `yaml:"header_rows"`
	FooterRows   int           `yaml:"footer_rows"`
	CellContents []CellContent `yaml:"cell_contents"`
	Merges       []Merge       `yaml:"merges"`
	ColumnWidths []float64     `yaml:"column_widths,omitempty"`
	RowHeights   []float64     `yaml:"row_heights,omitempty"`
}

// Clone returns deep copy of layout.
func (l Layout) Clone() Layout {
	l.CellContents = slices.Clone(l.CellContents)
	l.Merges = slices.Clone(l.Merges)
	l.ColumnWidths = slices.Clone(l.ColumnWidths)
	l.RowHeights = slices.Clone(l.RowHeights)
	return l
}

// IsHeaderRow reports whether row belongs to header band.
func (l Layout) IsHeaderRow(row int) bool {
	return row >= 0 && row < l.HeaderRows
}

// IsFooterRow reports whether row belongs to footer band.
func (l Layout) IsFooterRow(row int) bool {
	return row < l.Rows && row >= l.Rows-l.FooterRows
}

// IsBodyRow reports whether row is neither header nor footer.
func (l Layout) IsBodyRow(row int) bool {
	return row >= 0 && row < l.Rows && !l.IsHeaderRow(row) && !l.IsFooterRow(row)
}

// StripeFill returns stripe color for body rows with odd table row index.
// Header and footer rows are never striped. Empty stripe color disables
// striping.
func StripeFill(l Layout, row int, stripeColor string) string {
	if len(stripeColor) == 0 || !l.IsBodyRow(row) {
		return ""
	}
	if row%2 == 1 {
		return stripeColor
	}
	return ""
}

// ContentAt returns content of a cell.
func ContentAt(contents []CellContent, row, col int) (CellContent, bool) {
	// later entries win, same as sanitize keeps them
	for i := len(contents) - 1; i >= 0; i-- {
		if contents[i].Row == row && contents[i].Column == col {
			return contents[i], true
		}
	}
	return CellContent{}, false
}

// MergeAt returns merge anchored at cell.
func MergeAt(merges []Merge, row, col int) (Merge, bool) {
	for _, m := range merges {
		if m.IsAnchor(row, col) {
			return m, true
		}
	}
	return Merge{}, false
}

// MergeContaining returns merge whose region includes cell.
func MergeContaining(merges []Merge, row, col int) (Merge, bool) {
	for _, m := range merges {
		if m.Contains(row, col) {
			return m, true
		}
	}
	return Merge{}, false
}

// IsCoveredByMerge reports whether cell is hidden by a merge: inside merge
// region but not its anchor. Covered cells draw neither border nor
// background.
func IsCoveredByMerge(merges []Merge, row, col int) bool {
	for _, m := range merges {
		if m.Contains(row, col) && !m.IsAnchor(row, col) {
			return true
		}
	}
	return false
}

// Sanitize brings layout into consistent state: dimensions clamped, bands
// fit into rows, merges and contents referencing cells outside the table
// removed (merge spans clamped), overlapping merges dropped and size arrays
// trimmed.
func Sanitize(l Layout) Layout {
	l = l.Clone()
	l.Rows = clamp(l.Rows, 1, MaxRows)
	l.Columns = clamp(l.Columns, 1, MaxColumns)
	l.HeaderRows = clamp(l.HeaderRows, 0, l.Rows)
	l.FooterRows = clamp(l.FooterRows, 0, l.Rows-l.HeaderRows)

	merges := l.Merges[:0]
	for _, m := range l.Merges {
		if m.Row < 0 || m.Column < 0 || m.Row >= l.Rows || m.Column >= l.Columns {
			continue
		}
		m.RowSpan = clamp(m.RowSpan, 1, l.Rows-m.Row)
		m.ColSpan = clamp(m.ColSpan, 1, l.Columns-m.Column)
		if m.RowSpan == 1 && m.ColSpan == 1 {
			continue
		}
		if slices.ContainsFunc(merges, m.overlaps) {
			continue
		}
		merges = append(merges, m)
	}
	l.Merges = merges

	contents := make([]CellContent, 0, len(l.CellContents))
	for _, c := range l.CellContents {
		if c.Row < 0 || c.Column < 0 || c.Row >= l.Rows || c.Column >= l.Columns {
			continue
		}
		contents = slices.DeleteFunc(contents, func(o CellContent) bool {
			return o.Row == c.Row && o.Column == c.Column
		})
		contents = append(contents, c)
	}
	l.CellContents = contents

	l.ColumnWidths = fitSizeArray(l.ColumnWidths, l.Columns)
	l.RowHeights = fitSizeArray(l.RowHeights, l.Rows)
	return l
}

// Resize changes table dimensions and sanitizes the result.
func Resize(l Layout, rows, columns int) Layout {
	l.Rows, l.Columns = rows, columns
	return Sanitize(l)
}

// AddMerge merges region replacing merges it overlaps. Content of cells
// covered by the new merge is dropped, anchor content is kept.
func AddMerge(l Layout, m Merge) Layout {
	l = l.Clone()
	l.Merges = slices.DeleteFunc(l.Merges, m.overlaps)
	l.Merges = append(l.Merges, m)
	l.CellContents = slices.DeleteFunc(l.CellContents, func(c CellContent) bool {
		return m.Contains(c.Row, c.Column) && !m.IsAnchor(c.Row, c.Column)
	})
	return Sanitize(l)
}

// RemoveMerge splits merge containing cell back into separate cells.
func RemoveMerge(l Layout, row, col int) Layout {
	l = l.Clone()
	l.Merges = slices.DeleteFunc(l.Merges, func(m Merge) bool { return m.Contains(row, col) })
	return l
}

func fitSizeArray(sizes []float64, count int) []float64 {
	if len(sizes) > count {
		sizes = sizes[:count]
	}
	for i, v := range sizes {
		if v < 0 {
			sizes[i] = 0
		}
	}
	return TrimSizeArray(sizes)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}

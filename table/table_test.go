package table

import (
	"math"
	"slices"
	"testing"
)

func TestStripeFill(t *testing.T) {
	l := Layout{Rows: 7, Columns: 2, HeaderRows: 1, FooterRows: 1}
	noHeader := Layout{Rows: 4, Columns: 2}
	tests := []struct {
		layout Layout
		row    int
		color  string
		want   string
	}{
		{l, 0, "#eee", ""}, // header
		{l, 1, "#eee", "#eee"},
		{l, 2, "#eee", ""},
		{l, 3, "#eee", "#eee"},
		{l, 4, "#eee", ""},
		{l, 5, "#eee", "#eee"},
		{l, 6, "#eee", ""}, // footer
		{l, 1, "", ""},
		{l, 9, "#eee", ""},
		{noHeader, 0, "#eee", ""},
		{noHeader, 1, "#eee", "#eee"},
	}
	for _, tt := range tests {
		if got := StripeFill(tt.layout, tt.row, tt.color); got != tt.want {
			t.Errorf("StripeFill(row %d, %q) = %q, want %q", tt.row, tt.color, got, tt.want)
		}
	}
}

func TestContentAt(t *testing.T) {
	contents := []CellContent{
		{Row: 0, Column: 0, Text: "a"},
		{Row: 1, Column: 2, Text: "b"},
		{Row: 1, Column: 2, Text: "c"},
	}
	if c, ok := ContentAt(contents, 1, 2); !ok || c.Text != "c" {
		t.Errorf("ContentAt(1,2) = %+v, %v", c, ok)
	}
	if _, ok := ContentAt(contents, 2, 2); ok {
		t.Error("ContentAt(2,2) found content")
	}
}

func TestMerges(t *testing.T) {
	merges := []Merge{{Row: 1, Column: 1, RowSpan: 2, ColSpan: 3}}

	if _, ok := MergeAt(merges, 1, 1); !ok {
		t.Error("MergeAt(anchor) not found")
	}
	if _, ok := MergeAt(merges, 1, 2); ok {
		t.Error("MergeAt(non-anchor) found")
	}
	if m, ok := MergeContaining(merges, 2, 3); !ok || m.ColSpan != 3 {
		t.Errorf("MergeContaining(2,3) = %+v, %v", m, ok)
	}

	tests := []struct {
		row, col int
		want     bool
	}{
		{1, 1, false},
		{1, 2, true},
		{2, 3, true},
		{2, 4, false},
		{3, 1, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := IsCoveredByMerge(merges, tt.row, tt.col); got != tt.want {
			t.Errorf("IsCoveredByMerge(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	t.Run("shrink drops merge", func(t *testing.T) {
		l := Layout{Rows: 4, Columns: 4, Merges: []Merge{{Row: 2, Column: 2, RowSpan: 2, ColSpan: 2}}}
		got := Resize(l, 2, 4)
		if len(got.Merges) != 0 {
			t.Errorf("Merges = %v, want none", got.Merges)
		}
		if len(l.Merges) != 1 {
			t.Error("input layout was mutated")
		}
	})

	t.Run("span clamped", func(t *testing.T) {
		l := Layout{Rows: 3, Columns: 3, Merges: []Merge{{Row: 1, Column: 0, RowSpan: 5, ColSpan: 2}}}
		got := Sanitize(l)
		want := []Merge{{Row: 1, Column: 0, RowSpan: 2, ColSpan: 2}}
		if !slices.Equal(got.Merges, want) {
			t.Errorf("Merges = %v, want %v", got.Merges, want)
		}
	})

	t.Run("degenerate and overlapping merges", func(t *testing.T) {
		l := Layout{Rows: 4, Columns: 4, Merges: []Merge{
			{Row: 0, Column: 0, RowSpan: 1, ColSpan: 1},
			{Row: 0, Column: 0, RowSpan: 2, ColSpan: 2},
			{Row: 1, Column: 1, RowSpan: 2, ColSpan: 2},
			{Row: -1, Column: 0, RowSpan: 2, ColSpan: 2},
		}}
		got := Sanitize(l)
		want := []Merge{{Row: 0, Column: 0, RowSpan: 2, ColSpan: 2}}
		if !slices.Equal(got.Merges, want) {
			t.Errorf("Merges = %v, want %v", got.Merges, want)
		}
	})

	t.Run("contents", func(t *testing.T) {
		l := Layout{Rows: 2, Columns: 2, CellContents: []CellContent{
			{Row: 0, Column: 0, Text: "a"},
			{Row: 5, Column: 0, Text: "gone"},
			{Row: 0, Column: 0, Text: "b"},
		}}
		got := Sanitize(l)
		if len(got.CellContents) != 1 || got.CellContents[0].Text != "b" {
			t.Errorf("CellContents = %v", got.CellContents)
		}
	})

	t.Run("bands and sizes", func(t *testing.T) {
		l := Layout{Rows: 3, Columns: 2, HeaderRows: 2, FooterRows: 3, ColumnWidths: []float64{40, 0, 80}, RowHeights: []float64{-5}}
		got := Sanitize(l)
		if got.HeaderRows != 2 || got.FooterRows != 1 {
			t.Errorf("bands = %d/%d, want 2/1", got.HeaderRows, got.FooterRows)
		}
		if !slices.Equal(got.ColumnWidths, []float64{40}) {
			t.Errorf("ColumnWidths = %v", got.ColumnWidths)
		}
		if got.RowHeights != nil {
			t.Errorf("RowHeights = %v, want nil", got.RowHeights)
		}
	})

	t.Run("minimum dimensions", func(t *testing.T) {
		got := Sanitize(Layout{})
		if got.Rows != 1 || got.Columns != 1 {
			t.Errorf("dimensions = %dx%d", got.Rows, got.Columns)
		}
	})
}

func TestAddRemoveMerge(t *testing.T) {
	l := Layout{Rows: 3, Columns: 3, CellContents: []CellContent{
		{Row: 0, Column: 0, Text: "anchor"},
		{Row: 0, Column: 1, Text: "covered"},
		{Row: 2, Column: 2, Text: "outside"},
	}}
	l = AddMerge(l, Merge{Row: 0, Column: 0, RowSpan: 2, ColSpan: 2})
	if len(l.Merges) != 1 || len(l.CellContents) != 2 {
		t.Fatalf("after AddMerge: %+v", l)
	}
	l = AddMerge(l, Merge{Row: 1, Column: 1, RowSpan: 2, ColSpan: 2})
	if len(l.Merges) != 1 || l.Merges[0].Row != 1 {
		t.Fatalf("overlapping merge not replaced: %v", l.Merges)
	}
	l = RemoveMerge(l, 2, 2)
	if len(l.Merges) != 0 {
		t.Errorf("RemoveMerge left %v", l.Merges)
	}
}

func TestSizeArrayRoundTrip(t *testing.T) {
	const v = 80.0
	updated := UpdateSizeArray(nil, 1, v, 4)
	if !slices.Equal(updated, []float64{0, v, 0, 0}) {
		t.Fatalf("UpdateSizeArray() = %v", updated)
	}
	if got := TrimSizeArray(updated); !slices.Equal(got, []float64{0, v}) {
		t.Errorf("TrimSizeArray() = %v, want [0 %v]", got, v)
	}

	cleared := UpdateSizeArray([]float64{0, v}, 1, 0, 4)
	if got := TrimSizeArray(cleared); got != nil {
		t.Errorf("TrimSizeArray(cleared) = %v, want nil", got)
	}
	if got := UpdateSizeArray([]float64{10}, 7, v, 2); !slices.Equal(got, []float64{10, 0}) {
		t.Errorf("out of range index changed array: %v", got)
	}
}

func TestResolveTracks(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		count int
		total float64
		want  []float64
	}{
		{"auto", nil, 4, 100, []float64{25, 25, 25, 25}},
		{"mixed", []float64{0, 40}, 3, 100, []float64{30, 40, 30}},
		{"over budget", []float64{100, 100}, 3, 100, []float64{50, 50, 0}},
		{"all explicit stretch", []float64{10, 30}, 2, 80, []float64{20, 60}},
		{"ignores extra", []float64{10, 10, 10}, 1, 50, []float64{50}},
		{"none", nil, 0, 100, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTracks(tt.sizes, tt.count, tt.total)
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveTracks() = %v, want %v", got, tt.want)
			}
			var sum float64
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("track %d = %v, want %v", i, got[i], tt.want[i])
				}
				sum += got[i]
			}
			if tt.count > 0 && math.Abs(sum-tt.total) > 1e-9 {
				t.Errorf("sum = %v, want %v", sum, tt.total)
			}
		})
	}

	if got := Offsets([]float64{10, 20}); !slices.Equal(got, []float64{0, 10, 30}) {
		t.Errorf("Offsets() = %v", got)
	}
}

package debug

import (
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "group %s", []any{"a"}, "group a\n"},
		{"nested", 2, "rect %dx%d", []any{10, 20}, "    rect 10x20\n"},
		{"no args", 1, "plain", nil, "  plain\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty", 0, "text", "", "text: \n"},
		{"quoted", 1, "text", "March 2025", "  text: \"March 2025\"\n"},
		{"escaped", 0, "text", "a\nb", "text: \"a\\nb\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Attrs(t *testing.T) {
	tw := NewTreeWriter()
	tw.Attrs(1, "rect", map[string]string{
		"slot10": "b",
		"slot2":  "a",
		"fill":   "#fff",
		"name":   "Calendar Grid",
		"empty":  "",
	})
	want := "  rect fill=#fff name=\"Calendar Grid\" slot2=a slot10=b\n"
	if got := tw.String(); got != want {
		t.Errorf("Attrs() = %q, want %q", got, want)
	}
}

func TestTreeWriter_ComplexTree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "canvas")
	tw.Attrs(1, "group", map[string]string{"id": "1"})
	tw.TextBlock(2, "text", "17")
	want := "canvas\n  group id=1\n    text: \"17\"\n"
	if got := tw.String(); got != want {
		t.Errorf("tree = %q, want %q", got, want)
	}
}

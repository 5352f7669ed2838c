// Package debug formats indented tree dumps used in diagnostics.
package debug

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Attrs writes key=value pairs on a single line in natural key order, so
// "slot2" goes before "slot10". Empty values are skipped.
func (tw TreeWriter) Attrs(depth int, label string, attrs map[string]string) {
	keys := slices.SortedFunc(maps.Keys(attrs), func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	tw.indent(depth)
	tw.w.WriteString(label)
	for _, k := range keys {
		v := attrs[k]
		if len(v) == 0 {
			continue
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(k)
		tw.w.WriteByte('=')
		if strings.ContainsAny(v, " \t\"=") {
			v = strconv.Quote(v)
		}
		tw.w.WriteString(v)
	}
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}

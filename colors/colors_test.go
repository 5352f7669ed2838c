package colors

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
		ok   bool
	}{
		{"#fff", RGBA{255, 255, 255, 1}, true},
		{"#1e293b", RGBA{0x1e, 0x29, 0x3b, 1}, true},
		{"#ff000080", RGBA{255, 0, 0, 128.0 / 255}, true},
		{"rgb(10, 20, 30)", RGBA{10, 20, 30, 1}, true},
		{"rgba(10,20,30,0.5)", RGBA{10, 20, 30, 0.5}, true},
		{"rgb(100% 0% 0% / 25%)", RGBA{255, 0, 0, 0.25}, true},
		{"  red ", RGBA{255, 0, 0, 1}, true},
		{"transparent", Transparent, true},
		{"notacolor", RGBA{}, false},
		{"#12", RGBA{}, false},
		{"hsl(1,2%,3%)", RGBA{}, false},
		{"", RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTint(t *testing.T) {
	if got := Tint("#000000", 0.5); got != "#808080" {
		t.Errorf("Tint() = %q, want #808080", got)
	}
	if got := Tint("#3b82f6", 0); got != "#3b82f6" {
		t.Errorf("Tint() with zero amount = %q", got)
	}
	if got := Tint("#3b82f6", 1); got != "#ffffff" {
		t.Errorf("Tint() with full amount = %q", got)
	}
	if got := Tint("bogus", 0.5); got != "bogus" {
		t.Errorf("Tint() of unparsable color = %q", got)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := WithAlpha("#ff0000", 0.18); got != "rgba(255,0,0,0.18)" {
		t.Errorf("WithAlpha() = %q", got)
	}
	if got := WithAlpha("#ff0000", 1); got != "#ff0000" {
		t.Errorf("WithAlpha() opaque = %q", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "#000000"); got != "#000000" {
		t.Errorf("Or() = %q", got)
	}
	if got := Or("blue", "#000000"); got != "blue" {
		t.Errorf("Or() = %q", got)
	}
}

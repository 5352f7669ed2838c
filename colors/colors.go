// Package colors parses CSS color values found in element metadata and
// derives tints from them.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

// RGBA is a color with straight (not premultiplied) alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

var (
	White       = RGBA{255, 255, 255, 1}
	Black       = RGBA{0, 0, 0, 1}
	Transparent = RGBA{}
)

// Parse understands #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba() and CSS
// named colors.
func Parse(s string) (RGBA, bool) {
	l := css.NewLexer(parse.NewInputString(strings.TrimSpace(s)))
	for {
		tt, data := l.Next()
		switch tt {
		case css.WhitespaceToken:
			continue
		case css.HashToken:
			return parseHex(string(data[1:]))
		case css.IdentToken:
			name := strings.ToLower(string(data))
			if name == "transparent" {
				return Transparent, true
			}
			if c, ok := colornames.Map[name]; ok {
				return RGBA{c.R, c.G, c.B, 1}, true
			}
			return RGBA{}, false
		case css.FunctionToken:
			fn := strings.ToLower(strings.TrimSuffix(string(data), "("))
			if fn != "rgb" && fn != "rgba" {
				return RGBA{}, false
			}
			return parseFunc(l)
		default:
			return RGBA{}, false
		}
	}
}

func parseHex(h string) (RGBA, bool) {
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return RGBA{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	if len(h) == 6 {
		return RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 1}, true
	}
	return RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), float64(uint8(v)) / 255}, true
}

// parseFunc reads rgb()/rgba() arguments, both comma and space separated
// syntax.
func parseFunc(l *css.Lexer) (RGBA, bool) {
	var args []float64
	for {
		tt, data := l.Next()
		switch tt {
		case css.WhitespaceToken, css.CommaToken, css.DelimToken:
			continue
		case css.NumberToken:
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return RGBA{}, false
			}
			args = append(args, v)
		case css.PercentageToken:
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
			if err != nil {
				return RGBA{}, false
			}
			if len(args) == 3 {
				args = append(args, v/100)
			} else {
				args = append(args, v*255/100)
			}
		case css.RightParenthesisToken:
			if len(args) < 3 || len(args) > 4 {
				return RGBA{}, false
			}
			c := RGBA{channel(args[0]), channel(args[1]), channel(args[2]), 1}
			if len(args) == 4 {
				c.A = math.Max(0, math.Min(1, args[3]))
			}
			return c, true
		default:
			return RGBA{}, false
		}
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// String formats color as #rrggbb when opaque and rgba() otherwise.
func (c RGBA) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Mix blends a toward b by t in [0, 1].
func Mix(a, b RGBA, t float64) RGBA {
	t = math.Max(0, math.Min(1, t))
	lerp := func(x, y uint8) uint8 {
		return channel(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: a.A + (b.A-a.A)*t,
	}
}

// Tint lightens color toward white by amount. Unparsable colors are
// returned unchanged.
func Tint(color string, amount float64) string {
	c, ok := Parse(color)
	if !ok {
		return color
	}
	return Mix(c, RGBA{255, 255, 255, c.A}, amount).String()
}

// WithAlpha replaces alpha channel of color. Unparsable colors are returned
// unchanged.
func WithAlpha(color string, alpha float64) string {
	c, ok := Parse(color)
	if !ok {
		return color
	}
	c.A = math.Max(0, math.Min(1, alpha))
	return c.String()
}

// Or returns color when it parses and fallback otherwise.
func Or(color, fallback string) string {
	if _, ok := Parse(color); ok {
		return color
	}
	return fallback
}

package build

import "math"

// Zones is vertical partition of element content height.
type Zones struct {
	Header  float64
	Weekday float64
	Body    float64
	List    float64
}

// Sum returns total of all zones.
func (z Zones) Sum() float64 {
	return z.Header + z.Weekday + z.Body + z.List
}

// padded returns zones of the whole element: edge padding above and below
// content belongs to body.
func (z Zones) padded(pad float64) Zones {
	z.Body += 2 * pad
	return z
}

// Partition splits total height: header, weekday row and list claim their
// size in that order, each clamped to what is still left, and body absorbs
// the remainder. Zones always sum to total (negative total is zero).
func Partition(total, header, weekday, list float64) Zones {
	remaining := math.Max(total, 0)
	claim := func(v float64) float64 {
		v = math.Max(0, math.Min(v, remaining))
		remaining -= v
		return v
	}
	var z Zones
	z.Header = claim(header)
	z.Weekday = claim(weekday)
	z.List = claim(list)
	z.Body = remaining
	return z
}

// FitFontSize shrinks configured font size to fit zone: min(configured,
// floor(zone*ratio)) but at least 1 while zone is not empty.
func FitFontSize(configured, zone, ratio float64) float64 {
	if zone <= 0 || configured <= 0 {
		return 0
	}
	return math.Max(1, math.Min(configured, math.Floor(zone*ratio)))
}

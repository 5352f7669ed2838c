package build

import (
	"context"
	"image"
	"image/color"
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap/zaptest"

	"plancanvas/common"
	"plancanvas/element"
	"plancanvas/holiday"
	"plancanvas/imagecache"
	"plancanvas/scene"
	"plancanvas/table"
)

var today = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func public(date, name string) holiday.Holiday {
	return holiday.Holiday{Date: date, Name: name}
}

func lookupOf(data map[int][]holiday.Holiday) holiday.Lookup {
	return func(year int, _, _ string) []holiday.Holiday {
		return data[year]
	}
}

var testHolidays = lookupOf(map[int][]holiday.Holiday{
	2024: {
		public("2024-12-25", "Christmas Day"),
		public("2024-12-31", "New Year's Eve"),
	},
	2025: {
		public("2025-01-01", "New Year's Day"),
		public("2025-03-08", "Women's Day"),
		public("2025-03-17", "St. Patrick's Day"),
		public("2025-03-17", "Evacuation Day"),
		{Date: "2025-03-20", Name: "Observance", IsPublic: new(bool)},
		public("2025-03-31", "Spring Day"),
	},
})

func collect(o *scene.Object, pred func(*scene.Object) bool) []*scene.Object {
	var out []*scene.Object
	o.Walk(func(c *scene.Object) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

func ofType(t scene.Type) func(*scene.Object) bool {
	return func(o *scene.Object) bool { return o.Type == t }
}

func allKinds(t *testing.T) []element.Metadata {
	t.Helper()
	var out []element.Metadata
	for _, k := range common.ElementKindNames() {
		m, err := element.New(common.MustParseElementKind(k), today)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, m)
	}
	return out
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name                    string
		total, header, wd, list float64
		want                    Zones
	}{
		{"fits", 500, 40, 20, 100, Zones{Header: 40, Weekday: 20, Body: 340, List: 100}},
		{"header eats all", 30, 40, 20, 100, Zones{Header: 30}},
		{"list clamped", 100, 40, 20, 100, Zones{Header: 40, Weekday: 20, List: 40}},
		{"negative claims", 100, -5, -5, -5, Zones{Body: 100}},
		{"negative total", -10, 40, 20, 100, Zones{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.total, tt.header, tt.wd, tt.list)
			if got != tt.want {
				t.Errorf("Partition() = %+v, want %+v", got, tt.want)
			}
			if got.Body < 0 {
				t.Errorf("negative body %v", got.Body)
			}
			if got.Sum() != math.Max(tt.total, 0) {
				t.Errorf("Sum() = %v, want %v", got.Sum(), tt.total)
			}
		})
	}
}

func TestCalendarZonesSumToHeight(t *testing.T) {
	lk := Lookups{Holidays: testHolidays}
	for _, pad := range []float64{0, 16, 40} {
		for _, h := range []float64{520, 300, 120, 68, 50, 10, 1} {
			grid := element.Apply(element.DefaultCalendarGrid(today), func(m *element.CalendarGrid) {
				m.Padding = pad
				m.Size.Height = h
			})
			z := CalendarGridZones(grid, lk)
			if math.Abs(z.Sum()-h) > 1e-9 || z.Body < 0 {
				t.Errorf("grid height %v padding %v: zones %+v sum to %v", h, pad, z, z.Sum())
			}

			week := element.Apply(element.DefaultWeekStrip(today), func(m *element.WeekStrip) {
				m.Padding = pad
				m.Size.Height = h
			})
			z = WeekStripZones(week, lk)
			if math.Abs(z.Sum()-h) > 1e-9 || z.Body < 0 {
				t.Errorf("week height %v padding %v: zones %+v sum to %v", h, pad, z, z.Sum())
			}
		}
	}

	grid := element.DefaultCalendarGrid(today)
	z := CalendarGridZones(grid, lk)
	if math.Abs(z.Sum()-grid.Size.Height) > 1e-9 {
		t.Errorf("default grid zones %+v sum to %v, want %v", z, z.Sum(), grid.Size.Height)
	}
	week := element.DefaultWeekStrip(today)
	if z := WeekStripZones(week, lk); math.Abs(z.Sum()-week.Size.Height) > 1e-9 {
		t.Errorf("default week zones %+v sum to %v, want %v", z, z.Sum(), week.Size.Height)
	}
}

func TestCalendarGridZones_List(t *testing.T) {
	grid := element.Apply(element.DefaultCalendarGrid(today), func(m *element.CalendarGrid) {
		m.Padding = 0
	})
	z := CalendarGridZones(grid, Lookups{Holidays: testHolidays})
	// three public dates in March: title 20 + 3 rows of 16 + padding 16
	want := Zones{Header: 44, Weekday: 24, Body: 368, List: 84}
	if z != want {
		t.Errorf("zones = %+v, want %+v", z, want)
	}

	capped := element.Apply(grid, func(m *element.CalendarGrid) { m.Holidays.ListHeight = 60 })
	z = CalendarGridZones(capped, Lookups{Holidays: testHolidays})
	if z.List != 60 {
		t.Errorf("configured maximum ignored, list = %v", z.List)
	}
	if n := VisibleEntries(capped.Holidays, z.List, 3); n != 1 {
		t.Errorf("visible entries = %d, want 1", n)
	}

	none := CalendarGridZones(grid, Lookups{})
	if none.List != 0 || none.Body != 452 {
		t.Errorf("zones without holidays = %+v", none)
	}
}

func TestHolidayListHeight(t *testing.T) {
	opts := element.DefaultCalendarGrid(today).Holidays
	tests := []struct {
		name      string
		entries   int
		available float64
		max       float64
		want      float64
	}{
		{"desired", 2, 1000, 0, 20 + 32 + 16},
		{"available share", 10, 200, 0, 90},
		{"configured max", 10, 1000, 60, 60},
		{"nothing fits", 5, 20, 0, 0},
		{"no entries", 0, 1000, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := opts
			o.ListHeight = tt.max
			if got := HolidayListHeight(o, tt.entries, tt.available); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HolidayListHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitFontSize(t *testing.T) {
	tests := []struct {
		configured, zone, ratio, want float64
	}{
		{20, 100, 0.6, 20},
		{20, 20, 0.6, 12},
		{20, 1, 0.6, 1},
		{20, 0, 0.6, 0},
	}
	for _, tt := range tests {
		if got := FitFontSize(tt.configured, tt.zone, tt.ratio); got != tt.want {
			t.Errorf("FitFontSize(%v, %v, %v) = %v, want %v", tt.configured, tt.zone, tt.ratio, got, tt.want)
		}
	}
}

func TestMeasureText(t *testing.T) {
	short := MeasureText("Mar", 12, false)
	long := MeasureText("March 2025", 12, false)
	if short <= 0 || long <= short {
		t.Errorf("MeasureText widths: %v, %v", short, long)
	}
	if bold := MeasureText("March 2025", 12, true); bold < long {
		t.Errorf("bold narrower than regular: %v < %v", bold, long)
	}
	if got := FitTextSize("March 2025", 40, long/2, false); got >= 40 || got < 1 {
		t.Errorf("FitTextSize() = %v", got)
	}
}

func TestHolidayMarker(t *testing.T) {
	cell := scene.Rect{Left: 0, Top: 0, Width: 40, Height: 40}
	const red = "#ff0000"

	mk := holidayMarker(common.MarkerStyleTriangle, cell, red, 4, 0)
	if len(mk.shapes) != 1 {
		t.Fatalf("triangle shapes = %d", len(mk.shapes))
	}
	pts := mk.shapes[0].ParentPoints()
	want := []scene.Point{{X: 32, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 8}}
	for i := range want {
		if math.Abs(pts[i].X-want[i].X) > 1e-9 || math.Abs(pts[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("triangle point %d = %v, want %v", i, pts[i], want[i])
		}
	}

	tests := []struct {
		style common.MarkerStyle
		want  scene.Rect
	}{
		{common.MarkerStyleBar, scene.Rect{Left: 0, Top: 36, Width: 40, Height: 4}},
		{common.MarkerStyleDot, scene.Rect{Left: 30, Top: 4, Width: 6, Height: 6}},
		{common.MarkerStyleSquare, scene.Rect{Left: 30, Top: 4, Width: 6, Height: 6}},
		{common.MarkerStyleBorder, scene.Rect{Left: 2, Top: 2, Width: 36, Height: 36}},
		{common.MarkerStyleBackground, scene.Rect{Left: 0, Top: 0, Width: 40, Height: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			mk := holidayMarker(tt.style, cell, red, 4, 0)
			if len(mk.shapes) != 1 {
				t.Fatalf("shapes = %d", len(mk.shapes))
			}
			if got := mk.shapes[0].Bounds(); got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}

	if mk := holidayMarker(common.MarkerStyleDot, cell, red, 4, 0); mk.shapes[0].Rx != 3 {
		t.Errorf("dot is not round, rx = %v", mk.shapes[0].Rx)
	}
	if mk := holidayMarker(common.MarkerStyleBackground, cell, red, 4, 0); mk.shapes[0].Opacity != backgroundOpacity {
		t.Errorf("background opacity = %v", mk.shapes[0].Opacity)
	}
	if mk := holidayMarker(common.MarkerStyleText, cell, red, 4, 0); len(mk.shapes) != 0 || mk.dayColor != red {
		t.Errorf("text marker = %+v", mk)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	lk := Lookups{Holidays: testHolidays, Today: today}
	for _, style := range common.MarkerStyleNames() {
		t.Run(style, func(t *testing.T) {
			grid := element.Apply(element.DefaultCalendarGrid(today), func(m *element.CalendarGrid) {
				m.Holidays.MarkerStyle = common.MustParseMarkerStyle(style)
			})
			a, b := CalendarGrid(grid, lk), CalendarGrid(grid, lk)
			if !reflect.DeepEqual(a, b) {
				t.Error("calendar grid rebuild differs")
			}
			cell := element.Apply(element.DefaultDateCell(today), func(m *element.DateCell) {
				m.Date = "2025-03-17"
				m.Holidays.MarkerStyle = common.MustParseMarkerStyle(style)
			})
			if !reflect.DeepEqual(DateCell(cell, lk), DateCell(cell, lk)) {
				t.Error("date cell rebuild differs")
			}
		})
	}
}

func TestBuild_GroupContract(t *testing.T) {
	lk := Lookups{Holidays: testHolidays, Today: today}
	for _, m := range allKinds(t) {
		t.Run(m.Kind().String(), func(t *testing.T) {
			g := Build(m, lk)
			size := m.Dimensions()
			if g.Type != scene.TypeGroup || g.Width != size.Width || g.Height != size.Height {
				t.Fatalf("group %v %vx%v, want %vx%v", g.Type, g.Width, g.Height, size.Width, size.Height)
			}
			if g.SubTargetCheck || g.Interactive {
				t.Error("group must not be interactive")
			}
			if g.Element == nil || g.Element.Kind() != m.Kind() {
				t.Error("element metadata not attached")
			}
			if len(g.Children) == 0 {
				t.Fatal("no children")
			}
			if g.Children[0].Type != scene.TypeRect {
				t.Error("background is not first")
			}
			box := scene.Rect{Left: -size.Width / 2, Top: -size.Height / 2, Width: size.Width, Height: size.Height}
			for i, c := range g.Children {
				if !box.Contains(c.Bounds(), 1e-6) {
					t.Errorf("child %d (%v) %+v outside %+v", i, c.Type, c.Bounds(), box)
				}
				c.Walk(func(o *scene.Object) bool {
					if o.Selectable || o.Evented {
						t.Errorf("child %v is selectable", o.Type)
						return false
					}
					return true
				})
			}
		})
	}
}

func TestBuild_Degenerate(t *testing.T) {
	for _, m := range allKinds(t) {
		t.Run(m.Kind().String(), func(t *testing.T) {
			zero, err := element.Patch(m, []byte("size: {width: 0, height: -5}\n"))
			if err != nil {
				t.Fatal(err)
			}
			g := Build(zero, Lookups{Holidays: testHolidays})
			if g == nil || g.Type != scene.TypeGroup {
				t.Fatal("no group returned")
			}
			if len(g.Children) != 1 || g.Children[0].Width != 0 || g.Children[0].Height != 0 {
				t.Errorf("unexpected children %+v", g.Children)
			}
		})
	}

	if g := Build(nil, Lookups{}); g == nil || len(g.Children) != 0 {
		t.Error("nil metadata must produce empty group")
	}
}

func TestWeekStrip_SpansYears(t *testing.T) {
	m := element.Apply(element.DefaultWeekStrip(today), func(m *element.WeekStrip) {
		m.StartDate = "2024-12-30"
		m.StartDay = 0
		m.Holidays.ListMaxItems = 10
	})
	groups := WeekStripHolidays(m, Lookups{Holidays: testHolidays})
	var dates []string
	for _, g := range groups {
		dates = append(dates, g.Date)
	}
	want := []string{"2024-12-31", "2025-01-01"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("holiday dates = %v, want %v", dates, want)
	}

	g := WeekStrip(m, Lookups{Holidays: testHolidays})
	texts := map[string]bool{}
	for _, o := range collect(g, ofType(scene.TypeText)) {
		texts[o.Text] = true
	}
	for _, s := range []string{"December 2024 – January 2025", "29", "4", "New Year's Eve", "New Year's Day"} {
		if !texts[s] {
			t.Errorf("text %q not rendered", s)
		}
	}
}

func TestWeekStrip_Blank(t *testing.T) {
	m := element.Apply(element.DefaultWeekStrip(today), func(m *element.WeekStrip) {
		m.Mode = common.WeekModeBlank
	})
	g := WeekStrip(m, Lookups{Holidays: testHolidays})
	for _, o := range collect(g, ofType(scene.TypeText)) {
		if o.Text == "10" {
			t.Error("blank week shows dates")
		}
	}
	if got := WeekStripHolidays(m, Lookups{Holidays: testHolidays}); len(got) != 0 {
		t.Errorf("blank week lists holidays: %v", got)
	}
}

func TestCalendarGrid_Content(t *testing.T) {
	m := element.Apply(element.DefaultCalendarGrid(today), func(m *element.CalendarGrid) {
		m.Holidays.MarkerStyle = common.MarkerStyleText
		m.ShowOutsideDays = false
	})
	g := CalendarGrid(m, Lookups{Holidays: testHolidays})
	var days, hasTitle int
	for _, o := range collect(g, ofType(scene.TypeText)) {
		switch o.Text {
		case "March 2025":
			hasTitle++
		case "17":
			if o.Fill != m.Holidays.MarkerColor {
				t.Errorf("holiday day color = %v", o.Fill)
			}
		case "20":
			if o.Fill == m.Holidays.MarkerColor {
				t.Error("non public holiday marked")
			}
		}
		if len(o.Text) <= 2 && o.Text[0] >= '0' && o.Text[0] <= '9' {
			days++
		}
	}
	if hasTitle != 1 {
		t.Error("month title missing")
	}
	if days != 31 {
		t.Errorf("day numbers = %d, want 31", days)
	}
}

func TestDateCell_InfoPositions(t *testing.T) {
	for _, pos := range common.InfoPositionNames() {
		t.Run(pos, func(t *testing.T) {
			m := element.Apply(element.DefaultDateCell(today), func(m *element.DateCell) {
				m.Date = "2025-03-17"
				m.InfoPosition = common.MustParseInfoPosition(pos)
			})
			g := DateCell(m, Lookups{Holidays: testHolidays})
			found := map[string]bool{}
			for _, o := range collect(g, ofType(scene.TypeText)) {
				found[o.Text] = true
			}
			for _, s := range []string{"Monday", "March 2025", "17", "St. Patrick's Day, Evacuation Day"} {
				if !found[s] {
					t.Errorf("text %q missing, have %v", s, found)
				}
			}
		})
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		mode   common.FitMode
		sx, sy float64
	}{
		{common.FitModeCover, 2, 2},
		{common.FitModeContain, 1, 1},
		{common.FitModeFill, 2, 1},
		{common.FitMode("bogus"), 1, 1},
	}
	for _, tt := range tests {
		sx, sy := FitScale(tt.mode, 200, 100, 100, 100)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("FitScale(%v) = %v, %v, want %v, %v", tt.mode, sx, sy, tt.sx, tt.sy)
		}
	}
}

func collageWith(url string, fit common.FitMode) *element.Collage {
	return element.Apply(element.DefaultCollage(), func(m *element.Collage) {
		m.Size = scene.Size{Width: 300, Height: 200}
		m.Slots = []element.Slot{{X: 10, Y: 10, Width: 200, Height: 100, ImageURL: url, ImageFit: fit}}
	})
}

func TestCollage_CachedImage(t *testing.T) {
	cache := imagecache.New(4, nil, 0, zaptest.NewLogger(t))
	cache.Put("photo.png", imaging.New(100, 100, color.White))

	g := Collage(collageWith("photo.png", common.FitModeCover), Lookups{Images: cache})
	imgs := collect(g, ofType(scene.TypeImage))
	if len(imgs) != 1 {
		t.Fatalf("images = %d", len(imgs))
	}
	o := imgs[0]
	if o.ScaleX != 2 || o.ScaleY != 2 {
		t.Errorf("scale = %v, %v", o.ScaleX, o.ScaleY)
	}
	if o.ClipPath == nil || o.ClipPath.Width != 100 || o.ClipPath.Height != 50 {
		t.Errorf("clip = %+v", o.ClipPath)
	}
	c := o.Center()
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("image not centered in slot: %v", c)
	}
}

func TestCollage_AsyncLoad(t *testing.T) {
	load := func(ctx context.Context, url string) (image.Image, error) {
		return imaging.New(50, 50, color.Black), nil
	}
	cache := imagecache.New(4, load, time.Second, zaptest.NewLogger(t))

	var (
		mu     sync.Mutex
		loaded []string
	)
	lk := Lookups{Images: cache, OnImageLoaded: func(url string) {
		mu.Lock()
		loaded = append(loaded, url)
		mu.Unlock()
	}}
	m := collageWith("remote.png", common.FitModeContain)

	g := Collage(m, lk)
	if n := len(collect(g, ofType(scene.TypeImage))); n != 0 {
		t.Fatalf("image drawn before load: %d", n)
	}
	if n := len(collect(g, ofType(scene.TypePolygon))); n != 1 {
		t.Errorf("placeholder not drawn")
	}
	cache.Wait()

	mu.Lock()
	got := append([]string(nil), loaded...)
	mu.Unlock()
	if !reflect.DeepEqual(got, []string{"remote.png"}) {
		t.Errorf("OnImageLoaded calls = %v", got)
	}
	g = Collage(m, lk)
	imgs := collect(g, ofType(scene.TypeImage))
	if len(imgs) != 1 || imgs[0].ScaleX != 2 {
		t.Errorf("image after load = %v", imgs)
	}
}

func TestCollage_SlotClamped(t *testing.T) {
	m := element.Apply(element.DefaultCollage(), func(m *element.Collage) {
		m.Size = scene.Size{Width: 100, Height: 100}
		m.Slots = []element.Slot{
			{X: 50, Y: 50, Width: 200, Height: 200},
			{X: 150, Y: 0, Width: 20, Height: 20},
		}
	})
	g := Collage(m, Lookups{})
	var slots []*scene.Object
	for _, c := range g.Children[1:] {
		if c.Type == scene.TypeGroup {
			slots = append(slots, c)
		}
	}
	if len(slots) != 1 {
		t.Fatalf("slots = %d, want 1", len(slots))
	}
	if slots[0].Width != 50 || slots[0].Height != 50 {
		t.Errorf("slot size = %vx%v", slots[0].Width, slots[0].Height)
	}
}

func TestCollage_RotatedSlotInside(t *testing.T) {
	m := element.Apply(element.DefaultCollage(), func(m *element.Collage) {
		m.Size = scene.Size{Width: 100, Height: 100}
		m.FramePadding = 0
		m.Slots = []element.Slot{
			{X: 60, Y: 0, Width: 40, Height: 40, Rotation: 45},
			{X: 0, Y: 0, Width: 100, Height: 100, Rotation: 30},
			{X: 0, Y: 70, Width: 30, Height: 30, Rotation: -20},
		}
	})
	g := Collage(m, Lookups{})
	var n int
	for _, c := range g.Children[1:] {
		if c.Type != scene.TypeGroup {
			continue
		}
		n++
		// children are relative to collage center
		b := c.Bounds()
		const eps = 1e-9
		if b.Left < -50-eps || b.Top < -50-eps || b.Right() > 50+eps || b.Bottom() > 50+eps {
			t.Errorf("slot rotated %v drawn outside collage: %+v", c.Angle, b)
		}
	}
	if n != 3 {
		t.Fatalf("slots = %d, want 3", n)
	}
}

func TestTable_Merges(t *testing.T) {
	m := element.Apply(element.DefaultTable(), func(m *element.Table) {
		m.Size = scene.Size{Width: 300, Height: 300}
		m.ShowBorder = false
		m.Rows, m.Columns, m.HeaderRows = 3, 3, 1
		m.GridWidth = 0
		m.Merges = []table.Merge{{Row: 1, Column: 0, RowSpan: 2, ColSpan: 2}}
		m.CellContents = []table.CellContent{
			{Row: 0, Column: 0, Text: "Head"},
			{Row: 1, Column: 0, Text: "Merged", TextAlign: common.TextAlignCenter},
		}
	})
	g := Table(m, Lookups{})
	// background + 9 cells - 3 covered
	if n := len(collect(g, ofType(scene.TypeRect))); n != 7 {
		t.Errorf("rects = %d, want 7", n)
	}
	for _, o := range collect(g, ofType(scene.TypeText)) {
		switch o.Text {
		case "Head":
			if o.FontWeight != "bold" {
				t.Error("header text is not bold")
			}
		case "Merged":
			if o.TextAlign != common.TextAlignCenter {
				t.Errorf("align = %v", o.TextAlign)
			}
			if o.Width < 180 {
				t.Errorf("merged text width = %v, want spanning two columns", o.Width)
			}
		}
	}
}

func TestTimeLabel(t *testing.T) {
	tests := []struct {
		minutes int
		format  common.TimeFormat
		want    string
	}{
		{8 * 60, common.TimeFormat24h, "08:00"},
		{13*60 + 30, common.TimeFormat24h, "13:30"},
		{8 * 60, common.TimeFormat12h, "8 AM"},
		{13*60 + 30, common.TimeFormat12h, "1:30 PM"},
		{0, common.TimeFormat12h, "12 AM"},
	}
	for _, tt := range tests {
		if got := TimeLabel(tt.minutes, tt.format); got != tt.want {
			t.Errorf("TimeLabel(%d, %v) = %q, want %q", tt.minutes, tt.format, got, tt.want)
		}
	}
}

func TestPlanner_HeaderStyles(t *testing.T) {
	for _, style := range common.HeaderStyleNames() {
		t.Run(style, func(t *testing.T) {
			m := element.Apply(element.DefaultChecklist(), func(m *element.Checklist) {
				m.HeaderStyle = common.MustParseHeaderStyle(style)
				m.Rows = 5
			})
			g := Checklist(m, Lookups{})
			titles := 0
			for _, o := range collect(g, ofType(scene.TypeText)) {
				if o.Text == "To do" {
					titles++
				}
			}
			want := 1
			if m.HeaderStyle == common.HeaderStyleNone {
				want = 0
			}
			if titles != want {
				t.Errorf("titles = %d, want %d", titles, want)
			}
			if n := len(collect(g, ofType(scene.TypeLine))); n != 5 {
				t.Errorf("row lines = %d, want 5", n)
			}
		})
	}
}

func TestPlannerNote_Patterns(t *testing.T) {
	counts := map[common.NotePattern]int{}
	for _, p := range common.NotePatternNames() {
		m := element.Apply(element.DefaultPlannerNote(), func(m *element.PlannerNote) {
			m.Pattern = common.MustParseNotePattern(p)
		})
		g := PlannerNote(m, Lookups{})
		counts[m.Pattern] = len(g.Children)
	}
	if counts[common.NotePatternNone] >= counts[common.NotePatternRuled] {
		t.Errorf("ruled pattern adds nothing: %v", counts)
	}
	if counts[common.NotePatternGrid] <= counts[common.NotePatternRuled] {
		t.Errorf("grid should have more lines than ruled: %v", counts)
	}
	if counts[common.NotePatternDot] <= counts[common.NotePatternGrid] {
		t.Errorf("dot lattice should have most objects: %v", counts)
	}
}

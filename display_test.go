package shapebox

import (
	"image"
	"math"
	"testing"
)

var testViewport = Viewport{Width: 1000, Height: 800}

func TestViewportRoundTrip(t *testing.T) {
	tests := []struct {
		sim    Vec2
		screen image.Point
	}{
		{Zero, image.Pt(500, 400)},
		{V(100, 50), image.Pt(600, 350)},
		{V(-500, -400), image.Pt(0, 800)},
	}
	for _, tt := range tests {
		if got := testViewport.ToScreen(tt.sim); got != tt.screen {
			t.Errorf("ToScreen(%v) = %v, want %v", tt.sim, got, tt.screen)
		}
		back := testViewport.ToSim(float64(tt.screen.X), float64(tt.screen.Y))
		assertVec(t, "ToSim", back, tt.sim)
	}

	if !testViewport.Contains(image.Pt(0, 0)) || !testViewport.Contains(image.Pt(999, 799)) {
		t.Error("corners should be on screen")
	}
	if testViewport.Contains(image.Pt(1000, 0)) || testViewport.Contains(image.Pt(0, -1)) {
		t.Error("points past the edge should be off screen")
	}
}

func TestCircleDisplay(t *testing.T) {
	c := NewCircle(V(10, -20), 30)
	points := c.Display(testViewport, ColorWhite)
	if len(points) == 0 {
		t.Fatal("no points")
	}

	centre := testViewport.ToScreen(c.Centre())
	seen := map[image.Point]bool{}
	for _, p := range points {
		if p.Color != ColorWhite {
			t.Fatalf("color = %v", p.Color)
		}
		d := p.P.Sub(centre)
		dist := math.Hypot(float64(d.X), float64(d.Y))
		if math.Abs(dist-30) > 1 {
			t.Errorf("point %v is %v from the centre", p.P, dist)
		}
		seen[p.P] = true
	}
	for _, extreme := range []image.Point{{30, 0}, {-30, 0}, {0, 30}, {0, -30}} {
		if !seen[centre.Add(extreme)] {
			t.Errorf("missing extreme %v", extreme)
		}
	}
}

func TestRectDisplay(t *testing.T) {
	r := FromCentre(Zero, V(20, 10), 0)
	points := r.Display(testViewport, ColorWall)

	// A closed 20x10 outline drawn edge by edge without repeating corners.
	if len(points) != 2*20+2*10 {
		t.Errorf("got %d points, want %d", len(points), 60)
	}
	seen := map[image.Point]int{}
	for _, p := range points {
		seen[p.P]++
	}
	for _, corner := range r.Points() {
		if seen[testViewport.ToScreen(corner)] != 1 {
			t.Errorf("corner %v drawn %d times", corner, seen[testViewport.ToScreen(corner)])
		}
	}
}

func TestAppendLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want int
	}{
		{"horizontal", image.Pt(0, 0), image.Pt(5, 0), 5},
		{"vertical up", image.Pt(0, 5), image.Pt(0, 0), 5},
		{"diagonal", image.Pt(0, 0), image.Pt(4, 4), 4},
		{"steep", image.Pt(0, 0), image.Pt(2, 7), 7},
		{"degenerate", image.Pt(3, 3), image.Pt(3, 3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := appendLine(nil, tt.a, tt.b, ColorWhite)
			if len(pts) != tt.want {
				t.Fatalf("got %d points, want %d", len(pts), tt.want)
			}
			if len(pts) > 0 && pts[0].P != tt.a {
				t.Errorf("first point %v, want %v", pts[0].P, tt.a)
			}
			for i := 1; i < len(pts); i++ {
				d := pts[i].P.Sub(pts[i-1].P)
				if abs(d.X) > 1 || abs(d.Y) > 1 {
					t.Errorf("gap between %v and %v", pts[i-1].P, pts[i].P)
				}
			}
		})
	}
}

func TestButtonDisplay(t *testing.T) {
	for _, action := range []ButtonAction{ActionPause, ActionMove, ActionInsertCircle, ActionInsertRect} {
		t.Run(action.String(), func(t *testing.T) {
			b := NewButton(action, image.Pt(10, 10), image.Pt(70, 70))
			points := b.Display(testViewport)
			bounds := image.Rect(10, 10, 71, 71)
			for _, p := range points {
				if !p.P.In(bounds) {
					t.Errorf("point %v outside button", p.P)
				}
				if p.Color != ColorButton {
					t.Errorf("color = %v", p.Color)
				}
			}
			// Border is 4*60 points; each glyph adds more.
			if len(points) <= 240 {
				t.Errorf("got %d points, want border plus glyph", len(points))
			}

			b.pressed = true
			for _, p := range b.Display(testViewport) {
				if p.Color != ColorButton.Invert() {
					t.Fatalf("pressed color = %v", p.Color)
				}
			}
		})
	}
}

func TestButtonInBounds(t *testing.T) {
	b := NewButton(ActionPause, image.Pt(10, 10), image.Pt(70, 70))
	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(40, 40), true},
		{image.Pt(11, 69), true},
		{image.Pt(10, 40), false},
		{image.Pt(40, 70), false},
		{image.Pt(0, 0), false},
	}
	for _, tt := range tests {
		if got := b.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestParseButtonAction(t *testing.T) {
	for _, name := range []string{"pause", "move", "circle", "rect"} {
		a, err := ParseButtonAction(name)
		if err != nil {
			t.Fatalf("ParseButtonAction(%q): %v", name, err)
		}
		if a.String() != name {
			t.Errorf("round trip %q -> %q", name, a.String())
		}
	}
	if _, err := ParseButtonAction("quit"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestColorRuns(t *testing.T) {
	points := []ColoredPoint{
		{Color: ColorWhite}, {Color: ColorWhite},
		{Color: ColorWall},
		{Color: ColorWhite},
	}
	if got := countColorRuns(points); got != 3 {
		t.Errorf("countColorRuns = %d, want 3", got)
	}
	if got := countColorRuns(nil); got != 0 {
		t.Errorf("countColorRuns(nil) = %d", got)
	}

	var lens []int
	ForEachRun(points, func(c Color, run []ColoredPoint) {
		for _, p := range run {
			if p.Color != c {
				t.Errorf("run color %v contains %v", c, p.Color)
			}
		}
		lens = append(lens, len(run))
	})
	if len(lens) != 3 || lens[0] != 2 || lens[1] != 1 || lens[2] != 1 {
		t.Errorf("run lengths = %v", lens)
	}

	ForEachRun(nil, func(Color, []ColoredPoint) { t.Error("callback on empty input") })
}

func TestColorInvert(t *testing.T) {
	if got := (Color{10, 200, 255}).Invert(); got != (Color{245, 55, 0}) {
		t.Errorf("Invert = %v", got)
	}
	_, _, _, a := ColorHeld.RGBA()
	if a != 0xffff {
		t.Errorf("alpha = %#x", a)
	}
}

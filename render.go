package shapebox

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Display rasterises the scene into screen-space points: collection shapes
// first, then the held shape, then the buttons on top. Each item is
// rasterised in parallel into its own slot and the slots are concatenated in
// draw order, so the output is deterministic.
func (s *Sandbox) Display() []ColoredPoint {
	t0 := time.Now()

	n := len(s.objects) + len(s.buttons)
	if s.mode.Holding() {
		n++
	}
	parts := make([][]ColoredPoint, n)

	var g errgroup.Group
	slot := 0
	for _, o := range s.objects {
		i := slot
		g.Go(func() error {
			col := ColorWhite
			if o.Boundary() {
				col = ColorWall
			}
			parts[i] = o.Display(s.vp, col)
			return nil
		})
		slot++
	}
	if s.mode.Holding() {
		i, held := slot, s.mode.Manip.Held
		g.Go(func() error {
			parts[i] = held.Display(s.vp, ColorHeld)
			return nil
		})
		slot++
	}
	for _, b := range s.buttons {
		i := slot
		g.Go(func() error {
			parts[i] = b.Display(s.vp)
			return nil
		})
		slot++
	}
	_ = g.Wait()

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]ColoredPoint, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	s.stats.Display = time.Since(t0)
	s.stats.Points = len(out)
	s.stats.ColorRuns = countColorRuns(out)
	return out
}

// ForEachRun calls fn for each maximal run of consecutive points that share
// a color.
func ForEachRun(points []ColoredPoint, fn func(c Color, run []ColoredPoint)) {
	start := 0
	for i := 1; i <= len(points); i++ {
		if i == len(points) || points[i].Color != points[start].Color {
			fn(points[start].Color, points[start:i])
			start = i
		}
	}
}

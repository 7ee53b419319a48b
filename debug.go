package shapebox

import (
	"time"

	"go.uber.org/zap"
)

// FrameStats holds per-frame timing and display metrics. Timings for
// sections that did not run in the last frame are zero.
type FrameStats struct {
	Input     time.Duration
	Integrate time.Duration
	Collide   time.Duration
	Display   time.Duration
	Objects   int
	Pairs     int
	Points    int
	ColorRuns int
}

// Stats returns the metrics of the most recent Update and Display.
func (s *Sandbox) Stats() FrameStats {
	return s.stats
}

// debugLog writes the last frame's stats at debug level.
func (s *Sandbox) debugLog() {
	st := s.stats
	s.log.Debug("frame",
		zap.Uint64("frame", s.frame),
		zap.Stringer("mode", s.mode),
		zap.Duration("input", st.Input),
		zap.Duration("integrate", st.Integrate),
		zap.Duration("collide", st.Collide),
		zap.Duration("display", st.Display),
		zap.Int("objects", st.Objects),
		zap.Int("pairs", st.Pairs),
		zap.Int("points", st.Points),
		zap.Int("color_runs", st.ColorRuns),
	)
}

// countColorRuns counts contiguous groups of points sharing a color. This is
// the number of fills a run-batching canvas issues.
func countColorRuns(points []ColoredPoint) int {
	if len(points) == 0 {
		return 0
	}
	count := 1
	prev := points[0].Color
	for i := 1; i < len(points); i++ {
		if points[i].Color != prev {
			count++
			prev = points[i].Color
		}
	}
	return count
}

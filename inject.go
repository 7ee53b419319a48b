package shapebox

// Injected events use screen coordinates, the same space as live pointer
// input, and each one replaces the live pointer for exactly one frame.

// InjectPress queues a press of button at screen (x, y) with mods held.
func (s *Sandbox) InjectPress(x, y float64, button MouseButton, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, PointerState{
		X: x, Y: y,
		Pressed: true,
		Button:  button,
		Mods:    mods,
	})
}

// InjectMove queues a pointer move to screen (x, y) with the button still
// held. Use it between InjectPress and InjectRelease to drag.
func (s *Sandbox) InjectMove(x, y float64, button MouseButton, mods KeyModifiers) {
	s.InjectPress(x, y, button, mods)
}

// InjectRelease queues a release at screen (x, y).
func (s *Sandbox) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, PointerState{X: x, Y: y})
}

// InjectClick queues a left press and release at the same point. Consumes
// two frames.
func (s *Sandbox) InjectClick(x, y float64) {
	s.InjectPress(x, y, MouseButtonLeft, 0)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2.
func (s *Sandbox) InjectDrag(fromX, fromY, toX, toY float64, frames int, button MouseButton, mods KeyModifiers) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY, button, mods)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, button, mods)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (s *Sandbox) Pending() int {
	return len(s.injectQueue)
}

func (s *Sandbox) popInjected() (PointerState, bool) {
	if len(s.injectQueue) == 0 {
		return PointerState{}, false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return ev, true
}

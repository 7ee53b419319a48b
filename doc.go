// Package shapebox is an interactive 2D rigid-body sandbox of circles and
// oriented rectangles.
//
// Shapes move under constant velocity plus optional gravity, are tested
// pairwise for overlap every frame, and bounce off each other with an
// elastic impulse along the contact normal. While paused, the pointer
// manipulates shapes: carry, resize, rotate, set velocity or angular
// velocity, insert and delete.
//
// The package is headless. A frame is driven by [Sandbox.Update] with the
// pointer sampled by the host, and drawn from the points returned by
// [Sandbox.Display]. The host package adapts a Sandbox to [Ebitengine].
//
// # Quick start
//
//	cfg := shapebox.DefaultConfig()
//	logger, _ := shapebox.NewLogger(cfg.Log)
//	sb, err := shapebox.New(cfg, logger)
//	if err != nil {
//		// the configuration is invalid
//	}
//	for {
//		sb.Update(shapebox.PointerState{X: x, Y: y, Pressed: down})
//		draw(sb.Display())
//	}
//
// # Coordinates
//
// Simulation space has its origin at the centre of the window with Y up.
// Screen space has its origin at the top-left with Y down. [Viewport]
// converts between the two; buttons are placed in screen pixels.
//
// # Modes
//
// The sandbox starts paused in the idle Move manipulation. Pressing a shape
// removes it from the collection into the active [ManipMode] until the
// pointer is released:
//
//	left            carry
//	left + ctrl     set velocity
//	left + shift    resize
//	right           rotate
//	right + ctrl    set angular velocity
//	right + shift   delete
//
// Unpausing is refused with an [*OverlapError] while any two shapes
// intersect.
//
// # Scripts
//
// A [ScriptRunner] replays press, move, release, click, drag, wait and
// screenshot steps from a YAML or JSON file, one injected pointer event per
// frame. See [LoadScript].
//
// [Ebitengine]: https://ebitengine.org
package shapebox

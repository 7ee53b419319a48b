package shapebox

import (
	"errors"
	"image"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultRadius is the radius of a circle spawned by an insert button.
	DefaultRadius = 50.0
	// diagnosticFrames is how long a refused-transition message stays up.
	diagnosticFrames = 180
)

// DefaultRectSize is the size of a rectangle spawned by an insert button.
var DefaultRectSize = Vec2{100, 100}

// PointerState is the pointer as sampled once per frame, in screen pixels.
// Pressed is the button level, not an edge; Update derives the edges.
type PointerState struct {
	X, Y    float64
	Pressed bool
	Button  MouseButton
	Mods    KeyModifiers
}

// Sandbox is the whole simulation state: the ordered shape collection, the
// interaction mode, the buttons, and the configuration they run under. A
// single goroutine (the frame loop) owns it; the parallel sections inside
// Advance and Display only read shared state or write disjoint entries.
type Sandbox struct {
	objects []Shape
	mode    Mode
	buttons []*Button
	vp      Viewport
	physics PhysicsConfig
	log     *zap.Logger
	debug   bool

	pointerDown bool
	pointer     Vec2

	diagnostic     string
	diagnosticLeft int

	injectQueue []PointerState
	script      *ScriptRunner

	stats FrameStats
	frame uint64
}

// New builds a paused sandbox from cfg. A nil logger discards output.
func New(cfg Config, logger *zap.Logger) (*Sandbox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	buttons, err := cfg.buttons()
	if err != nil {
		return nil, err
	}

	s := &Sandbox{
		mode:    Paused(Move()),
		buttons: buttons,
		vp:      cfg.Viewport(),
		physics: cfg.Physics,
		log:     logger,
		debug:   cfg.Debug,
	}
	for _, sc := range cfg.Scene {
		shape, err := sc.Build()
		if err != nil {
			return nil, err
		}
		s.objects = append(s.objects, shape)
	}
	if cfg.Physics.Walls {
		for _, w := range NewBoundaryWalls(s.vp, cfg.Physics.WallThickness) {
			s.objects = append(s.objects, RectShape(w))
		}
	}
	return s, nil
}

// Objects returns the shape collection in insertion order. The returned
// slice MUST NOT be mutated.
func (s *Sandbox) Objects() []Shape {
	return s.objects
}

// Mode returns the current interaction mode.
func (s *Sandbox) Mode() Mode {
	return s.mode
}

// Buttons returns the on-screen buttons.
func (s *Sandbox) Buttons() []*Button {
	return s.buttons
}

// Viewport returns the window coordinate mapping.
func (s *Sandbox) Viewport() Viewport {
	return s.vp
}

// Frame returns the number of Update calls so far.
func (s *Sandbox) Frame() uint64 {
	return s.frame
}

// Diagnostic returns the most recent refused-transition message while it is
// still current, or "".
func (s *Sandbox) Diagnostic() string {
	if s.diagnosticLeft <= 0 {
		return ""
	}
	return s.diagnostic
}

// SetDebugMode enables per-frame timing stats at debug log level.
func (s *Sandbox) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Add appends shape to the collection and returns its index.
func (s *Sandbox) Add(shape Shape) int {
	s.objects = append(s.objects, shape)
	return len(s.objects) - 1
}

// ShapeAt returns the index of the first shape in collection order that
// contains p, or -1. Boundary walls are never picked.
func (s *Sandbox) ShapeAt(p Vec2) int {
	for i, o := range s.objects {
		if !o.Boundary() && o.PointIn(p) {
			return i
		}
	}
	return -1
}

// Update runs one frame: scripted or live pointer input drives the
// manipulation state machine, then a running simulation advances.
func (s *Sandbox) Update(in PointerState) {
	start := time.Now()
	s.frame++

	if s.script != nil {
		s.script.step(s)
	}
	if ev, ok := s.popInjected(); ok {
		in = ev
	}

	// Drag first so a press or release acts on the shape at the new pointer.
	s.Drag(in.X, in.Y)
	switch {
	case in.Pressed && !s.pointerDown:
		s.pointerDown = true
		s.PointerDown(in.X, in.Y, in.Button, in.Mods)
	case !in.Pressed && s.pointerDown:
		s.pointerDown = false
		s.PointerUp()
	}
	s.stats.Input = time.Since(start)

	if !s.mode.Paused {
		s.Advance()
	} else {
		s.stats.Integrate, s.stats.Collide, s.stats.Pairs = 0, 0, 0
	}
	s.stats.Objects = len(s.objects)

	if s.diagnosticLeft > 0 {
		s.diagnosticLeft--
	}
	if s.debug {
		s.debugLog()
	}
}

// Advance integrates every shape in parallel, then detects collisions and
// bounces each colliding pair sequentially against a snapshot of the
// pre-integration states.
func (s *Sandbox) Advance() {
	snapshot := slices.Clone(s.objects)

	t0 := time.Now()
	var g errgroup.Group
	for i := range s.objects {
		g.Go(func() error {
			s.objects[i].Integrate(s.physics.Gravity)
			return nil
		})
	}
	_ = g.Wait()
	s.stats.Integrate = time.Since(t0)

	t0 = time.Now()
	pairs := DetectIntersections(s.objects)
	for _, p := range pairs {
		a, b := &s.objects[p.I], &s.objects[p.J]
		a.Bounce(snapshot[p.J], s.physics.Gravity)
		b.Bounce(snapshot[p.I], s.physics.Gravity)
	}
	s.stats.Collide = time.Since(t0)
	s.stats.Pairs = len(pairs)
}

// PointerDown handles a press at screen (x, y). Buttons take priority. In
// Paused(Move) the first shape under the pointer is picked up according to
// the button and modifiers; ctrl wins over shift.
//
//	left            carrying
//	left + ctrl     velocity setting
//	left + shift    resizing
//	right           rotating
//	right + ctrl    angular velocity setting
//	right + shift   delete
func (s *Sandbox) PointerDown(x, y float64, button MouseButton, mods KeyModifiers) {
	at := s.vp.ToSim(x, y)
	s.pointer = at

	screen := image.Pt(int(x), int(y))
	for _, b := range s.buttons {
		if b.InBounds(screen) {
			s.pressButton(b)
			return
		}
	}

	if !s.mode.Paused {
		return
	}
	if s.mode.Manip.placeOnPress {
		s.ReleaseHeld()
		return
	}
	if s.mode.Manip.Kind != ManipMove {
		return
	}

	idx := s.ShapeAt(at)
	if idx < 0 {
		return
	}
	shape := s.objects[idx]
	offset := at.Sub(shape.Position())

	var next ManipMode
	switch {
	case button == MouseButtonRight && mods.Has(ModCtrl):
		next = AngVelSetting(shape, offset)
	case button == MouseButtonRight && mods.Has(ModShift):
		s.removeAt(idx)
		s.log.Debug("shape deleted", shapeFields(idx, shape)...)
		return
	case button == MouseButtonRight:
		next = Rotating(shape, offset)
	case mods.Has(ModCtrl):
		next = VelSetting(shape, offset)
	case mods.Has(ModShift):
		next = Resizing(shape, offset)
	default:
		next = Carrying(shape, offset)
	}

	s.removeAt(idx)
	s.mode = Paused(next)
	s.log.Debug("shape picked up", append(shapeFields(idx, shape), zap.Stringer("mode", s.mode))...)
}

// PointerUp releases every pressed button and returns a held shape to the
// collection. A shape spawned by an insert button stays carried until the
// next press.
func (s *Sandbox) PointerUp() {
	for _, b := range s.buttons {
		b.pressed = false
	}
	if !s.mode.Holding() || s.mode.Manip.placeOnPress {
		return
	}
	s.ReleaseHeld()
}

// Drag applies the active manipulation for a pointer at screen (x, y).
// Velocity and angular velocity are steered with impulses towards the
// target the drag describes; resize and rotate are computed from the
// snapshot taken at press time.
func (s *Sandbox) Drag(x, y float64) {
	at := s.vp.ToSim(x, y)
	s.pointer = at
	if !s.mode.Holding() {
		return
	}

	m := &s.mode.Manip
	pos := m.Held.Position()
	switch m.Kind {
	case ManipCarrying:
		m.Held.TranslateTo(at.Sub(m.Offset))
	case ManipVelSetting:
		target := at.Sub(pos.Add(m.Offset)).Mul(s.physics.VelocityScale)
		m.Held.Impulse(target.Sub(m.Held.Velocity()))
	case ManipAngVelSetting:
		target := wrapAngle(at.Sub(pos).Angle()-m.RefAngle) * s.physics.AngularScale
		m.Held.AngularImpulse(target - m.Held.AngularVelocity())
	case ManipResizing:
		m.Held.Resize(m.Offset, at.Sub(pos), m.Archive)
	case ManipRotating:
		m.Held.Rotate(m.Offset, at.Sub(pos), m.Archive)
	}
}

// ReleaseHeld returns the held shape, if any, to the end of the collection
// and resets the manipulation to Move. It reports whether a shape was held.
func (s *Sandbox) ReleaseHeld() bool {
	if !s.mode.Holding() {
		return false
	}
	held := s.mode.Manip.Held
	idx := s.Add(held)
	s.mode = Paused(Move())
	s.log.Debug("shape released", shapeFields(idx, held)...)
	return true
}

// TogglePause pauses a running simulation unconditionally. A paused
// simulation only resumes when no shapes intersect, counting a held shape as
// if it were released; otherwise an *OverlapError is returned and neither
// the mode nor the collection changes.
func (s *Sandbox) TogglePause() error {
	if !s.mode.Paused {
		s.mode = Paused(Move())
		s.log.Info("paused", zap.Uint64("frame", s.frame))
		return nil
	}
	candidates := s.objects
	if s.mode.Holding() {
		candidates = append(slices.Clone(s.objects), s.mode.Manip.Held)
	}
	if pairs := DetectIntersections(candidates); len(pairs) > 0 {
		return &OverlapError{Pairs: pairs}
	}
	s.ReleaseHeld()
	s.mode = Unpaused()
	s.log.Info("unpaused", zap.Uint64("frame", s.frame), zap.Int("objects", len(s.objects)))
	return nil
}

// SwitchToMove drops any held shape and returns to the idle manipulation.
// It does nothing while running.
func (s *Sandbox) SwitchToMove() error {
	if !s.mode.Paused {
		return nil
	}
	s.ReleaseHeld()
	s.mode = Paused(Move())
	return nil
}

// InsertCircle spawns a default circle off screen and carries it.
func (s *Sandbox) InsertCircle() error {
	return s.insert(CircleShape(NewCircle(s.placeholder(), DefaultRadius)))
}

// InsertRect spawns a default rectangle off screen and carries it.
func (s *Sandbox) InsertRect() error {
	return s.insert(RectShape(FromCentre(s.placeholder(), DefaultRectSize, 0)))
}

func (s *Sandbox) insert(shape Shape) error {
	if !s.mode.Paused {
		return ErrRunning
	}
	s.ReleaseHeld()
	m := Carrying(shape, Zero)
	m.placeOnPress = true
	s.mode = Paused(m)
	s.log.Debug("shape spawned", zap.Stringer("kind", shape.Kind()))
	return nil
}

// placeholder is a simulation point well outside the window.
func (s *Sandbox) placeholder() Vec2 {
	return s.vp.ToSim(-1000, -1000)
}

func (s *Sandbox) pressButton(b *Button) {
	b.pressed = true
	if err := buttonActions[b.Action](s); err != nil {
		s.refuse(b.Action, err)
	}
}

// refuse surfaces a rejected transition: the mode is unchanged, the message
// goes to the overlay and the log.
func (s *Sandbox) refuse(action ButtonAction, err error) {
	s.diagnostic = err.Error()
	s.diagnosticLeft = diagnosticFrames

	fields := []zap.Field{
		zap.Stringer("action", action),
		zap.Stringer("mode", s.mode),
		zap.Error(err),
	}
	var overlap *OverlapError
	if errors.As(err, &overlap) {
		fields = append(fields, zap.Int("pairs", len(overlap.Pairs)))
	}
	s.log.Warn("transition refused", fields...)
}

func (s *Sandbox) removeAt(i int) {
	s.objects = slices.Delete(s.objects, i, i+1)
}

package shapebox

import (
	"fmt"
	"image"
)

// ButtonAction selects the control a Button is bound to.
type ButtonAction uint8

const (
	ActionPause        ButtonAction = iota // toggle pause
	ActionMove                             // return to the idle manipulation
	ActionInsertCircle                     // spawn a default circle and carry it
	ActionInsertRect                       // spawn a default rectangle and carry it
)

var actionNames = [...]string{
	ActionPause:        "pause",
	ActionMove:         "move",
	ActionInsertCircle: "circle",
	ActionInsertRect:   "rect",
}

func (a ButtonAction) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("ButtonAction(%d)", a)
}

// ParseButtonAction maps a config name to its action.
func ParseButtonAction(name string) (ButtonAction, error) {
	for i, n := range actionNames {
		if n == name {
			return ButtonAction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown button action %q", name)
}

// buttonActions maps each action to the state transition a press performs.
var buttonActions = [...]func(*Sandbox) error{
	ActionPause:        (*Sandbox).TogglePause,
	ActionMove:         (*Sandbox).SwitchToMove,
	ActionInsertCircle: (*Sandbox).InsertCircle,
	ActionInsertRect:   (*Sandbox).InsertRect,
}

// Button is an on-screen clickable region bound to one action. Bounds are in
// screen pixels; Min must lie above and to the left of Max.
type Button struct {
	Action  ButtonAction
	Min     image.Point
	Max     image.Point
	Texture string

	pressed bool
}

// NewButton returns a released button covering [min, max].
func NewButton(action ButtonAction, min, max image.Point) *Button {
	return &Button{Action: action, Min: min, Max: max}
}

// InBounds reports whether p lies strictly inside the button.
func (b *Button) InBounds(p image.Point) bool {
	return p.X > b.Min.X && p.Y > b.Min.Y && p.X < b.Max.X && p.Y < b.Max.Y
}

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Bounds returns the button rectangle.
func (b *Button) Bounds() image.Rectangle {
	return image.Rectangle{Min: b.Min, Max: b.Max}
}

// Display returns the button's border and glyph. A pressed button is drawn
// inverted.
func (b *Button) Display(vp Viewport) []ColoredPoint {
	col := ColorButton
	if b.pressed {
		col = col.Invert()
	}

	tl, br := b.Min, b.Max
	tr, bl := image.Point{br.X, tl.Y}, image.Point{tl.X, br.Y}
	var out []ColoredPoint
	out = appendLine(out, tl, tr, col)
	out = appendLine(out, tr, br, col)
	out = appendLine(out, br, bl, col)
	out = appendLine(out, bl, tl, col)

	c := tl.Add(br).Div(2)
	q := min(br.X-tl.X, br.Y-tl.Y) / 4
	centre := vp.ToSim(float64(c.X), float64(c.Y))

	switch b.Action {
	case ActionPause:
		for _, dx := range []int{-q / 2, q / 2} {
			out = appendLine(out, image.Point{c.X + dx, c.Y - q}, image.Point{c.X + dx, c.Y + q}, col)
		}
	case ActionMove:
		tip := image.Point{c.X + q, c.Y}
		out = appendLine(out, image.Point{c.X - q, c.Y}, tip, col)
		out = appendLine(out, image.Point{c.X, c.Y - q/2}, tip, col)
		out = appendLine(out, image.Point{c.X, c.Y + q/2}, tip, col)
	case ActionInsertCircle:
		out = append(out, NewCircle(centre, float64(q)).Display(vp, col)...)
	case ActionInsertRect:
		side := float64(2 * q)
		out = append(out, FromCentre(centre, Vec2{side, side}, 0).Display(vp, col)...)
	}
	return out
}

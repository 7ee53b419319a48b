package shapebox

import "fmt"

// ManipKind identifies the active manipulation of a paused simulation.
type ManipKind uint8

const (
	ManipMove          ManipKind = iota // idle: a press picks up a shape
	ManipCarrying                       // held shape follows the pointer
	ManipVelSetting                     // drag sets the held shape's velocity
	ManipAngVelSetting                  // drag sets the held shape's angular velocity
	ManipResizing                       // drag resizes relative to the archive
	ManipRotating                       // drag rotates relative to the archive
)

var manipNames = [...]string{
	ManipMove:          "move",
	ManipCarrying:      "carrying",
	ManipVelSetting:    "vel-setting",
	ManipAngVelSetting: "angvel-setting",
	ManipResizing:      "resizing",
	ManipRotating:      "rotating",
}

func (k ManipKind) String() string {
	if int(k) < len(manipNames) {
		return manipNames[k]
	}
	return fmt.Sprintf("ManipKind(%d)", k)
}

// ManipMode is the paused sub-state. While Kind is not ManipMove the mode
// exclusively owns Held; the shape is not in the collection until the
// manipulation ends.
type ManipMode struct {
	Kind ManipKind

	// Held is the shape being manipulated.
	Held Shape
	// Offset is the grab point relative to Held's position at press time.
	// Resizing and rotating use it as the drag anchor.
	Offset Vec2
	// RefAngle is the polar angle of Offset, used by angular velocity setting.
	RefAngle float64
	// Archive is Held as it was at press time. Resize and rotate are always
	// computed from it so repeated drags do not compound.
	Archive Shape

	// placeOnPress marks a shape spawned by an insert button: the release
	// of that button click leaves it carried and the next press places it.
	placeOnPress bool
}

// Move returns the idle manipulation.
func Move() ManipMode {
	return ManipMode{Kind: ManipMove}
}

// Carrying returns a manipulation that carries held with the given grab offset.
func Carrying(held Shape, offset Vec2) ManipMode {
	return ManipMode{Kind: ManipCarrying, Held: held, Offset: offset}
}

// VelSetting returns a manipulation that sets held's velocity from the drag.
func VelSetting(held Shape, offset Vec2) ManipMode {
	return ManipMode{Kind: ManipVelSetting, Held: held, Offset: offset}
}

// AngVelSetting returns a manipulation that sets held's angular velocity from
// the change in pointer angle around its position.
func AngVelSetting(held Shape, offset Vec2) ManipMode {
	return ManipMode{Kind: ManipAngVelSetting, Held: held, Offset: offset, RefAngle: offset.Angle()}
}

// Resizing returns a manipulation that resizes held relative to its snapshot.
func Resizing(held Shape, anchor Vec2) ManipMode {
	return ManipMode{Kind: ManipResizing, Held: held, Offset: anchor, Archive: held}
}

// Rotating returns a manipulation that rotates held relative to its snapshot.
func Rotating(held Shape, anchor Vec2) ManipMode {
	return ManipMode{Kind: ManipRotating, Held: held, Offset: anchor, Archive: held}
}

// Holding reports whether the manipulation owns a shape.
func (m ManipMode) Holding() bool {
	return m.Kind != ManipMove
}

// Mode is the interaction state: running, or paused with a manipulation.
type Mode struct {
	Paused bool
	Manip  ManipMode
}

// Unpaused returns the running mode.
func Unpaused() Mode {
	return Mode{}
}

// Paused returns a paused mode with manipulation m.
func Paused(m ManipMode) Mode {
	return Mode{Paused: true, Manip: m}
}

// Holding reports whether a paused manipulation owns a shape.
func (m Mode) Holding() bool {
	return m.Paused && m.Manip.Holding()
}

func (m Mode) String() string {
	if !m.Paused {
		return "unpaused"
	}
	return "paused(" + m.Manip.Kind.String() + ")"
}

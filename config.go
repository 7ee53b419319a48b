package shapebox

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the window, physics tuning, logging, buttons and initial
// scene. Zero-valued sections keep their DefaultConfig values when decoded
// from YAML.
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Physics PhysicsConfig  `yaml:"physics"`
	Log     LogConfig      `yaml:"log"`
	Debug   bool           `yaml:"debug"`
	Buttons []ButtonConfig `yaml:"buttons"`
	Scene   []ShapeConfig  `yaml:"scene"`
}

// WindowConfig is fixed at startup.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// PhysicsConfig tunes integration and the interactive velocity setters.
type PhysicsConfig struct {
	Gravity Vec2 `yaml:"gravity"`
	// VelocityScale converts a drag distance in pixels to a velocity in
	// pixels per second.
	VelocityScale float64 `yaml:"velocity_scale"`
	// AngularScale converts a dragged angle in radians to an angular
	// velocity in radians per second.
	AngularScale float64 `yaml:"angular_scale"`
	// Walls adds four boundary rectangles just outside the window.
	Walls         bool    `yaml:"walls"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// ButtonConfig places one button in screen pixels.
type ButtonConfig struct {
	Action  string      `yaml:"action"`
	Min     image.Point `yaml:"min"`
	Max     image.Point `yaml:"max"`
	Texture string      `yaml:"texture,omitempty"`
}

// ShapeConfig describes one initial shape. Kind is "circle" or "rect".
type ShapeConfig struct {
	Kind            string   `yaml:"kind"`
	Centre          Vec2     `yaml:"centre"`
	Radius          float64  `yaml:"radius,omitempty"`
	Size            Vec2     `yaml:"size,omitempty"`
	Rotation        float64  `yaml:"rotation,omitempty"`
	Mass            *float64 `yaml:"mass,omitempty"`
	Velocity        Vec2     `yaml:"velocity,omitempty"`
	AngularVelocity float64  `yaml:"angular_velocity,omitempty"`
}

// DefaultConfig returns a 1000x1000 paused sandbox with four buttons along
// the top-left, boundary walls, no gravity and two resting shapes.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "shapebox", Width: 1000, Height: 1000},
		Physics: PhysicsConfig{
			VelocityScale: 2,
			AngularScale:  2,
			Walls:         true,
			WallThickness: 20,
		},
		Log: LogConfig{Level: "info", Encoding: "console"},
		Buttons: []ButtonConfig{
			{Action: "pause", Min: image.Pt(10, 10), Max: image.Pt(70, 70)},
			{Action: "move", Min: image.Pt(80, 10), Max: image.Pt(140, 70)},
			{Action: "circle", Min: image.Pt(150, 10), Max: image.Pt(210, 70)},
			{Action: "rect", Min: image.Pt(220, 10), Max: image.Pt(280, 70)},
		},
		Scene: []ShapeConfig{
			{Kind: "rect", Centre: Vec2{0, 0}, Size: Vec2{100, 100}, Rotation: math.Pi / 8},
			{Kind: "circle", Centre: Vec2{0, 250}, Radius: 100, Velocity: Vec2{60, -90}},
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would break shape or window
// invariants.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Physics.Walls && c.Physics.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("wall thickness %g must be positive", c.Physics.WallThickness))
	}
	for i, b := range c.Buttons {
		if _, err := ParseButtonAction(b.Action); err != nil {
			errs = append(errs, fmt.Errorf("button %d: %w", i, err))
		}
		if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
			errs = append(errs, fmt.Errorf("button %d: max %v must lie below and right of min %v", i, b.Max, b.Min))
		}
	}
	for i, s := range c.Scene {
		if _, err := s.Build(); err != nil {
			errs = append(errs, fmt.Errorf("scene shape %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Viewport returns the window's coordinate mapping.
func (c Config) Viewport() Viewport {
	return Viewport{Width: c.Window.Width, Height: c.Window.Height}
}

// Build constructs the shape.
func (s ShapeConfig) Build() (Shape, error) {
	var shape Shape
	switch s.Kind {
	case "circle":
		if s.Radius <= 0 {
			return Shape{}, fmt.Errorf("circle radius %g must be positive", s.Radius)
		}
		c := NewCircle(s.Centre, s.Radius)
		if s.Mass != nil {
			c = NewCircleWithMass(s.Centre, s.Radius, *s.Mass)
		}
		shape = CircleShape(c)
	case "rect":
		if s.Size.X <= 0 || s.Size.Y <= 0 {
			return Shape{}, fmt.Errorf("rect size %v must be positive", s.Size)
		}
		r := FromCentre(s.Centre, s.Size, s.Rotation)
		if s.Mass != nil {
			r = FromCentreWithMass(s.Centre, s.Size, s.Rotation, *s.Mass)
		}
		shape = RectShape(r)
	default:
		return Shape{}, fmt.Errorf("unknown shape kind %q", s.Kind)
	}
	shape.SetVelocity(s.Velocity)
	shape.SetAngularVelocity(s.AngularVelocity)
	return shape, nil
}

// buttons constructs the configured buttons.
func (c Config) buttons() ([]*Button, error) {
	out := make([]*Button, 0, len(c.Buttons))
	for i, bc := range c.Buttons {
		action, err := ParseButtonAction(bc.Action)
		if err != nil {
			return nil, fmt.Errorf("button %d: %w", i, err)
		}
		b := NewButton(action, bc.Min, bc.Max)
		b.Texture = bc.Texture
		out = append(out, b)
	}
	return out, nil
}

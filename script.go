package shapebox

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string   `yaml:"action"`
	Label  string   `yaml:"label,omitempty"`
	X      float64  `yaml:"x,omitempty"`
	Y      float64  `yaml:"y,omitempty"`
	FromX  float64  `yaml:"fromX,omitempty"`
	FromY  float64  `yaml:"fromY,omitempty"`
	ToX    float64  `yaml:"toX,omitempty"`
	ToY    float64  `yaml:"toY,omitempty"`
	Frames int      `yaml:"frames,omitempty"`
	Button string   `yaml:"button,omitempty"`
	Mods   []string `yaml:"mods,omitempty"`
}

type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays pointer input and screenshot requests across frames.
// Attach it with Sandbox.SetScript; Update steps it once per frame before
// reading input.
type ScriptRunner struct {
	// OnScreenshot is called for each screenshot step. The sandbox has no
	// renderer of its own, so a nil callback skips the step.
	OnScreenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// ParseScript decodes a YAML (or JSON) script.
//
//	steps:
//	  - {action: click, x: 40, y: 40}
//	  - {action: drag, fromX: 500, fromY: 500, toX: 600, toY: 450, frames: 10, mods: [ctrl]}
//	  - {action: wait, frames: 60}
//	  - {action: screenshot, label: moving}
func ParseScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	var errs []error
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

// SetScript attaches runner to the sandbox, replacing any previous one.
func (s *Sandbox) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether every step has run and its input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "click", "drag", "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if _, err := parseMouseButton(st.Button); err != nil {
		return err
	}
	_, err := parseMods(st.Mods)
	return err
}

func (r *ScriptRunner) step(s *Sandbox) {
	if r.done {
		return
	}
	// Injected input drains before the next step.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	// Validated by ParseScript.
	button, _ := parseMouseButton(st.Button)
	mods, _ := parseMods(st.Mods)

	switch st.Action {
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	case "press":
		s.InjectPress(st.X, st.Y, button, mods)
	case "move":
		s.InjectMove(st.X, st.Y, button, mods)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectPress(st.X, st.Y, button, mods)
		s.InjectRelease(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, button, mods)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func parseMouseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

func parseMods(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, n := range names {
		switch n {
		case "shift":
			mods |= ModShift
		case "ctrl":
			mods |= ModCtrl
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return mods, nil
}

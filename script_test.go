package shapebox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScriptJSON(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6, "button": "right", "mods": ["ctrl"]}
		]
	}`)

	runner, err := ParseScript(data)
	require.NoError(t, err)
	require.Len(t, runner.steps, 4)
	assert.Equal(t, "initial", runner.steps[0].Label)
	assert.Equal(t, 100.0, runner.steps[1].X)
	assert.Equal(t, 200.0, runner.steps[1].Y)
	assert.Equal(t, 3, runner.steps[2].Frames)
	assert.Equal(t, "right", runner.steps[3].Button)
	assert.Equal(t, []string{"ctrl"}, runner.steps[3].Mods)
	assert.Equal(t, 4.0, runner.steps[3].ToY)
}

func TestParseScriptYAML(t *testing.T) {
	data := []byte(`
steps:
  - {action: press, x: 10, y: 10, mods: [shift]}
  - {action: move, x: 20, y: 10}
  - {action: release, x: 20, y: 10}
`)
	runner, err := ParseScript(data)
	require.NoError(t, err)
	assert.Len(t, runner.steps, 3)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid", `{steps: [`, "parse script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"unknown button", `{"steps": [{"action": "click", "button": "middle"}]}`, `unknown mouse button "middle"`},
		{"unknown modifier", `{"steps": [{"action": "click", "mods": ["alt"]}]}`, `unknown modifier "alt"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - {action: wait, frames: 2}\n"), 0o644))
	runner, err := LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, runner.steps, 1)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "load script")
}

// runScript steps s with an idle live pointer until runner finishes.
func runScript(t *testing.T, s *Sandbox, runner *ScriptRunner, maxFrames int) int {
	t.Helper()
	s.SetScript(runner)
	for i := 1; i <= maxFrames; i++ {
		hover(s, 0, 0)
		if runner.Done() {
			return i
		}
	}
	t.Fatalf("script not done after %d frames", maxFrames)
	return 0
}

func TestScriptDragMovesShape(t *testing.T) {
	s := newTestSandbox(t, circle(0, 0, 50))
	runner, err := ParseScript([]byte(`
steps:
  - {action: drag, fromX: 500, fromY: 500, toX: 600, toY: 500, frames: 5}
  - {action: screenshot, label: moved}
`))
	require.NoError(t, err)

	var shots []string
	runner.OnScreenshot = func(label string) { shots = append(shots, label) }

	runScript(t, s, runner, 50)
	require.Len(t, s.Objects(), 1)
	assertVec(t, "position", s.Objects()[0].Position(), V(100, 0))
	assert.Equal(t, []string{"moved"}, shots)
	assert.Equal(t, Paused(Move()), s.Mode())
}

func TestScriptModifiersAndButtons(t *testing.T) {
	s := newTestSandbox(t, rect(0, 0, 100, 100, 0))
	runner, err := ParseScript([]byte(`
steps:
  - {action: press, x: 540, y: 500, button: right, mods: [ctrl]}
  - {action: move, x: 500, y: 460, button: right, mods: [ctrl]}
  - {action: release, x: 500, y: 460}
`))
	require.NoError(t, err)

	runScript(t, s, runner, 50)
	require.Len(t, s.Objects(), 1)
	assert.InDelta(t, 3.14159, s.Objects()[0].AngularVelocity(), 1e-4)
}

func TestScriptClickButtons(t *testing.T) {
	s := newTestSandbox(t, circle(0, 0, 10))
	runner, err := ParseScript([]byte(`{"steps": [{"action": "click", "x": 40, "y": 40}]}`))
	require.NoError(t, err)

	runScript(t, s, runner, 10)
	assert.Equal(t, Unpaused(), s.Mode())
}

func TestScriptWait(t *testing.T) {
	s := newTestSandbox(t)
	runner, err := ParseScript([]byte(`{"steps": [{"action": "wait", "frames": 5}]}`))
	require.NoError(t, err)

	// Five frames of waiting; completion is noticed on the sixth.
	frames := runScript(t, s, runner, 20)
	assert.Equal(t, 6, frames)
}

func TestScriptScreenshotWithoutCallback(t *testing.T) {
	s := newTestSandbox(t)
	runner, err := ParseScript([]byte(`{"steps": [{"action": "screenshot"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, runScript(t, s, runner, 5))
}

func TestInjectClick(t *testing.T) {
	s := newTestSandbox(t, circle(0, 0, 10))
	s.InjectClick(40, 40)
	require.Equal(t, 2, s.Pending())

	hover(s, 900, 900)
	assert.Equal(t, 1, s.Pending())
	assert.True(t, s.Buttons()[0].Pressed())

	hover(s, 900, 900)
	assert.Zero(t, s.Pending())
	assert.False(t, s.Buttons()[0].Pressed())
	assert.Equal(t, Unpaused(), s.Mode())
}

func TestInjectDragInterpolates(t *testing.T) {
	s := newTestSandbox(t)
	s.InjectDrag(0, 0, 100, 50, 6, MouseButtonRight, ModShift)
	require.Equal(t, 6, s.Pending())

	want := []PointerState{
		{X: 0, Y: 0, Pressed: true, Button: MouseButtonRight, Mods: ModShift},
		{X: 20, Y: 10, Pressed: true, Button: MouseButtonRight, Mods: ModShift},
		{X: 40, Y: 20, Pressed: true, Button: MouseButtonRight, Mods: ModShift},
		{X: 60, Y: 30, Pressed: true, Button: MouseButtonRight, Mods: ModShift},
		{X: 80, Y: 40, Pressed: true, Button: MouseButtonRight, Mods: ModShift},
		{X: 100, Y: 50},
	}
	for i, w := range want {
		got, ok := s.popInjected()
		require.True(t, ok)
		assert.InDelta(t, w.X, got.X, 1e-9, "event %d", i)
		assert.InDelta(t, w.Y, got.Y, 1e-9, "event %d", i)
		assert.Equal(t, w.Pressed, got.Pressed, "event %d", i)
		assert.Equal(t, w.Button, got.Button, "event %d", i)
		assert.Equal(t, w.Mods, got.Mods, "event %d", i)
	}
	_, ok := s.popInjected()
	assert.False(t, ok)
}

func TestInjectDragMinimumFrames(t *testing.T) {
	s := newTestSandbox(t)
	s.InjectDrag(0, 0, 10, 10, 0, MouseButtonLeft, 0)
	assert.Equal(t, 2, s.Pending())
}

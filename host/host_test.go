package host

import (
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/phanxgames/shapebox"
)

func newTestSandbox(t *testing.T) *shapebox.Sandbox {
	t.Helper()
	sb, err := shapebox.New(shapebox.DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	return sb
}

func TestCanvasClearAndPlot(t *testing.T) {
	vp := shapebox.Viewport{Width: 4, Height: 3}
	c := newCanvas(vp)
	require.Len(t, c.pix, 4*4*3)

	c.clear(shapebox.ColorBlack)
	for i := 3; i < len(c.pix); i += 4 {
		assert.Equal(t, byte(0xff), c.pix[i], "alpha at %d", i)
	}

	runs := c.plot([]shapebox.ColoredPoint{
		{P: image.Pt(0, 0), Color: shapebox.ColorWhite},
		{P: image.Pt(1, 0), Color: shapebox.ColorWhite},
		{P: image.Pt(3, 2), Color: shapebox.ColorWall},
		{P: image.Pt(4, 0), Color: shapebox.ColorWall},
		{P: image.Pt(-1, 1), Color: shapebox.ColorWall},
	})
	assert.Equal(t, 2, runs)

	pixel := func(x, y int) []byte {
		i := 4 * (y*vp.Width + x)
		return c.pix[i : i+4]
	}
	assert.Equal(t, []byte{255, 255, 255, 255}, pixel(0, 0))
	assert.Equal(t, []byte{255, 255, 255, 255}, pixel(1, 0))
	assert.Equal(t, []byte{96, 96, 112, 255}, pixel(3, 2))
	assert.Equal(t, []byte{0, 0, 0, 255}, pixel(2, 0))
	assert.Equal(t, []byte{0, 0, 0, 255}, pixel(0, 1))
}

func TestCanvasPlotsSandbox(t *testing.T) {
	sb := newTestSandbox(t)
	c := newCanvas(sb.Viewport())
	c.clear(shapebox.ColorBlack)

	points := sb.Display()
	require.NotEmpty(t, points)
	assert.Equal(t, sb.Stats().ColorRuns, c.plot(points))
}

func TestPressFades(t *testing.T) {
	sb := newTestSandbox(t)
	fades := newPressFades(len(sb.Buttons()))

	sb.PointerDown(40, 40, shapebox.MouseButtonLeft, 0)
	require.True(t, sb.Buttons()[0].Pressed())
	fades.update(sb.Buttons(), 1.0/60)
	assert.Equal(t, float32(1), fades.fades[0].alpha)
	assert.Zero(t, fades.fades[1].alpha)

	sb.PointerUp()
	fades.update(sb.Buttons(), 0.1)
	a := fades.fades[0].alpha
	assert.Greater(t, a, float32(0))
	assert.Less(t, a, float32(1))
	require.NotNil(t, fades.fades[0].tween)

	fades.update(sb.Buttons(), 0.1)
	assert.Less(t, fades.fades[0].alpha, a, "fade keeps decreasing")

	fades.update(sb.Buttons(), 1)
	assert.Zero(t, fades.fades[0].alpha)
	assert.Nil(t, fades.fades[0].tween)
}

func TestPressFadesIgnoresExtraButtons(t *testing.T) {
	sb := newTestSandbox(t)
	fades := newPressFades(1)
	sb.PointerDown(110, 40, shapebox.MouseButtonLeft, 0)
	require.True(t, sb.Buttons()[1].Pressed())
	assert.NotPanics(t, func() { fades.update(sb.Buttons(), 1.0/60) })
	assert.Zero(t, fades.fades[0].alpha)
}

func TestOverlayText(t *testing.T) {
	sb := newTestSandbox(t)
	o := &overlay{fpsLine: "FPS: 60.0  TPS: 60.0"}

	lines := strings.Split(o.text(sb), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "FPS: 60.0  TPS: 60.0", lines[0])
	assert.Equal(t, "paused(move)  objects: 6", lines[1])

	// Drop a circle on top of the default rectangle so unpausing is refused.
	sb.Add(shapebox.CircleShape(shapebox.NewCircle(shapebox.Zero, 10)))
	sb.PointerDown(40, 40, shapebox.MouseButtonLeft, 0)
	sb.PointerUp()
	require.NotEmpty(t, sb.Diagnostic())
	lines = strings.Split(o.text(sb), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, sb.Diagnostic(), lines[2])
}

func TestFileLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"initial", "initial"},
		{"  after drag ", "after_drag"},
		{"a/b\\c:d", "a_b_c_d"},
		{"v1.2-final", "v1.2-final"},
		{"naïve", "na_ve"},
		{"", "screenshot"},
		{"   ", "screenshot"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fileLabel(tt.in), "fileLabel(%q)", tt.in)
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, shapebox.ColorHeld)
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, savePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	r, g, b, _ := decoded.At(1, 1).RGBA()
	assert.Equal(t, []uint32{255, 200, 64}, []uint32{r >> 8, g >> 8, b >> 8})

	err = savePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), img)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadTexturesSkipsUntextured(t *testing.T) {
	sb := newTestSandbox(t)
	textures, err := loadTextures(sb.Buttons())
	require.NoError(t, err)
	require.Len(t, textures, len(sb.Buttons()))
	for _, img := range textures {
		assert.Nil(t, img)
	}

	missing := shapebox.NewButton(shapebox.ActionPause, image.Pt(0, 0), image.Pt(10, 10))
	missing.Texture = filepath.Join(t.TempDir(), "pause.bmp")
	_, err = loadTextures([]*shapebox.Button{missing})
	assert.ErrorContains(t, err, "button pause texture")
}

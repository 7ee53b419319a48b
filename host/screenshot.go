package host

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// screenshots queues labels during Update and writes one PNG per label at
// the end of the next Draw.
type screenshots struct {
	dir   string
	queue []string
}

func (s *screenshots) add(label string) {
	s.queue = append(s.queue, label)
}

func (s *screenshots) flush(screen *ebiten.Image, log *zap.Logger) {
	if len(s.queue) == 0 {
		return
	}
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Error("screenshot mkdir", zap.String("dir", s.dir), zap.Error(err))
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	// The frame is fully opaque, so premultiplied and straight alpha agree.
	screen.ReadPixels(img.Pix)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.queue {
		path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", stamp, fileLabel(label)))
		if err := savePNG(path, img); err != nil {
			log.Error("screenshot failed", zap.String("path", path), zap.Error(err))
			continue
		}
		log.Info("screenshot", zap.String("path", path))
	}
}

// savePNG writes img to path, replacing any existing file.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// fileLabel turns a screenshot label into a file name fragment. ASCII
// letters and digits, '-' and '.' are kept; anything else becomes '_'.
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "screenshot"
	}
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}

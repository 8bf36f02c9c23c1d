package tui

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

//go:embed assets/profilepicture.png
var defaultAvatarPNG []byte

// defaultAvatarSource marks an Avatar that came from the bundled image
const defaultAvatarSource = "default"

// Avatar is a decoded profile picture
type Avatar struct {
	Source   string // file path, or "default" for the bundled picture
	Fallback bool   // true when the contact's own picture could not be used
	img      image.Image
}

// AvatarLoader loads profile pictures, substituting the bundled default
// whenever a file is missing or cannot be decoded. Decoded pictures are
// cached by path; failures are not, so a picture added later is picked up.
// Not safe for concurrent use; the UI loop owns it.
type AvatarLoader struct {
	resolve  func(string) string
	logger   *zap.Logger
	cache    map[string]Avatar
	fallback Avatar
}

// NewAvatarLoader creates a loader. resolve maps a stored path to a file on
// disk and may be nil.
func NewAvatarLoader(resolve func(string) string, logger *zap.Logger) *AvatarLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolve == nil {
		resolve = func(p string) string { return p }
	}

	fallback := Avatar{Source: defaultAvatarSource, Fallback: true}
	if img, _, err := image.Decode(bytes.NewReader(defaultAvatarPNG)); err == nil {
		fallback.img = img
	} else {
		logger.Error("decoding bundled profile picture", zap.Error(err))
	}

	return &AvatarLoader{
		resolve:  resolve,
		logger:   logger,
		cache:    make(map[string]Avatar),
		fallback: fallback,
	}
}

// Load returns the picture at path, or the bundled default
func (l *AvatarLoader) Load(path string) Avatar {
	if path == "" {
		return l.fallback
	}

	resolved := l.resolve(path)
	if a, ok := l.cache[resolved]; ok {
		return a
	}

	img, err := decodeImageFile(resolved)
	if err != nil {
		l.logger.Debug("using default profile picture",
			zap.String("path", resolved),
			zap.Error(err))
		return l.fallback
	}

	a := Avatar{Source: resolved, img: img}
	l.cache[resolved] = a
	return a
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profile picture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding profile picture: %w", err)
	}
	return img, nil
}

// Render draws the picture as a circle size columns wide and size/2 rows
// tall, using upper and lower half blocks so each cell shows two pixels.
func (a Avatar) Render(size int) string {
	if size < 2 {
		size = 2
	}
	rows := size / 2

	if a.img == nil {
		blank := strings.Repeat(" ", size)
		lines := make([]string, rows)
		for i := range lines {
			lines[i] = blank
		}
		return strings.Join(lines, "\n")
	}

	b := a.img.Bounds()
	radius := float64(size) / 2

	// sample returns the hex colour at pixel (x, y) of the size x size grid,
	// or "" if it falls outside the circle or is transparent.
	sample := func(x, y int) string {
		dx := float64(x) + 0.5 - radius
		dy := float64(y) + 0.5 - radius
		if dx*dx+dy*dy > radius*radius {
			return ""
		}
		sx := b.Min.X + x*b.Dx()/size
		sy := b.Min.Y + y*b.Dy()/size
		r, g, bl, alpha := a.img.At(sx, sy).RGBA()
		if alpha < 0x8000 {
			return ""
		}
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8)
	}

	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		for x := 0; x < size; x++ {
			top := sample(x, row*2)
			bottom := sample(x, row*2+1)
			switch {
			case top != "" && bottom != "":
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom)).
					Render("▀"))
			case top != "":
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Render("▀"))
			case bottom != "":
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(bottom)).Render("▄"))
			default:
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// ImageFormat selects the screenshot encoder.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatBMP
)

// ErrUnknownFormat is returned by ParseImageFormat.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseImageFormat accepts "png" (also the empty string) and "bmp".
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	}
	return FormatPNG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension without the dot.
func (f ImageFormat) Ext() string {
	if f == FormatBMP {
		return "bmp"
	}
	return "png"
}

func (f ImageFormat) encode(w io.Writer, img image.Image) error {
	if f == FormatBMP {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// Screenshots writes view captures as image files.
type Screenshots struct {
	dir    string
	prefix string
	format ImageFormat
	now    func() time.Time
}

// NewScreenshots creates a writer saving into dir with the given file prefix.
func NewScreenshots(dir, prefix string, format ImageFormat) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, format: format, now: time.Now}
}

// Filename returns the path a capture of view taken now would get.
func (s *Screenshots) Filename(view string) string {
	name := fmt.Sprintf("%s_%s_%s.%s", s.prefix, view, s.now().Format("2006-01-02_15-04-05.000"), s.format.Ext())
	if s.dir != "" {
		name = filepath.Join(s.dir, name)
	}
	return name
}

// Save encodes GL pixels (RGBA, bottom row first) of a width x height view
// and returns the written path.
func (s *Screenshots) Save(view string, pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("empty view %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := s.Filename(view)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := s.format.encode(f, FlipRows(pixels, width, height)); err != nil {
		return "", fmt.Errorf("encoding %s: %w", s.format.Ext(), err)
	}
	return path, nil
}

// FlipRows converts bottom-up GL pixels into a top-down image.
func FlipRows(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img
}

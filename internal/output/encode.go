package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for an unsupported image format name.
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists the supported output formats. The first is the default.
var Formats = []string{"webp", "png", "tga", "bmp"}

// Normalize lowercases a format name and strips a leading dot.
func Normalize(format string) string {
	return strings.TrimPrefix(strings.ToLower(format), ".")
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch Normalize(format) {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("output: webp encode: %w", err)
		}
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("output: png encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("output: tga encode: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("output: bmp encode: %w", err)
		}
	default:
		return fmt.Errorf("output: %q: %w", format, ErrUnknownFormat)
	}
	return nil
}

// WriteFile encodes img into path, creating parent directories. The format
// is taken from the file extension.
func WriteFile(path string, img image.Image) error {
	format := Normalize(filepath.Ext(path))
	if format == "" {
		return fmt.Errorf("output: %s: %w", path, ErrUnknownFormat)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

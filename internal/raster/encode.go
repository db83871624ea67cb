package raster

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/tiff"
)

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 95

// EncoderFactory builds an encoder for a given JPEG quality. Formats without
// a quality setting ignore it.
type EncoderFactory func(quality int) imgio.Encoder

// Encoders maps a lower-case file extension to its encoder.
var Encoders = map[string]EncoderFactory{
	".png":  func(int) imgio.Encoder { return imgio.PNGEncoder() },
	".jpg":  imgio.JPEGEncoder,
	".jpeg": imgio.JPEGEncoder,
	".bmp":  func(int) imgio.Encoder { return imgio.BMPEncoder() },
	".tif":  func(int) imgio.Encoder { return tiffEncoder },
	".tiff": func(int) imgio.Encoder { return tiffEncoder },
	".gif":  func(int) imgio.Encoder { return gifEncoder },
}

func tiffEncoder(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func gifEncoder(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

// EncoderFor selects the encoder for path by its extension. A missing or
// unknown extension wraps ErrUnsupportedFormat.
func EncoderFor(path string, quality int) (imgio.Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	factory, ok := Encoders[ext]
	if !ok {
		if ext == "" {
			return nil, fmt.Errorf("%w: %s has no file extension", ErrUnsupportedFormat, path)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return factory(quality), nil
}

// Save encodes the image to path in the format implied by its extension.
// The bytes go to a temporary file next to path which is renamed into place
// once fully written, so path is either the complete new image or untouched.
func (p *Image) Save(path string, quality int) error {
	encode, err := EncoderFor(path, quality)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".gaussblur-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := encode(tmpFile, p.Img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	if err := tmpFile.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	return nil
}

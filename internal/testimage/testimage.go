// Package testimage builds synthetic fixtures and measurements shared by the
// package tests.
package testimage

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// Checkerboard returns a w×h black and white board of square×square cells,
// starting with black at the origin.
func Checkerboard(w, h, square int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ((x/square)+(y/square))%2 == 1 {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}

// RGBCheckerboard is Checkerboard stored as opaque RGBA.
func RGBCheckerboard(w, h, square int) *image.RGBA {
	gray := Checkerboard(w, h, square)
	img := image.NewRGBA(gray.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := gray.GrayAt(x, y).Y
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 0xff})
		}
	}
	return img
}

// WritePNG encodes img to path, failing the test on error.
func WritePNG(t testing.TB, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// ReadPNG decodes the PNG at path, failing the test on error.
func ReadPNG(t testing.TB, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

// PNGColorType returns the colour type byte from the IHDR chunk of the PNG
// at path: 0 gray, 2 RGB, 3 palette, 4 gray+alpha, 6 RGBA.
func PNGColorType(t testing.TB, path string) byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	// 8 byte signature, 4 byte length, "IHDR", width, height, bit depth
	const offset = 8 + 4 + 4 + 4 + 4 + 1
	if len(data) <= offset {
		t.Fatalf("%s is too short to be a PNG", path)
	}
	return data[offset]
}

func luma(c color.Color) int {
	r, g, b, _ := c.RGBA()
	return int((299*r + 587*g + 114*b) / 1000 >> 8)
}

// EdgeEnergy sums the squared luma difference between horizontally and
// vertically adjacent pixels.
func EdgeEnergy(img image.Image) float64 {
	b := img.Bounds()
	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := luma(img.At(x, y))
			if x+1 < b.Max.X {
				d := float64(v - luma(img.At(x+1, y)))
				sum += d * d
			}
			if y+1 < b.Max.Y {
				d := float64(v - luma(img.At(x, y+1)))
				sum += d * d
			}
		}
	}
	return sum
}

// MaxAdjacentDelta is the largest absolute luma difference between two
// horizontally or vertically adjacent pixels.
func MaxAdjacentDelta(img image.Image) int {
	b := img.Bounds()
	maxDelta := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := luma(img.At(x, y))
			if x+1 < b.Max.X {
				maxDelta = max(maxDelta, abs(v-luma(img.At(x+1, y))))
			}
			if y+1 < b.Max.Y {
				maxDelta = max(maxDelta, abs(v-luma(img.At(x, y+1))))
			}
		}
	}
	return maxDelta
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

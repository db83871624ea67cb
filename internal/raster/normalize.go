package raster

import (
	"image"
	"image/color"
)

// Normalize converts img to 8-bit RGB held in an *image.RGBA whose alpha is
// always opaque. Colour channels are taken unpremultiplied and the alpha
// channel is dropped rather than composited, so a fully transparent pixel
// keeps whatever colour it stored. Grayscale expands to three equal channels.
func Normalize(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)

	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			si := src.PixOffset(bounds.Min.X, y)
			di := out.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				out.Pix[di+0] = src.Pix[si+0]
				out.Pix[di+1] = src.Pix[si+1]
				out.Pix[di+2] = src.Pix[si+2]
				out.Pix[di+3] = 0xff
				si += 4
				di += 4
			}
		}
		return out
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetRGBA(x, y, dropAlpha(img.At(x, y)))
		}
	}
	return out
}

// dropAlpha keeps the stored colour of a non-premultiplied pixel whatever its
// alpha. Premultiplied colours are unpremultiplied at 16 bits before
// truncating to 8.
func dropAlpha(c color.Color) color.RGBA {
	if n, ok := c.(color.NRGBA); ok {
		return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return color.RGBA{R: uint8(n.R >> 8), G: uint8(n.G >> 8), B: uint8(n.B >> 8), A: 0xff}
}

package raster

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
)

// GaussianKernel builds the horizontal 1-d kernel exp(-x²/2σ²) sampled over
// [-ceil(3σ), ceil(3σ)]. The weights are not normalized; callers use
// Normalized() before convolving.
func GaussianKernel(sigma float64) *convolution.Kernel {
	radius := int(math.Ceil(3 * sigma))
	length := 2*radius + 1

	k := convolution.NewKernel(length, 1)
	for i := 0; i < length; i++ {
		x := float64(i - radius)
		k.Matrix[i] = math.Exp(-(x * x) / (2 * sigma * sigma))
	}
	return k
}

// Gaussian blurs img with standard deviation sigma as two 1-d passes.
// Pixels beyond the border are clamped to the nearest edge pixel.
// Alpha is carried through unchanged. A sigma <= 0 returns a copy.
func Gaussian(img image.Image, sigma float64) *image.RGBA {
	if sigma <= 0 {
		return clone.AsRGBA(img)
	}

	k := GaussianKernel(sigma)
	opts := convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true}

	horizontal := convolution.Convolve(img, k.Normalized(), &opts)
	return convolution.Convolve(horizontal, k.Transposed().Normalized(), &opts)
}

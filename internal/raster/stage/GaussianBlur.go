package stage

import (
	"github.com/rm-hull/gaussblur/internal/raster"
)

type GaussianBlurStage struct {
	Sigma float64
}

// Process applies a Gaussian blur with standard deviation Sigma.
// Higher Sigma values result in a more pronounced blur effect, edges are clamped
func (s *GaussianBlurStage) Process(p *raster.Image) error {
	p.Img = raster.Gaussian(p.Img, s.Sigma)
	return nil
}

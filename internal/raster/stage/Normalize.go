package stage

import (
	"github.com/rm-hull/gaussblur/internal/raster"
)

type NormalizeStage struct{}

// Process converts the image to opaque 8-bit RGB, dropping any alpha channel.
// Transparent pixels are not composited against a background.
func (s *NormalizeStage) Process(p *raster.Image) error {
	p.Img = raster.Normalize(p.Img)
	p.Bounds = p.Img.Bounds()
	return nil
}

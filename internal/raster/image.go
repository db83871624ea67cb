package raster

import (
	"image"

	"github.com/anthonynsimon/bild/imgio"

	// decoders selected by file content
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type Image struct {
	Img    image.Image
	Bounds image.Rectangle
}

type PipelineStage interface {
	Process(img *Image) error
}

// Open decodes the image at path. The format is detected from the file
// header, never from the extension. Any failure is a *DecodeError.
func Open(path string) (*Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &Image{
		Img:    img,
		Bounds: img.Bounds(),
	}, nil
}

func (p *Image) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(p); err != nil {
			return err
		}
	}
	return nil
}

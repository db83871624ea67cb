package blur

import (
	"fmt"
	"log"

	"github.com/rm-hull/gaussblur/internal/raster"
	"github.com/rm-hull/gaussblur/internal/raster/stage"
)

// DefaultSigma is the blur strength used when none is configured.
const DefaultSigma = 6.0

// WriteErrorPolicy decides what happens when the blurred image cannot be
// written to its destination.
type WriteErrorPolicy int

const (
	// DiscardWriteErrors logs the failure and still reports success. This is
	// the historical behaviour of gaussian_blur.
	DiscardWriteErrors WriteErrorPolicy = iota
	// ReportWriteErrors returns the failure to the caller.
	ReportWriteErrors
)

func (p WriteErrorPolicy) String() string {
	switch p {
	case DiscardWriteErrors:
		return "discard"
	case ReportWriteErrors:
		return "report"
	default:
		return fmt.Sprintf("WriteErrorPolicy(%d)", int(p))
	}
}

type Options struct {
	// Sigma is the standard deviation of the Gaussian kernel. Zero selects
	// DefaultSigma.
	Sigma       float64
	JPEGQuality int
	WritePolicy WriteErrorPolicy
}

func DefaultOptions() Options {
	return Options{
		Sigma:       DefaultSigma,
		JPEGQuality: raster.DefaultJPEGQuality,
		WritePolicy: DiscardWriteErrors,
	}
}

// Result describes a completed blur. WriteErr is set when the destination
// could not be written, whatever the policy.
type Result struct {
	Path     string
	WriteErr error
}

func (r *Result) Written() bool {
	return r.WriteErr == nil
}

type Blurrer struct {
	opts Options
}

func New(opts Options) *Blurrer {
	if opts.Sigma == 0 {
		opts.Sigma = DefaultSigma
	}
	if opts.JPEGQuality == 0 {
		opts.JPEGQuality = raster.DefaultJPEGQuality
	}
	return &Blurrer{opts: opts}
}

func (b *Blurrer) Options() Options {
	return b.opts
}

// Blur decodes source, normalizes it to RGB8, blurs it and writes it to
// destination. A decode failure is returned as a *raster.DecodeError and
// nothing is written. Write failures are recorded on the result and, unless
// the policy is ReportWriteErrors, not returned.
func (b *Blurrer) Blur(source, destination string) (*Result, error) {
	img, err := raster.Open(source)
	if err != nil {
		return nil, err
	}

	pipeline := []raster.PipelineStage{
		&stage.NormalizeStage{},
		&stage.GaussianBlurStage{Sigma: b.opts.Sigma},
	}
	if err := img.Pipeline(pipeline...); err != nil {
		return nil, fmt.Errorf("failed to process image pipeline: %w", err)
	}

	result := &Result{Path: destination}
	if err := img.Save(destination, b.opts.JPEGQuality); err != nil {
		result.WriteErr = fmt.Errorf("failed to write %s: %w", destination, err)
		if b.opts.WritePolicy == ReportWriteErrors {
			return result, result.WriteErr
		}
		log.Printf("WARNING: %v (discarded)", result.WriteErr)
	}
	return result, nil
}

// GaussianBlur blurs source with DefaultSigma into destination and returns
// destination. Only a decode failure produces an error; a failed write is
// logged and otherwise ignored.
func GaussianBlur(source, destination string) (string, error) {
	result, err := New(DefaultOptions()).Blur(source, destination)
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

// MustGaussianBlur is like GaussianBlur but panics when source cannot be
// decoded.
func MustGaussianBlur(source, destination string) string {
	path, err := GaussianBlur(source, destination)
	if err != nil {
		panic(err)
	}
	return path
}

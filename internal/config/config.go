package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rm-hull/gaussblur/internal/blur"
)

const (
	EnvSigma       = "GAUSSBLUR_SIGMA"
	EnvJPEGQuality = "GAUSSBLUR_JPEG_QUALITY"
	EnvStrict      = "GAUSSBLUR_STRICT"
)

// Load reads blur options from the environment, falling back to
// blur.DefaultOptions for anything unset. The .env file, if any, is expected
// to have been loaded by the caller.
func Load() (blur.Options, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (blur.Options, error) {
	opts := blur.DefaultOptions()

	if value, ok := lookup(EnvSigma); ok && value != "" {
		sigma, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", EnvSigma, value, err)
		}
		if err := ValidateSigma(sigma); err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", EnvSigma, value, err)
		}
		opts.Sigma = sigma
	}

	if value, ok := lookup(EnvJPEGQuality); ok && value != "" {
		quality, err := strconv.Atoi(value)
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", EnvJPEGQuality, value, err)
		}
		if err := ValidateJPEGQuality(quality); err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", EnvJPEGQuality, value, err)
		}
		opts.JPEGQuality = quality
	}

	if value, ok := lookup(EnvStrict); ok && value != "" {
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", EnvStrict, value, err)
		}
		if strict {
			opts.WritePolicy = blur.ReportWriteErrors
		}
	}

	return opts, nil
}

// ValidateSigma rejects negative blur strengths. Zero is allowed and selects
// the default.
func ValidateSigma(sigma float64) error {
	if sigma < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func ValidateJPEGQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return errors.New("must be between 1 and 100")
	}
	return nil
}

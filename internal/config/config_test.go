package config

import (
	"testing"

	"github.com/rm-hull/gaussblur/internal/blur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvSigma, "")
		t.Setenv(EnvJPEGQuality, "")
		t.Setenv(EnvStrict, "")

		opts, err := Load()
		require.NoError(t, err)
		assert.Equal(t, blur.DefaultOptions(), opts)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv(EnvSigma, "2.5")
		t.Setenv(EnvJPEGQuality, "80")
		t.Setenv(EnvStrict, "true")

		opts, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 2.5, opts.Sigma)
		assert.Equal(t, 80, opts.JPEGQuality)
		assert.Equal(t, blur.ReportWriteErrors, opts.WritePolicy)
	})
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		error string
	}{
		{"sigma not a number", map[string]string{EnvSigma: "lots"}, `invalid GAUSSBLUR_SIGMA "lots"`},
		{"negative sigma", map[string]string{EnvSigma: "-1"}, "must not be negative"},
		{"quality not a number", map[string]string{EnvJPEGQuality: "high"}, `invalid GAUSSBLUR_JPEG_QUALITY "high"`},
		{"quality out of range", map[string]string{EnvJPEGQuality: "101"}, "must be between 1 and 100"},
		{"strict not a bool", map[string]string{EnvStrict: "maybe"}, `invalid GAUSSBLUR_STRICT "maybe"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				value, ok := tt.env[key]
				return value, ok
			}
			_, err := load(lookup)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.error)
		})
	}
}

func TestValidateSigma(t *testing.T) {
	assert.NoError(t, ValidateSigma(0))
	assert.NoError(t, ValidateSigma(6))
	assert.EqualError(t, ValidateSigma(-0.5), "must not be negative")
}

func TestValidateJPEGQuality(t *testing.T) {
	assert.NoError(t, ValidateJPEGQuality(1))
	assert.NoError(t, ValidateJPEGQuality(100))
	assert.Error(t, ValidateJPEGQuality(0))
	assert.Error(t, ValidateJPEGQuality(101))
}

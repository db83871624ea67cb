package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rm-hull/gaussblur/internal/raster"
	"github.com/rm-hull/gaussblur/internal/testimage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fatalCalled string

func captureFatal(t *testing.T) {
	t.Helper()
	original := fatalf
	fatalf = func(format string, args ...any) {
		panic(fatalCalled(fmt.Sprintf(format, args...)))
	}
	t.Cleanup(func() { fatalf = original })
}

func TestBlurPaths(t *testing.T) {
	captureFatal(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "in.png")
	testimage.WritePNG(t, source, testimage.Checkerboard(30, 30, 3))

	t.Run("returns the destination", func(t *testing.T) {
		destination := filepath.Join(dir, "out.png")
		assert.Equal(t, destination, blurPaths(source, destination))
		assert.FileExists(t, destination)
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		destination := filepath.Join(dir, "missing", "out.png")
		assert.Equal(t, destination, blurPaths(source, destination))
		assert.NoFileExists(t, destination)
	})

	t.Run("decode failure is fatal", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected fatalf to be called")
			msg, ok := r.(fatalCalled)
			require.True(t, ok)
			assert.Contains(t, string(msg), raster.LoadFailureMessage)
		}()
		blurPaths(filepath.Join(dir, "missing.png"), filepath.Join(dir, "never.png"))
	})
}

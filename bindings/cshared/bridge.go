package main

import (
	"log"
	"sync"

	"github.com/rm-hull/gaussblur/internal/blur"
	"github.com/rm-hull/gaussblur/internal/config"
)

var (
	fatalf = log.Fatalf

	blurrer     *blur.Blurrer
	blurrerOnce sync.Once
)

// sharedBlurrer is configured from the host process environment on first use.
func sharedBlurrer() *blur.Blurrer {
	blurrerOnce.Do(func() {
		opts, err := config.Load()
		if err != nil {
			log.Printf("WARNING: %v, using defaults", err)
			opts = blur.DefaultOptions()
		}
		blurrer = blur.New(opts)
	})
	return blurrer
}

// blurPaths runs the blur for the exported entry point. It never returns an
// error: decode failures end the process via fatalf, as do write failures
// under the strict write policy. Otherwise failed writes are discarded.
func blurPaths(source, destination string) string {
	result, err := sharedBlurrer().Blur(source, destination)
	if err != nil {
		fatalf("%v", err)
		return ""
	}
	return result.Path
}

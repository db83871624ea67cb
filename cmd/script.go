package cmd

import (
	"log"

	"github.com/rm-hull/gaussblur/internal/blur"
	"github.com/rm-hull/gaussblur/internal/script"
)

func Script(path string, opts blur.Options) {
	if err := script.RunFile(path, opts); err != nil {
		log.Fatal(err)
	}
}

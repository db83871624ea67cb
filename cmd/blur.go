package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/rm-hull/gaussblur/internal/blur"
	"github.com/rm-hull/gaussblur/internal/raster"
)

// Blur writes a blurred copy of source to destination and prints the
// destination path. An undecodable source is fatal. A failed write is only
// fatal when opts asks for write errors to be reported.
func Blur(out io.Writer, source, destination string, opts blur.Options) {
	path, err := runBlur(source, destination, opts)
	if errors.Is(err, raster.ErrDecode) {
		log.Fatalf("%s: %v", raster.LoadFailureMessage, errors.Unwrap(err))
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(out, path)
}

func runBlur(source, destination string, opts blur.Options) (string, error) {
	result, err := blur.New(opts).Blur(source, destination)
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

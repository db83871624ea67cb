package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rm-hull/gaussblur/internal"
	"github.com/rm-hull/gaussblur/internal/blur"
)

func Version(out io.Writer, verbose bool, opts blur.Options) {
	internal.ShowVersion(out)
	if !verbose {
		return
	}
	internal.UserInfo(out)
	internal.EnvironmentVars(out, os.Environ(), "GAUSSBLUR_")

	fmt.Fprintln(out, "Effective options")
	fmt.Fprintf(out, "  sigma: %g\n", opts.Sigma)
	fmt.Fprintf(out, "  jpeg quality: %d\n", opts.JPEGQuality)
	fmt.Fprintf(out, "  write errors: %s\n", opts.WritePolicy)
}

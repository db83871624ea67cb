package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rm-hull/gaussblur/cmd"
	"github.com/rm-hull/gaussblur/internal/blur"
	"github.com/rm-hull/gaussblur/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var rootPath string
	var port int
	var debug bool
	var verbose bool
	var sigma float64
	var quality int
	var strict bool

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	opts, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	rootCmd := &cobra.Command{
		Use:  "gaussblur",
		Long: `Gaussian blur for image files`,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			if flags.Changed("sigma") {
				if err := config.ValidateSigma(sigma); err != nil {
					return fmt.Errorf("invalid --sigma %g: %w", sigma, err)
				}
				opts.Sigma = sigma
			}
			if flags.Changed("quality") {
				if err := config.ValidateJPEGQuality(quality); err != nil {
					return fmt.Errorf("invalid --quality %d: %w", quality, err)
				}
				opts.JPEGQuality = quality
			}
			if flags.Changed("strict") {
				opts.WritePolicy = blur.DiscardWriteErrors
				if strict {
					opts.WritePolicy = blur.ReportWriteErrors
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Float64Var(&sigma, "sigma", blur.DefaultSigma, "Blur strength (standard deviation of the Gaussian kernel)")
	rootCmd.PersistentFlags().IntVar(&quality, "quality", 0, "JPEG output quality, 1-100")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail when the blurred image cannot be written")

	blurCmd := &cobra.Command{
		Use:   "blur <source> <destination>",
		Short: "Blur an image file and print the destination path",
		Args:  cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			cmd.Blur(os.Stdout, args[0], args[1], opts)
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script <file.lua>",
		Short: "Run a Lua script with the gaussblur module available",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			cmd.Script(args[0], opts)
		},
	}

	apiServerCmd := &cobra.Command{
		Use:   "api-server [--root <path>] [--port <port>] [--debug]",
		Short: "Start HTTP API server",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.ApiServer(rootPath, port, debug, opts)
		},
	}

	apiServerCmd.Flags().StringVar(&rootPath, "root", "./data", "Path to root folder")
	apiServerCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARNING: do not enable in production")

	versionCmd := &cobra.Command{
		Use:   "version [--verbose]",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.Version(os.Stdout, verbose, opts)
		},
	}

	versionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also show user, environment and effective options")

	rootCmd.AddCommand(blurCmd, scriptCmd, apiServerCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

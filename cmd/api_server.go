package cmd

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rm-hull/gaussblur/internal/blur"
	"github.com/rm-hull/gaussblur/internal/raster"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

func ApiServer(rootDir string, port int, debug bool, opts blur.Options) {

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	err := healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{})
	if err != nil {
		log.Fatalf("failed to initialize healthcheck: %v", err)
	}

	registerRoutes(r, rootDir, blur.New(opts))

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d (root=%s, sigma=%.2f)...", port, rootDir, opts.Sigma)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP API Server failed to start on port %d: %v", port, err)
	}
}

type blurRequest struct {
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

type blurResponse struct {
	Path    string `json:"path"`
	Written bool   `json:"written"`
	Error   string `json:"error,omitempty"`
}

func registerRoutes(r *gin.Engine, rootDir string, b *blur.Blurrer) {
	r.Static("/v1/images", rootDir)
	r.POST("/v1/blur", blurHandler(rootDir, b))
}

// blurHandler runs a blur between two paths relative to rootDir. A source
// that cannot be decoded is a 422 rather than a fatal error; a failed write
// still answers 200 but with written=false.
func blurHandler(rootDir string, b *blur.Blurrer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req blurRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		source, err := resolve(rootDir, req.Source)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		destination, err := resolve(rootDir, req.Destination)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := b.Blur(source, destination)
		if errors.Is(err, raster.ErrDecode) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": raster.LoadFailureMessage})
			return
		}
		if result == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		resp := blurResponse{Path: req.Destination, Written: result.Written()}
		if result.WriteErr != nil {
			log.Printf("blur %s -> %s: %v", req.Source, req.Destination, result.WriteErr)
			resp.Error = "failed to write destination"
		}
		c.JSON(http.StatusOK, resp)
	}
}

func resolve(rootDir, name string) (string, error) {
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("path %q is outside the root folder", name)
	}
	return filepath.Join(rootDir, rel), nil
}

// Command ratiocrop centre-crops images to the configured aspect ratio
// without opening the editor.
//
//	ratiocrop [flags] <file|dir> [outdir]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/soocke/ratio-crop-go/config"
	"github.com/soocke/ratio-crop-go/domain/cropper"
	"github.com/soocke/ratio-crop-go/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ratiocrop", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", config.DefaultPath(), "path to the JSON config file")
	quality := fs.Int("quality", 0, "JPEG quality 1-100 (default from config)")
	level := fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ratiocrop [flags] <file|dir> [outdir]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 2
	}

	cfg, cfgErr := config.Load(*cfgPath)
	if *quality != 0 {
		cfg.JPEGQuality = *quality
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	_ = cfg.Validate()
	logger := logging.WithComponent(logging.NewLogger(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile, Out: stderr}), "batch")
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	inputs, err := cropper.ResolveInputs(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "ratiocrop: %v\n", err)
		return 1
	}
	outDir := cfg.BatchOutputDir
	if fs.NArg() == 2 {
		outDir = fs.Arg(1)
	}

	svc := cropper.NewService(cfg.CropperOptions(), logger)
	rep := cropper.CenterCropAll(ctx, svc, inputs, outDir, logger)
	for _, out := range rep.Done {
		fmt.Fprintln(stdout, out)
	}
	fmt.Fprintf(stderr, "cropped %d of %d image(s) to %d:%d\n", len(rep.Done), len(inputs), cfg.RatioW, cfg.RatioH)
	if err := rep.Err(); err != nil {
		fmt.Fprintf(stderr, "ratiocrop: %v\n", err)
		return 1
	}
	if rep.Skipped > 0 {
		return 1
	}
	return 0
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	rtdebug "runtime/debug"

	"github.com/soocke/ratio-crop-go/app"
	"github.com/soocke/ratio-crop-go/config"
	"github.com/soocke/ratio-crop-go/logging"
	"github.com/soocke/ratio-crop-go/platform"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfgPath := flag.String("config", config.DefaultPath(), "path to the JSON config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] [image]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)

	// Set up logger
	logger := logging.NewLogger(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	slog.SetDefault(logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic", "panic", fmt.Sprint(r), "stack", string(rtdebug.Stack()))
			code = 2
		}
	}()

	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}
	if err := platform.EnableDPIAwareness(); err != nil {
		logger.Warn("dpi awareness not enabled", "error", err)
	}

	c := app.BuildContainer(cfg, *cfgPath, logger)
	application := app.NewApp("Smart Cropper", 520, 420, c)
	application.Start(flag.Arg(0))
	return 0
}

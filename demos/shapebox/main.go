// shapebox opens an interactive 2D rigid-body sandbox. The simulation starts
// paused; use the buttons in the top-left corner to unpause, return to move
// mode, or spawn shapes.
//
//	left drag          move a shape
//	ctrl + left drag   set velocity
//	shift + left drag  resize
//	right drag         rotate
//	ctrl + right drag  set angular velocity
//	shift + right      delete
//	F3                 toggle overlay
//	F12                screenshot
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phanxgames/shapebox"
	"github.com/phanxgames/shapebox/host"
)

type options struct {
	configPath string
	scriptPath string
	exitAfter  bool
	debug      bool
	logLevel   string
	shotDir    string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "YAML config file (defaults built in)")
	flag.StringVar(&o.scriptPath, "script", "", "YAML or JSON input script to replay")
	flag.BoolVar(&o.exitAfter, "exit-after-script", false, "quit once the script finishes")
	flag.BoolVar(&o.debug, "debug", false, "log per-frame timing stats")
	flag.StringVar(&o.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	flag.StringVar(&o.shotDir, "screenshots", "screenshots", "screenshot output directory")
	flag.Parse()
	return o
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "shapebox:", err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := shapebox.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.debug {
		cfg.Debug = true
		cfg.Log.Level = "debug"
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger, err := shapebox.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	session := uuid.New()
	logger = logger.With(zap.Stringer("session", session))
	source := o.configPath
	if source == "" {
		source = "defaults"
	}
	logger.Info("starting",
		zap.String("config", source),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("shapes", len(cfg.Scene)),
	)

	sb, err := shapebox.New(cfg, logger)
	if err != nil {
		logger.Error("build sandbox", zap.Error(err))
		return err
	}
	game, err := host.New(sb, logger)
	if err != nil {
		logger.Error("build window", zap.Error(err))
		return err
	}
	game.ScreenshotDir = o.shotDir

	if o.scriptPath != "" {
		runner, err := shapebox.LoadScript(o.scriptPath)
		if err != nil {
			logger.Error("load script", zap.Error(err))
			return err
		}
		game.SetScript(runner, o.exitAfter)
		logger.Info("replaying script", zap.String("path", o.scriptPath))
	}

	if err := host.Run(game, cfg.Window.Title); err != nil {
		logger.Error("run", zap.Error(err))
		return err
	}
	return nil
}

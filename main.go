package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/paperchase/config"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (AABB overlay, event log)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	configPath := flag.String("config", "", "path to game.yaml (default: ./configs/game.yaml, then embedded)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "paperchase",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", *logLevel, "err", err)
	}
	if *debug && level > log.DebugLevel {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	cfg, path, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if path == "" {
		logger.Info("using embedded config")
	} else {
		logger.Info("loaded config", "path", path)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("paperchase")
	ebiten.SetTPS(cfg.Physics.TickRate)

	game, err := NewGame(cfg, path, *debug, logger)
	if err != nil {
		logger.Fatal("failed to start", "err", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != errQuit {
		logger.Fatal("game exited", "err", err)
	}
}

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"hazardrun/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (defaults are used for missing keys)")
	seed := flag.Uint64("seed", 0, "Spawn RNG seed (0 picks a random seed)")
	classic := flag.Bool("classic", false, "Remove sliced hazards immediately, without the dying grace period")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	cpuProfile := flag.String("cpuprofile", "", "Write a CPU profile and trace to this base path")
	flag.Parse()

	var level slog.LevelVar
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid log level", "level", *logLevel, "err", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level}))
	slog.SetDefault(logger)

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			logger.Error("failed to load config", "err", err)
			os.Exit(2)
		}
		config = loaded
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *classic {
		config.InstantRemoval = true
	}
	if err := config.Validate(); err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(2)
	}

	var profiler *game.Profiler
	if *cpuProfile != "" {
		p, err := game.StartProfiler(*cpuProfile, logger)
		if err != nil {
			logger.Error("failed to start profiler", "err", err)
			os.Exit(1)
		}
		profiler = p
	}

	g := game.NewGame(config, logger)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hazard Run")
	ebiten.SetWindowResizable(true)

	code := run(g, logger)
	if profiler != nil {
		if err := profiler.Stop(); err != nil {
			logger.Error("failed to save profile", "err", err)
		}
	}
	os.Exit(code)
}

// run blocks on the game loop and maps its result to an exit status
func run(g *game.Game, logger *slog.Logger) int {
	err := ebiten.RunGame(g)

	var fatal *game.FatalCollisionError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &fatal):
		logger.Error("game over", "err", fatal, "hazard", fatal.HazardID, "frame", fatal.Frame)
		return 1
	default:
		logger.Error("game loop failed", "err", err)
		return 1
	}
}

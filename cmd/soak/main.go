package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hazardrun/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	seed := flag.Uint64("seed", 1, "Seed for both the spawner and the autopilot")
	frames := flag.Uint64("frames", 36000, "Stop after this many frames if the player survives")
	dt := flag.Float64("dt", 1.0/60.0, "Fixed frame time in seconds")
	jumpChance := flag.Float64("jump", 0.02, "Per-frame jump probability")
	classic := flag.Bool("classic", false, "Remove sliced hazards immediately")
	verbose := flag.Bool("v", false, "Log every spawn, slice and removal")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			logger.Error("failed to load config", "err", err)
			os.Exit(2)
		}
		config = loaded
	}
	config.Seed = *seed
	config.InstantRemoval = config.InstantRemoval || *classic

	stats, err := game.Soak(config, game.SoakOptions{
		Frames:     *frames,
		FrameTime:  *dt,
		JumpChance: *jumpChance,
		Logger:     logger,
	})

	fmt.Printf("frames=%d elapsed=%.2fs spawned=%d sliced=%d despawned=%d\n",
		stats.Frames, stats.Elapsed, stats.Spawned, stats.Sliced, stats.Despawned)

	switch {
	case err == nil:
		logger.Info("player survived", "stats", stats)
	case errors.Is(err, game.ErrFatalCollision):
		logger.Info("player died", "err", err)
		os.Exit(1)
	default:
		logger.Error("soak failed", "err", err)
		os.Exit(2)
	}
}

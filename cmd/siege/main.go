// Command siege is the terminal host for the tower-siege simulation.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tower-siege/audio"
	"github.com/lixenwraith/tower-siege/config"
	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/logging"
	"github.com/lixenwraith/tower-siege/status"
	"github.com/lixenwraith/tower-siege/store"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file (default: ./siege.toml if present)")
	seedFlag    = flag.Uint64("seed", 0, "Simulation seed, 0 uses config or clock")
	speedFlag   = flag.Float64("speed", 0, "Initial game speed (0.5, 1, 1.5, 2, 3, 4)")
	logDirFlag  = flag.String("log-dir", "", "Write logs to this directory")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound")
	noStoreFlag = flag.Bool("no-store", false, "Do not persist results")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Sim.Seed = *seedFlag
	}
	if *speedFlag != 0 {
		cfg.Sim.Speed = *speedFlag
	}
	if *logDirFlag != "" {
		cfg.Log.Dir = *logDirFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}
	if *noStoreFlag {
		cfg.Store.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	// Console output would corrupt the terminal screen
	logger, logCloser, err := logging.Setup(logging.Options{Level: cfg.Log.Level, Dir: cfg.Log.Dir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	var results *store.Store
	if cfg.Store.Enabled {
		results, err = store.Open(cfg.Store.Path, logger)
		if err != nil {
			logger.Error().Err(err).Msg("result store unavailable, continuing without it")
			results = nil
		} else {
			defer results.Close()
		}
	}

	player := audio.NewPlayer(audio.Options{
		Enabled:    cfg.Audio.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
	}, logger)
	if err := player.Init(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn().Err(err).Msg("audio initialization failed")
	}
	defer player.Close()

	telemetry := status.NewRegistry()
	opts := append(cfg.EngineOptions(), engine.WithLogger(logger), engine.WithStatus(telemetry))
	e := engine.New(cfg.EngineConfig(), opts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSIEGE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	game := NewGame(screen, e, player, results, cfg.Host.FPS, logger)
	game.run()
	screen.Fini()

	ev := logger.Debug()
	for _, m := range telemetry.Snapshot() {
		ev = ev.Str(m.Key, m.Value)
	}
	ev.Msg("session telemetry")

	r := e.Result()
	fmt.Printf("Reached wave %d, %d kills, %d earned, %d towers built\n",
		r.Wave, r.EnemiesKilled, r.MoneyEarned, r.TowersBuilt)
}

// Command siege-sim plays scripted headless games for balance checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/lixenwraith/tower-siege/config"
	"github.com/lixenwraith/tower-siege/logging"
	"github.com/lixenwraith/tower-siege/store"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	seedFlag    = flag.Uint64("seed", 1, "Seed of the first run, later runs increment it")
	runsFlag    = flag.Int("runs", 4, "Number of games to play")
	framesFlag  = flag.Int("frames", 60*60*30, "Host frames per game")
	speedFlag   = flag.Float64("speed", 4, "Game speed multiplier")
	workersFlag = flag.Int("workers", runtime.NumCPU(), "Concurrent games")
	storeFlag   = flag.String("store", "", "Persist results to this sqlite file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := logging.Setup(logging.Options{
		Level:   cfg.Log.Level,
		Dir:     cfg.Log.Dir,
		Console: true,
		Name:    "siege-sim",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	runs := max(*runsFlag, 1)
	outcomes := make([]Outcome, runs)
	jobs := make(chan int)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < max(*workersFlag, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seed := *seedFlag + uint64(i)
				outcomes[i] = Run(Options{
					Seed:     seed,
					Frames:   *framesFlag,
					Speed:    *speedFlag,
					MaxSteps: cfg.Sim.MaxSteps,
					Plan:     DefaultPlan(),
				}, logger.With().Uint64("seed", seed).Logger())
			}
		}()
	}
	for i := 0; i < runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	logger.Info().Int("runs", runs).Dur("elapsed", time.Since(start)).Msg("simulation finished")

	fmt.Printf("%-8s %-6s %-8s %-8s %-7s %-6s %s\n", "seed", "wave", "kills", "earned", "towers", "lives", "buffs")
	for _, o := range outcomes {
		fmt.Printf("%-8d %-6d %-8d %-8d %-7d %-6d %v\n", o.Seed, o.Result.Wave, o.Result.EnemiesKilled,
			o.Result.MoneyEarned, o.Result.TowersBuilt, o.Lives, o.Buffs)
	}

	if *storeFlag == "" {
		return
	}
	results, err := store.Open(*storeFlag, logger)
	if err != nil {
		logger.Error().Err(err).Msg("result store unavailable")
		os.Exit(1)
	}
	defer results.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, o := range outcomes {
		if _, err := results.Save(ctx, o.Result); err != nil {
			logger.Error().Err(err).Uint64("seed", o.Seed).Msg("failed to save result")
		}
	}
}

// Command simulate plays skyraid headless with autopilot ships and reports the results.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"skyraid/game"
	"skyraid/leaderboard"
	"skyraid/observability"
	"skyraid/profiler"
	"skyraid/script"
)

// logOutput keeps logs off stdout, which carries only the summary
var logOutput io.Writer = os.Stderr

func newLogger(component string) observability.Logger {
	return observability.NewLoggerTo(logOutput, component, slog.LevelInfo)
}

type summary struct {
	RunID       string        `json:"runId"`
	Finished    bool          `json:"finished"`
	Ticks       int           `json:"ticks"`
	Events      int           `json:"events"`
	Score       int           `json:"score"`
	Kills       int           `json:"kills"`
	MaxCombo    int           `json:"maxCombo"`
	Level       int           `json:"level"`
	Leaderboard []int         `json:"leaderboard,omitempty"`
	Elapsed     time.Duration `json:"elapsedNs"`
}

// simulate drives a started controller with autopilot intents for at most ticks steps
func simulate(ctx context.Context, ctrl *game.Controller, ticks int, prof *profiler.Profiler) summary {
	started := time.Now()
	events := 0
	for i := 0; i < ticks && ctrl.State() == game.StatePlaying; i++ {
		intents := autopilot(ctrl.Run().Snapshot())
		t0 := time.Now()
		events += len(ctrl.Update(ctx, intents))
		if prof != nil {
			prof.Observe(time.Since(t0))
		}
	}
	if prof != nil {
		prof.Wait()
	}

	run := ctrl.Run()
	return summary{
		RunID:       run.ID,
		Finished:    ctrl.State() == game.StateGameOver,
		Ticks:       run.Ticks(),
		Events:      events,
		Score:       run.Score(),
		Kills:       run.Kills(),
		MaxCombo:    run.MaxCombo(),
		Level:       run.Level(),
		Leaderboard: ctrl.Results().Leaderboard,
		Elapsed:     time.Since(started),
	}
}

func writeSummary(w io.Writer, s summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func main() {
	configPath := flag.String("config", os.Getenv("SKYRAID_CONFIG"), "YAML config overlaying the defaults (or set SKYRAID_CONFIG)")
	scoresPath := flag.String("scores", "", "leaderboard file to submit the final score to")
	patternFile := flag.String("pattern-file", "", "JavaScript boss pattern script")
	profileDir := flag.String("profile-dir", "", "capture CPU profiles and traces of slow ticks here")
	players := flag.Int("players", 1, "number of autopilot players (1 or 2)")
	ticks := flag.Int("ticks", 60*60*5, "maximum ticks to simulate")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	logger := newLogger("simulate")

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	runOpts := []game.RunOption{game.WithSeed(*seed)}
	if *patternFile != "" {
		ps, err := script.LoadFile(*patternFile, script.WithLogger(newLogger("script")))
		if err != nil {
			log.Fatalf("Failed to load pattern script: %v", err)
		}
		runOpts = append(runOpts, game.WithPatterns(ps))
	}

	var board game.Leaderboard
	if *scoresPath != "" {
		board = leaderboard.NewFileStore(*scoresPath, cfg.LeaderboardSize)
	}

	var prof *profiler.Profiler
	if *profileDir != "" {
		prof, err = profiler.New(*profileDir, profiler.WithLogger(newLogger("profiler")))
		if err != nil {
			log.Fatalf("Failed to create profiler: %v", err)
		}
	}

	ctrl := game.NewController(cfg, board, newLogger("game"), runOpts...)
	if err := ctrl.Start(*players); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	s := simulate(context.Background(), ctrl, *ticks, prof)
	logger.Infof("simulated %d ticks in %v", s.Ticks, s.Elapsed)

	if err := writeSummary(os.Stdout, s); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}
}

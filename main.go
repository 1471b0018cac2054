package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"skyraid/game"
	"skyraid/leaderboard"
	"skyraid/observability"
	"skyraid/profiler"
	"skyraid/screen"
	"skyraid/script"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	configPath := flag.String("config", envOr("SKYRAID_CONFIG", ""), "YAML config overlaying the defaults (or set SKYRAID_CONFIG)")
	scoresPath := flag.String("scores", envOr("SKYRAID_SCORES", "scores.txt"), "local leaderboard file (or set SKYRAID_SCORES)")
	convexURL := flag.String("convex-url", os.Getenv("CONVEX_URL"), "Convex deployment URL for the shared leaderboard (or set CONVEX_URL)")
	patternFile := flag.String("pattern-file", "", "JavaScript boss pattern script")
	patternName := flag.String("pattern-name", "", "boss pattern script to fetch from Convex, or a bundled one without -convex-url")
	profileDir := flag.String("profile-dir", os.Getenv("SKYRAID_PROFILE_DIR"), "capture CPU profiles and traces of slow ticks here")
	scale := flag.Float64("scale", 1, "window scale")
	mute := flag.Bool("mute", false, "start with sound off")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	logger := observability.NewLogger("skyraid")

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var board leaderboard.Submitter = leaderboard.NewFileStore(*scoresPath, cfg.LeaderboardSize)
	var convex *leaderboard.ConvexClient
	if *convexURL != "" {
		convex = leaderboard.NewConvexClient(*convexURL)
		board = leaderboard.NewTiered(
			leaderboard.NewConvexStore(convex, cfg.LeaderboardSize),
			board,
			observability.NewLogger("leaderboard"),
		)
		logger.Infof("using Convex leaderboard at %s", *convexURL)
	}

	var runOpts []game.RunOption
	if *seed != 0 {
		runOpts = append(runOpts, game.WithSeed(*seed))
	}
	scriptOpts := []script.Option{script.WithLogger(observability.NewLogger("script"))}
	switch {
	case *patternFile != "":
		ps, err := script.LoadFile(*patternFile, scriptOpts...)
		if err != nil {
			log.Fatalf("Failed to load pattern script: %v", err)
		}
		runOpts = append(runOpts, game.WithPatterns(ps))
	case *patternName != "" && convex != nil:
		ps, err := script.Fetch(ctx, convex, *patternName, scriptOpts...)
		if err != nil {
			logger.Warnf("pattern script %s unavailable, using built-in patterns: %v", *patternName, err)
			break
		}
		runOpts = append(runOpts, game.WithPatterns(ps))
	case *patternName != "":
		code, ok := script.Example(*patternName)
		if !ok {
			logger.Warnf("no bundled pattern script %q (have %v), using built-in patterns", *patternName, script.Examples())
			break
		}
		ps, err := script.Compile(*patternName, code, scriptOpts...)
		if err != nil {
			log.Fatalf("Failed to compile pattern script: %v", err)
		}
		runOpts = append(runOpts, game.WithPatterns(ps))
	}

	ctrl := game.NewController(cfg, board, observability.NewLogger("game"), runOpts...)

	sounds := screen.NewSounds(audio.NewContext(44100))
	sounds.SetMuted(*mute)
	assets := screen.LoadAssets(observability.NewLogger("assets"))

	opts := []screen.Option{
		screen.WithAssets(assets),
		screen.WithSounds(sounds),
		screen.WithLogger(observability.NewLogger("screen")),
		screen.WithContext(ctx),
	}
	var prof *profiler.Profiler
	if *profileDir != "" {
		prof, err = profiler.New(*profileDir, profiler.WithLogger(observability.NewLogger("profiler")))
		if err != nil {
			log.Fatalf("Failed to create profiler: %v", err)
		}
		opts = append(opts, screen.WithTickObserver(prof))
	}

	g := screen.New(ctrl, cfg, opts...)
	defer g.Close()

	ebiten.SetWindowSize(int(float64(cfg.ScreenWidth)*(*scale)), int(float64(cfg.ScreenHeight)*(*scale)))
	ebiten.SetWindowTitle("Skyraid")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.FPS)

	logger.Infof("starting at %d TPS, config %q", cfg.FPS, *configPath)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	if prof != nil {
		prof.Wait()
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/application/replay"
	"github.com/younwookim/cubesim/internal/application/system"
	"github.com/younwookim/cubesim/internal/infrastructure/config"
	"github.com/younwookim/cubesim/internal/infrastructure/logging"
	"github.com/younwookim/cubesim/internal/infrastructure/window"
	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session (e.g., -replay replay.json)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger, session := logging.WithSession(logger)

	if err := run(cfg, *recordFlag, *replayFlag, session, logger); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

func run(cfg *config.GameConfig, recordPath, replayPath, session string, logger *zap.Logger) error {
	// Seeded RNG for deterministic replays
	seed := time.Now().UnixNano()
	var src system.Source = system.NewEbitenSource()

	if replayPath != "" {
		data, err := replay.LoadReplay(replayPath)
		if err != nil {
			return fmt.Errorf("load replay %s: %w", replayPath, err)
		}
		seed = data.Seed
		src = replay.NewReplayer(*data)
		logger.Info("replaying", zap.String("file", replayPath), zap.Int("frames", len(data.Frames)))
	}

	a, err := newApp(cfg, src, window.New(), seed, logger)
	if err != nil {
		return err
	}

	var rec *replay.Recorder
	if recordPath != "" {
		rec = replay.NewRecorder(seed, session)
		a.game.SetRecorder(rec)
		logger.Info("recording enabled", zap.String("file", recordPath), zap.Int64("seed", seed))
	}

	window.Setup(cfg.Display)
	logger.Info("starting", zap.String("title", cfg.Display.Title), zap.Int64("seed", seed))

	runErr := ebiten.RunGame(a.game)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}

	if rec != nil {
		if err := rec.Save(recordPath); err != nil {
			logger.Error("failed to save recording", zap.String("file", recordPath), zap.Error(err))
		} else {
			logger.Info("recording saved", zap.String("file", recordPath), zap.Int("frames", rec.FrameCount()))
		}
	}

	logger.Info("stopped", zap.Int("frames", a.game.Frame()))
	return runErr
}

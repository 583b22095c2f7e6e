package main

import (
	"math/rand"

	"github.com/younwookim/cubesim/internal/application/game"
	"github.com/younwookim/cubesim/internal/application/scene/menu"
	"github.com/younwookim/cubesim/internal/application/scene/playing"
	"github.com/younwookim/cubesim/internal/application/state"
	"github.com/younwookim/cubesim/internal/application/system"
	"github.com/younwookim/cubesim/internal/ecs"
	"github.com/younwookim/cubesim/internal/infrastructure/config"
	"go.uber.org/zap"
)

// app holds the wired game and the pieces tests inspect
type app struct {
	game    *game.Game
	world   *ecs.World
	playing *playing.Playing
	seed    int64
}

// newApp wires the world, both scenes, the cursor policy and the frame loop,
// then enters the menu. seed drives every random choice of the run.
func newApp(cfg *config.GameConfig, src system.Source, win system.Window, seed int64, logger *zap.Logger) (*app, error) {
	w := ecs.NewWorld()
	machine := state.NewMachine(state.StateMenu, logger.Named("state"))
	rng := rand.New(rand.NewSource(seed))

	g := game.New(machine, system.NewInputSystem(src), cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, logger)
	play := playing.New(w, machine, cfg, rng, logger)
	g.Register(state.StateMenu, menu.New(w, machine, cfg, logger))
	g.Register(state.StatePlaying, play)
	system.NewCursorPolicy(win, logger.Named("cursor")).Bind(machine)

	if err := g.Start(); err != nil {
		return nil, err
	}
	return &app{game: g, world: w, playing: play, seed: seed}, nil
}

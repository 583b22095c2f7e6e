// Package game provides the main game loop that drives the state machine
// and the scene of the current state.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/application/replay"
	"github.com/younwookim/cubesim/internal/application/scene"
	"github.com/younwookim/cubesim/internal/application/state"
	"github.com/younwookim/cubesim/internal/application/system"
	"go.uber.org/zap"
)

// Game implements ebiten.Game.
//
// Each frame it samples input, runs the current state's scene and then
// applies any requested state transition.
type Game struct {
	machine  *state.Machine
	scenes   map[state.GameState]scene.Scene
	input    *system.InputSystem
	recorder *replay.Recorder
	screenW  int
	screenH  int
	frame    int
	logger   *zap.Logger
}

// New creates a new Game. Scenes are added with Register before Start.
func New(m *state.Machine, input *system.InputSystem, screenW, screenH int, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		machine: m,
		scenes:  make(map[state.GameState]scene.Scene),
		input:   input,
		screenW: screenW,
		screenH: screenH,
		logger:  logger.Named("game"),
	}
}

// Register makes sc the scene of state s and binds its enter/exit hooks
func (g *Game) Register(s state.GameState, sc scene.Scene) {
	g.scenes[s] = sc
	g.machine.OnEnter(s, sc.OnEnter)
	g.machine.OnExit(s, sc.OnExit)
}

// SetRecorder records every sampled frame to rec
func (g *Game) SetRecorder(rec *replay.Recorder) {
	g.recorder = rec
}

// Start enters the initial state
func (g *Game) Start() error {
	return g.machine.Start()
}

// Update runs one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frame++

	in := g.input.Sample()
	if g.recorder != nil {
		g.recorder.RecordFrame(in)
	}

	sc, err := g.current()
	if err != nil {
		return err
	}
	if err := sc.Update(in); err != nil {
		return err
	}

	if _, err := g.machine.Apply(); err != nil {
		g.logger.Error("state transition failed", zap.Int("frame", g.frame), zap.Error(err))
		return err
	}
	return nil
}

func (g *Game) current() (scene.Scene, error) {
	sc, ok := g.scenes[g.machine.Current()]
	if !ok {
		return nil, fmt.Errorf("no scene for state %s: %w", g.machine.Current(), system.ErrInvariant)
	}
	return sc, nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if sc, err := g.current(); err == nil {
		sc.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// State returns the current game state
func (g *Game) State() state.GameState {
	return g.machine.Current()
}

// Frame returns the number of frames run
func (g *Game) Frame() int {
	return g.frame
}

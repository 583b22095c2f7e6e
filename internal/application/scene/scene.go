// Package scene defines the Scene interface for game screens.
//
// Each game state owns one scene. The scene spawns its objects when the
// state is entered, runs that state's systems every frame, and removes
// everything it spawned when the state is left.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/application/system"
	"github.com/younwookim/cubesim/internal/ecs"
)

// Group tags of the objects each scene spawns
const (
	TagMenu    ecs.Tag = "menu"
	TagPlaying ecs.Tag = "playing"
)

// ErrQuit ends the run loop without an error
var ErrQuit = ebiten.Termination

// Scene represents a game screen (menu, playing)
//
// The game loop delegates Update and Draw calls to the scene of the
// current state. Transitions are requested on the state machine.
type Scene interface {
	// Update runs the scene's systems for one frame.
	// Returns an error to terminate the game; ErrQuit ends it cleanly.
	Update(in system.Snapshot) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene's state.
	// Every object it creates carries the scene's tag.
	OnEnter() error

	// OnExit is called when leaving this scene's state.
	// It removes every object carrying the scene's tag.
	OnExit() error
}

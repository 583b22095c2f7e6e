package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/domain/entity"
	"github.com/younwookim/cubesim/internal/ecs"
)

// speedKeys is the order digits are checked in; the first just-pressed digit wins
var speedKeys = []struct {
	key   ebiten.Key
	digit int
}{
	{ebiten.KeyDigit1, 1},
	{ebiten.KeyDigit2, 2},
	{ebiten.KeyDigit3, 3},
	{ebiten.KeyDigit4, 4},
	{ebiten.KeyDigit5, 5},
	{ebiten.KeyDigit6, 6},
	{ebiten.KeyDigit7, 7},
	{ebiten.KeyDigit8, 8},
	{ebiten.KeyDigit9, 9},
	{ebiten.KeyDigit0, 0},
}

// movement keys and their unit directions
var moveKeys = []struct {
	key ebiten.Key
	dir mgl64.Vec3
}{
	{ebiten.KeyW, mgl64.Vec3{0, 0, -1}},
	{ebiten.KeyS, mgl64.Vec3{0, 0, 1}},
	{ebiten.KeyA, mgl64.Vec3{-1, 0, 0}},
	{ebiten.KeyD, mgl64.Vec3{1, 0, 0}},
}

// CancelKey leaves the playing state while held
const CancelKey = ebiten.KeyEscape

// CubeController turns input into cube speed changes and translation
type CubeController struct{}

// NewCubeController creates a new cube controller
func NewCubeController() *CubeController {
	return &CubeController{}
}

// Intents derives this frame's intents from the snapshot.
// speed is the cube's current speed; a SpeedIntent in the result
// is applied before movement.
func (c *CubeController) Intents(in Snapshot, speed float64) []Intent {
	var intents []Intent

	for _, sk := range speedKeys {
		if in.JustPressed(sk.key) {
			s, _ := entity.SpeedForDigit(sk.digit)
			speed = s
			intents = append(intents, SpeedIntent{Speed: s})
			break
		}
	}

	// held keys compose additively; diagonals are not normalized
	var delta mgl64.Vec3
	moved := false
	for _, mk := range moveKeys {
		if in.IsHeld(mk.key) {
			delta = delta.Add(mk.dir.Mul(speed))
			moved = true
		}
	}
	if moved {
		intents = append(intents, MoveIntent{Delta: delta})
	}

	if in.IsHeld(CancelKey) || in.JustPressed(CancelKey) {
		intents = append(intents, CancelIntent{})
	}

	return intents
}

// Update applies the frame's intents to the cube and reports whether
// leaving the playing state was requested.
func (c *CubeController) Update(w *ecs.World, cube ecs.EntityID, in Snapshot) (cancel bool, err error) {
	data, ok := w.Cube[cube]
	if !ok {
		return false, fmt.Errorf("cube controller: cube %d missing: %w", cube, ErrInvariant)
	}
	tr := w.Transform[cube]

	for _, intent := range c.Intents(in, data.Speed) {
		switch it := intent.(type) {
		case SpeedIntent:
			data.Speed = it.Speed
		case MoveIntent:
			tr.Position = tr.Position.Add(it.Delta)
		case CancelIntent:
			cancel = true
		}
	}

	w.Cube[cube] = data
	w.Transform[cube] = tr
	return cancel, nil
}

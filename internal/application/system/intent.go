package system

import "github.com/go-gl/mathgl/mgl64"

// Intent represents an action the cube controller wants to perform
type Intent interface {
	isIntent()
}

// SpeedIntent selects a new cube speed
type SpeedIntent struct {
	Speed float64
}

func (SpeedIntent) isIntent() {}

// MoveIntent translates the cube by Delta
type MoveIntent struct {
	Delta mgl64.Vec3
}

func (MoveIntent) isIntent() {}

// CancelIntent asks to leave the playing state
type CancelIntent struct{}

func (CancelIntent) isIntent() {}

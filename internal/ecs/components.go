package ecs

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/cubesim/internal/domain/entity"
)

// Axes used by the transform helpers.
// Objects face -Z with +Y up when their rotation is identity.
var (
	AxisX   = mgl64.Vec3{1, 0, 0}
	AxisY   = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, -1}
)

// Transform represents an object's position and orientation.
// For children it is local to the parent.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity-rotation transform at (x, y, z)
func NewTransform(x, y, z float64) Transform {
	return Transform{
		Position: mgl64.Vec3{x, y, z},
		Rotation: mgl64.QuatIdent(),
	}
}

// Forward returns the direction the transform is facing
func (t Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(Forward)
}

// Up returns the transform's local up direction in world space
func (t Transform) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(AxisY)
}

// Right returns the transform's local right direction in world space
func (t Transform) Right() mgl64.Vec3 {
	return t.Rotation.Rotate(AxisX)
}

// Camera marks an object as a camera
type Camera struct {
	Kind   entity.CameraKind
	Active bool
}

// Mesh describes a renderable object. The renderer owns the geometry;
// the core only keeps what it needs to hand back.
type Mesh struct {
	Shape  entity.Shape
	Size   mgl64.Vec3 // cuboid extents, or plane half-size in X/Z
	Normal mgl64.Vec3 // planes only
	Color  color.RGBA
}

// Light is a point light
type Light struct {
	Intensity float64
}

// Text is a UI label
type Text struct {
	Value string
	Size  float64
	Color color.RGBA
}

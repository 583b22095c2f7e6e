package system

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/ecs"
)

// ResetKey snaps the camera back behind the cube
const ResetKey = ebiten.KeyR

const (
	epsilon = 1e-9

	// pitch stops this close (as a cosine) to straight up or down,
	// which keeps the world-up look-at well defined
	maxElevationCos = 0.999
)

// OrbitCamera revolves the camera around the cube at constant distance
// and re-aims it at the cube every frame
type OrbitCamera struct {
	sensitivity float64 // mouse pixels per radian
	resetOffset mgl64.Vec3
	rng         *rand.Rand
}

// NewOrbitCamera creates a new orbit camera controller
func NewOrbitCamera(sensitivity float64, resetOffset mgl64.Vec3, rng *rand.Rand) *OrbitCamera {
	return &OrbitCamera{
		sensitivity: sensitivity,
		resetOffset: resetOffset,
		rng:         rng,
	}
}

// Update runs one frame: optional reset, orbit by the frame's mouse motion,
// then a single look-at toward the cube.
func (o *OrbitCamera) Update(w *ecs.World, cube, camera ecs.EntityID, in Snapshot) error {
	if !w.Exists(cube) {
		return fmt.Errorf("orbit camera: cube %d missing: %w", cube, ErrInvariant)
	}
	if _, ok := w.Camera[camera]; !ok {
		return fmt.Errorf("orbit camera: camera %d missing: %w", camera, ErrInvariant)
	}

	target := w.WorldPosition(cube)
	tr := w.Transform[camera]

	if in.JustPressed(ResetKey) {
		tr.Position = target.Add(o.ResetOffset())
	}

	tr.Position = o.Orbit(tr.Position, target, in.Motion, tr.Right())
	tr = Aim(tr, target)

	w.Transform[camera] = tr
	return nil
}

// ResetOffset returns the camera offset used by a reset; the vertical
// component's sign is chosen at random
func (o *OrbitCamera) ResetOffset() mgl64.Vec3 {
	off := o.resetOffset
	if o.rng != nil && o.rng.Intn(2) == 0 {
		off[1] = -off[1]
	}
	return off
}

// Orbit rotates eye around target by the mouse delta: yaw -dx/sensitivity about
// world up, then pitch dy/sensitivity about the camera's horizontal right axis.
// The distance to target is preserved. prevRight breaks the tie when the camera
// sits directly above or below the target.
func (o *OrbitCamera) Orbit(eye, target mgl64.Vec3, delta mgl64.Vec2, prevRight mgl64.Vec3) mgl64.Vec3 {
	if delta.X() == 0 && delta.Y() == 0 {
		return eye
	}
	offset := eye.Sub(target)
	if offset.Len() < epsilon {
		return eye
	}

	yaw := -delta.X() / o.sensitivity
	pitch := delta.Y() / o.sensitivity

	if pitch != 0 {
		right := horizontalRight(offset, prevRight)
		pitched := mgl64.QuatRotate(pitch, right).Rotate(offset)
		if !crossesPole(offset, pitched) {
			offset = pitched
		}
	}
	offset = mgl64.QuatRotate(yaw, ecs.AxisY).Rotate(offset)

	return target.Add(offset)
}

// crossesPole reports whether pitching from -> to passes over (or too close to)
// straight up or down
func crossesPole(from, to mgl64.Vec3) bool {
	if math.Abs(to.Normalize().Dot(ecs.AxisY)) > maxElevationCos {
		return true
	}
	flatFrom := mgl64.Vec3{from.X(), 0, from.Z()}
	flatTo := mgl64.Vec3{to.X(), 0, to.Z()}
	if flatFrom.Len() < epsilon {
		return false
	}
	return flatTo.Dot(flatFrom) <= 0
}

// horizontalRight returns the unit right axis of a camera at offset looking back at the target
func horizontalRight(offset, prevRight mgl64.Vec3) mgl64.Vec3 {
	right := offset.Mul(-1).Cross(ecs.AxisY)
	if right.Len() >= epsilon {
		return right.Normalize()
	}
	flat := mgl64.Vec3{prevRight.X(), 0, prevRight.Z()}
	if flat.Len() >= epsilon {
		return flat.Normalize()
	}
	return ecs.AxisX
}

// Aim re-orients tr to look at target with world up. The previous up vector
// is used when the view direction is vertical; a target at the eye keeps the
// current orientation.
func Aim(tr ecs.Transform, target mgl64.Vec3) ecs.Transform {
	if rot, ok := LookRotation(tr.Position, target, ecs.AxisY, tr.Up()); ok {
		tr.Rotation = rot
	}
	return tr
}

// LookRotation returns the orientation of an object at eye facing target
// (local -Z toward target, local +Y as close to up as possible).
func LookRotation(eye, target, up, fallbackUp mgl64.Vec3) (mgl64.Quat, bool) {
	dir := target.Sub(eye)
	if dir.Len() < epsilon {
		return mgl64.QuatIdent(), false
	}
	f := dir.Normalize()

	r := f.Cross(up)
	if r.Len() < epsilon {
		r = f.Cross(fallbackUp)
		if r.Len() < epsilon {
			return mgl64.QuatIdent(), false
		}
	}
	r = r.Normalize()
	u := r.Cross(f)

	m := mgl64.Mat3FromCols(r, u, f.Mul(-1))
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize(), true
}

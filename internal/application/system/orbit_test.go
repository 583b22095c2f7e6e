package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/cubesim/internal/domain/entity"
	"github.com/younwookim/cubesim/internal/ecs"
)

const tolerance = 1e-9

func createTestScene(t *testing.T) (*ecs.World, ecs.EntityID, ecs.EntityID) {
	t.Helper()
	w := ecs.NewWorld()
	cube := createTestCube(w)

	cam := w.Spawn(testTag)
	w.Camera[cam] = ecs.Camera{Kind: entity.Camera3D, Active: true}
	w.Transform[cam] = Aim(ecs.NewTransform(-2, 2.5, 5), mgl64.Vec3{})
	return w, cube, cam
}

func newTestOrbit() *OrbitCamera {
	return NewOrbitCamera(50, mgl64.Vec3{1.5, 0.5, 4.2}, rand.New(rand.NewSource(1)))
}

func motion(dx, dy float64) Snapshot {
	s := NewSnapshot(nil, nil)
	s.Motion = mgl64.Vec2{dx, dy}
	return s
}

// assertLooksAt checks that the camera's forward axis points at target
func assertLooksAt(t *testing.T, tr ecs.Transform, target mgl64.Vec3) {
	t.Helper()
	want := target.Sub(tr.Position).Normalize()
	got := tr.Forward()
	assert.True(t, got.ApproxEqualThreshold(want, 1e-9), "forward %v, want %v", got, want)
}

func TestLookRotation(t *testing.T) {
	t.Run("identity when already facing -Z", func(t *testing.T) {
		rot, ok := LookRotation(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{}, ecs.AxisY, ecs.AxisY)
		require.True(t, ok)

		tr := ecs.Transform{Position: mgl64.Vec3{0, 0, 5}, Rotation: rot}
		assert.True(t, tr.Forward().ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, tolerance))
		assert.True(t, tr.Up().ApproxEqualThreshold(ecs.AxisY, tolerance))
	})

	t.Run("arbitrary eye keeps a level horizon", func(t *testing.T) {
		eye := mgl64.Vec3{-2, 2.5, 5}
		rot, ok := LookRotation(eye, mgl64.Vec3{}, ecs.AxisY, ecs.AxisY)
		require.True(t, ok)

		tr := ecs.Transform{Position: eye, Rotation: rot}
		assertLooksAt(t, tr, mgl64.Vec3{})
		assert.InDelta(t, 0, tr.Right().Y(), tolerance, "no roll")
		assert.Greater(t, tr.Up().Y(), 0.0)
	})

	t.Run("vertical view uses the fallback up", func(t *testing.T) {
		eye := mgl64.Vec3{0, 10, 0}
		rot, ok := LookRotation(eye, mgl64.Vec3{}, ecs.AxisY, mgl64.Vec3{0, 0, -1})
		require.True(t, ok)

		tr := ecs.Transform{Position: eye, Rotation: rot}
		assertLooksAt(t, tr, mgl64.Vec3{})
	})

	t.Run("target at eye is rejected", func(t *testing.T) {
		_, ok := LookRotation(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1}, ecs.AxisY, ecs.AxisY)
		assert.False(t, ok)
	})
}

func TestOrbit_ZeroMotionIsIdentity(t *testing.T) {
	o := newTestOrbit()
	eye := mgl64.Vec3{-2, 2.5, 5}

	got := o.Orbit(eye, mgl64.Vec3{}, mgl64.Vec2{}, ecs.AxisX)

	assert.Equal(t, eye, got)
}

func TestOrbit_YawDirection(t *testing.T) {
	o := newTestOrbit()
	eye := mgl64.Vec3{0, 0, 5}

	// yaw is -dx, so a positive dx rotates negatively about +Y, carrying +Z toward -X
	got := o.Orbit(eye, mgl64.Vec3{}, mgl64.Vec2{50 * math.Pi / 2, 0}, ecs.AxisX)

	assert.True(t, got.ApproxEqualThreshold(mgl64.Vec3{-5, 0, 0}, 1e-9), "got %v", got)
}

func TestOrbit_PitchDirection(t *testing.T) {
	o := newTestOrbit()
	eye := mgl64.Vec3{0, 0, 5}

	got := o.Orbit(eye, mgl64.Vec3{}, mgl64.Vec2{0, 10}, ecs.AxisX)

	assert.Less(t, got.Y(), 0.0, "positive dy moves the camera below the target")
	assert.InDelta(t, 0, got.X(), tolerance, "pitch alone does not yaw")
	assert.InDelta(t, 5, got.Len(), tolerance)
}

func TestOrbit_PitchStopsAtPole(t *testing.T) {
	o := newTestOrbit()
	eye := mgl64.Vec3{0, 0, 5}

	// a huge downward flick would carry the camera past straight down
	got := o.Orbit(eye, mgl64.Vec3{}, mgl64.Vec2{0, 50 * math.Pi * 0.6}, ecs.AxisX)

	assert.Equal(t, eye, got, "pitch that would cross the pole is dropped")
}

func TestOrbit_DistanceInvariant(t *testing.T) {
	o := newTestOrbit()
	rng := rand.New(rand.NewSource(7))

	target := mgl64.Vec3{3, 0, -4}
	eye := target.Add(mgl64.Vec3{-2, 2.5, 5})
	radius := eye.Sub(target).Len()
	right := ecs.AxisX

	for i := 0; i < 1000; i++ {
		delta := mgl64.Vec2{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		eye = o.Orbit(eye, target, delta, right)
		right = Aim(ecs.Transform{Position: eye, Rotation: mgl64.QuatIdent()}, target).Right()

		require.InDelta(t, radius, eye.Sub(target).Len(), 1e-6, "step %d", i)
	}
}

func TestOrbitCamera_Update_PassiveTracking(t *testing.T) {
	w, cube, cam := createTestScene(t)
	o := newTestOrbit()
	before := w.Transform[cam].Position

	// cube moves, mouse idle
	tr := w.Transform[cube]
	tr.Position = mgl64.Vec3{1.5, 0, -3}
	w.Transform[cube] = tr

	require.NoError(t, o.Update(w, cube, cam, NewSnapshot(nil, nil)))

	assert.Equal(t, before, w.Transform[cam].Position, "camera position unchanged")
	assertLooksAt(t, w.Transform[cam], mgl64.Vec3{1.5, 0, -3})
}

func TestOrbitCamera_Update_OrbitsCurrentCubePosition(t *testing.T) {
	w, cube, cam := createTestScene(t)
	o := newTestOrbit()

	tr := w.Transform[cube]
	tr.Position = mgl64.Vec3{0, 0, -1}
	w.Transform[cube] = tr
	radius := w.Transform[cam].Position.Sub(tr.Position).Len()

	require.NoError(t, o.Update(w, cube, cam, motion(12, -7)))

	camTr := w.Transform[cam]
	assert.InDelta(t, radius, camTr.Position.Sub(tr.Position).Len(), 1e-9)
	assertLooksAt(t, camTr, tr.Position)
}

func TestOrbitCamera_Update_Reset(t *testing.T) {
	w, cube, cam := createTestScene(t)
	o := newTestOrbit()

	tr := w.Transform[cube]
	tr.Position = mgl64.Vec3{10, 0, 10}
	w.Transform[cube] = tr

	require.NoError(t, o.Update(w, cube, cam, pressed(ResetKey)))

	off := w.Transform[cam].Position.Sub(tr.Position)
	assert.InDelta(t, 1.5, off.X(), tolerance)
	assert.InDelta(t, 0.5, math.Abs(off.Y()), tolerance)
	assert.InDelta(t, 4.2, off.Z(), tolerance)
	assertLooksAt(t, w.Transform[cam], tr.Position)
}

func TestOrbitCamera_ResetOffsetSigns(t *testing.T) {
	o := newTestOrbit()

	seen := map[float64]bool{}
	for i := 0; i < 64; i++ {
		seen[o.ResetOffset().Y()] = true
	}

	assert.True(t, seen[0.5])
	assert.True(t, seen[-0.5])
	assert.Len(t, seen, 2)
}

func TestOrbitCamera_Update_MissingSingletons(t *testing.T) {
	o := newTestOrbit()

	t.Run("no cube", func(t *testing.T) {
		w, cube, cam := createTestScene(t)
		w.DestroyEntity(cube)

		assert.ErrorIs(t, o.Update(w, cube, cam, NewSnapshot(nil, nil)), ErrInvariant)
	})

	t.Run("no camera", func(t *testing.T) {
		w, cube, cam := createTestScene(t)
		w.DestroyEntity(cam)

		assert.ErrorIs(t, o.Update(w, cube, cam, NewSnapshot(nil, nil)), ErrInvariant)
	})
}

func TestResetKeyIsR(t *testing.T) {
	assert.Equal(t, ebiten.KeyR, ResetKey)
}

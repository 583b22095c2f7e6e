package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/cubesim/internal/ecs"
	"github.com/younwookim/cubesim/internal/infrastructure/config"
)

func createTestRenderer() *Wireframe {
	return NewWireframe(config.CameraConfig{FovDeg: 45, Near: 0.1, Far: 1000}, 640, 480)
}

func TestView_IdentityCamera(t *testing.T) {
	tr := ecs.NewTransform(1, 2, 3)
	p := View(tr).Mul4x1(mgl64.Vec4{1, 2, -2, 1}).Vec3()

	assert.InDelta(t, 0, p.X(), 1e-9)
	assert.InDelta(t, 0, p.Y(), 1e-9)
	assert.InDelta(t, -5, p.Z(), 1e-9)
}

func TestView_RotatedCamera(t *testing.T) {
	// turned to face +X
	tr := ecs.Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatRotate(-mgl64.DegToRad(90), ecs.AxisY),
	}
	p := View(tr).Mul4x1(mgl64.Vec4{5, 0, 0, 1}).Vec3()

	assert.InDelta(t, 0, p.X(), 1e-9)
	assert.InDelta(t, -5, p.Z(), 1e-9)
}

func TestProject_CentreOfView(t *testing.T) {
	r := createTestRenderer()

	x, y := r.Project(mgl64.Vec3{0, 0, -10})

	assert.InDelta(t, 320, x, 1e-9)
	assert.InDelta(t, 240, y, 1e-9)
}

func TestProject_UpIsScreenUp(t *testing.T) {
	r := createTestRenderer()

	_, y := r.Project(mgl64.Vec3{0, 1, -10})
	x, _ := r.Project(mgl64.Vec3{1, 0, -10})

	assert.Less(t, y, 240.0)
	assert.Greater(t, x, 320.0)
}

func TestClipNear(t *testing.T) {
	tests := []struct {
		name  string
		a, b  mgl64.Vec3
		ok    bool
		wantA mgl64.Vec3
		wantB mgl64.Vec3
	}{
		{"both in front", mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, -5}, true, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, -5}},
		{"both behind", mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 5}, false, mgl64.Vec3{}, mgl64.Vec3{}},
		{"b behind", mgl64.Vec3{0, 0, -2}, mgl64.Vec3{0, 0, 2}, true, mgl64.Vec3{0, 0, -2}, mgl64.Vec3{0, 0, -1}},
		{"a behind", mgl64.Vec3{2, 0, 1}, mgl64.Vec3{2, 0, -3}, true, mgl64.Vec3{2, 0, -1}, mgl64.Vec3{2, 0, -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := clipNear(tt.a, tt.b, 1)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.InDeltaSlice(t, tt.wantA[:], a[:], 1e-9)
			assert.InDeltaSlice(t, tt.wantB[:], b[:], 1e-9)
		})
	}
}

func TestPlaneBasis(t *testing.T) {
	for _, n := range []mgl64.Vec3{{0, 1, 0}, {0, -1, 0}, {1, 0, 0}} {
		u, v := planeBasis(n)
		assert.InDelta(t, 1, u.Len(), 1e-9)
		assert.InDelta(t, 1, v.Len(), 1e-9)
		assert.InDelta(t, 0, u.Dot(n), 1e-9)
		assert.InDelta(t, 0, v.Dot(n), 1e-9)
		assert.InDelta(t, 0, u.Dot(v), 1e-9)
	}
}

func TestTextOrigin(t *testing.T) {
	x, y := TextOrigin("abcd", 100, 20)

	assert.Equal(t, 88.0, x)
	assert.Equal(t, 20.0, y)
}

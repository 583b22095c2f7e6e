// Package render draws the world with ebiten primitives.
//
// The 3D scene is drawn as a wireframe projected through the active
// camera; the menu is drawn as flat rectangles and debug text.
package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/cubesim/internal/domain/entity"
	"github.com/younwookim/cubesim/internal/ecs"
	"github.com/younwookim/cubesim/internal/infrastructure/config"
)

var (
	colorSky   = color.RGBA{26, 26, 46, 255}
	colorLight = color.RGBA{255, 255, 160, 255}
)

const (
	gridStep   = 1.0  // world units between grid lines
	gridRadius = 20.0 // grid lines drawn around the camera
	lightMark  = 0.15 // half size of a light marker
)

// cuboid corner signs and the edges between them
var (
	boxCorners = [8]mgl64.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	boxEdges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

// Wireframe draws meshes and lights as lines seen from a camera
type Wireframe struct {
	proj    mgl64.Mat4
	near    float64
	screenW int
	screenH int
}

// NewWireframe creates a renderer with a perspective projection
func NewWireframe(cfg config.CameraConfig, screenW, screenH int) *Wireframe {
	aspect := float64(screenW) / float64(screenH)
	return &Wireframe{
		proj:    mgl64.Perspective(mgl64.DegToRad(cfg.FovDeg), aspect, cfg.Near, cfg.Far),
		near:    cfg.Near,
		screenW: screenW,
		screenH: screenH,
	}
}

// View returns the world-to-camera matrix of tr
func View(tr ecs.Transform) mgl64.Mat4 {
	p := tr.Position
	return tr.Rotation.Conjugate().Mat4().Mul4(mgl64.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// Draw renders every mesh and light in w from camera
func (r *Wireframe) Draw(screen *ebiten.Image, w *ecs.World, camera ecs.EntityID) {
	screen.Fill(colorSky)

	camTr := w.WorldTransform(camera)
	view := View(camTr)

	for _, id := range w.Meshes() {
		mesh := w.Mesh[id]
		tr := w.WorldTransform(id)
		switch mesh.Shape {
		case entity.ShapeCuboid:
			r.drawBox(screen, view, tr, mesh)
		case entity.ShapePlane:
			r.drawPlane(screen, view, tr, mesh, camTr.Position)
		}
	}

	for _, id := range w.Lights() {
		pos := w.WorldPosition(id)
		for _, axis := range []mgl64.Vec3{ecs.AxisX, ecs.AxisY, {0, 0, 1}} {
			d := axis.Mul(lightMark)
			r.line(screen, view, pos.Sub(d), pos.Add(d), colorLight)
		}
	}
}

func (r *Wireframe) drawBox(screen *ebiten.Image, view mgl64.Mat4, tr ecs.Transform, mesh ecs.Mesh) {
	half := mesh.Size.Mul(0.5)
	var corners [8]mgl64.Vec3
	for i, c := range boxCorners {
		local := mgl64.Vec3{c.X() * half.X(), c.Y() * half.Y(), c.Z() * half.Z()}
		corners[i] = tr.Position.Add(tr.Rotation.Rotate(local))
	}
	for _, e := range boxEdges {
		r.line(screen, view, corners[e[0]], corners[e[1]], mesh.Color)
	}
}

// drawPlane draws a grid patch of the plane around the camera.
// Planes are one-sided: nothing is drawn when the camera is behind one.
func (r *Wireframe) drawPlane(screen *ebiten.Image, view mgl64.Mat4, tr ecs.Transform, mesh ecs.Mesh, eye mgl64.Vec3) {
	n := tr.Rotation.Rotate(mesh.Normal).Normalize()
	if eye.Sub(tr.Position).Dot(n) <= 0 {
		return
	}

	u, v := planeBasis(n)
	half := mesh.Size.X()

	// camera position in plane coordinates, snapped to the grid
	rel := eye.Sub(tr.Position)
	cu := math.Round(rel.Dot(u)/gridStep) * gridStep
	cv := math.Round(rel.Dot(v)/gridStep) * gridStep

	uMin, uMax := clamp(cu-gridRadius, -half, half), clamp(cu+gridRadius, -half, half)
	vMin, vMax := clamp(cv-gridRadius, -half, half), clamp(cv+gridRadius, -half, half)

	at := func(a, b float64) mgl64.Vec3 {
		return tr.Position.Add(u.Mul(a)).Add(v.Mul(b))
	}
	for a := uMin; a <= uMax; a += gridStep {
		r.line(screen, view, at(a, vMin), at(a, vMax), mesh.Color)
	}
	for b := vMin; b <= vMax; b += gridStep {
		r.line(screen, view, at(uMin, b), at(uMax, b), mesh.Color)
	}
}

// line draws the segment a-b, clipped against the near plane
func (r *Wireframe) line(screen *ebiten.Image, view mgl64.Mat4, a, b mgl64.Vec3, clr color.Color) {
	va := view.Mul4x1(a.Vec4(1)).Vec3()
	vb := view.Mul4x1(b.Vec4(1)).Vec3()

	va, vb, ok := clipNear(va, vb, r.near)
	if !ok {
		return
	}
	x1, y1 := r.Project(va)
	x2, y2 := r.Project(vb)
	ebitenutil.DrawLine(screen, x1, y1, x2, y2, clr)
}

// Project maps a camera-space point in front of the camera to screen pixels
func (r *Wireframe) Project(p mgl64.Vec3) (x, y float64) {
	clip := r.proj.Mul4x1(p.Vec4(1))
	ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
	x = (ndcX + 1) / 2 * float64(r.screenW)
	y = (1 - ndcY) / 2 * float64(r.screenH)
	return x, y
}

// clipNear cuts the segment to the part in front of the near plane.
// The camera looks down -Z, so visible points have z <= -near.
func clipNear(a, b mgl64.Vec3, near float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	limit := -near
	aIn, bIn := a.Z() <= limit, b.Z() <= limit
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	}
	t := (limit - a.Z()) / (b.Z() - a.Z())
	cut := a.Add(b.Sub(a).Mul(t))
	if aIn {
		return a, cut, true
	}
	return cut, b, true
}

// planeBasis returns two unit vectors spanning the plane with normal n
func planeBasis(n mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	u := n.Cross(ecs.AxisX)
	if u.Len() < 1e-9 {
		u = n.Cross(mgl64.Vec3{0, 0, 1})
	}
	u = u.Normalize()
	return u, n.Cross(u).Normalize()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

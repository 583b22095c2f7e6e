package entity

// DefaultCubeSpeed is the cube speed on spawn (units per frame)
const DefaultCubeSpeed = 0.1

// TopSpeed is the speed selected by digit 0
const TopSpeed = 10.0

// Cube represents the player-controlled cube's movement data
type Cube struct {
	Speed float64 // units per frame
}

// NewCube creates a cube at the default speed
func NewCube() Cube {
	return Cube{Speed: DefaultCubeSpeed}
}

// SpeedForDigit maps a digit key to a cube speed.
// 1-9 select digit/10, 0 selects TopSpeed. ok is false for anything else.
func SpeedForDigit(digit int) (speed float64, ok bool) {
	switch {
	case digit == 0:
		return TopSpeed, true
	case digit >= 1 && digit <= 9:
		return float64(digit) / 10.0, true
	default:
		return 0, false
	}
}

// CameraKind distinguishes the per-state active camera
type CameraKind int

const (
	Camera2D CameraKind = iota // UI camera (Menu)
	Camera3D                   // orbit camera (Playing)
)

// String returns the string representation of the camera kind
func (k CameraKind) String() string {
	switch k {
	case Camera2D:
		return "2D"
	case Camera3D:
		return "3D"
	default:
		return "Unknown"
	}
}

// Shape identifies the mesh a renderable object is drawn with.
// The renderer owns the actual geometry.
type Shape int

const (
	ShapeCuboid Shape = iota
	ShapePlane
)

package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads keyboard and mouse state from ebiten.
// Mouse motion is the cursor displacement since the previous poll; with the
// cursor captured ebiten keeps reporting positions past the window edges.
type EbitenSource struct {
	held    []ebiten.Key
	pressed []ebiten.Key

	lastX, lastY int
	lastMode     ebiten.CursorModeType
	primed       bool
}

// NewEbitenSource creates an input source backed by ebiten
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll implements Source
func (s *EbitenSource) Poll() RawInput {
	s.held = inpututil.AppendPressedKeys(s.held[:0])
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])

	x, y := ebiten.CursorPosition()
	mode := ebiten.CursorMode()

	raw := RawInput{
		Held:      append([]ebiten.Key(nil), s.held...),
		Pressed:   append([]ebiten.Key(nil), s.pressed...),
		CursorX:   x,
		CursorY:   y,
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	// a cursor mode switch warps the cursor; rebaseline instead of reporting a jump
	if s.primed && mode == s.lastMode && (x != s.lastX || y != s.lastY) {
		raw.Motion = []mgl64.Vec2{{float64(x - s.lastX), float64(y - s.lastY)}}
	}
	s.lastX, s.lastY = x, y
	s.lastMode = mode
	s.primed = true

	return raw
}

package system

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// RawInput is what a Source reports for one frame
type RawInput struct {
	Held      []ebiten.Key
	Pressed   []ebiten.Key // just pressed this frame
	Motion    []mgl64.Vec2 // mouse motion events since the previous poll
	CursorX   int
	CursorY   int
	MouseDown bool // left button
}

// Source produces raw input once per frame. It must never block;
// a frame without events is an empty RawInput.
type Source interface {
	Poll() RawInput
}

// MotionBuffer accumulates mouse motion between frames.
// Events are summed, so their order within a frame is not preserved.
type MotionBuffer struct {
	sum mgl64.Vec2
}

// Add accumulates one motion event
func (b *MotionBuffer) Add(delta mgl64.Vec2) {
	b.sum = b.sum.Add(delta)
}

// Drain returns the summed motion and clears the buffer
func (b *MotionBuffer) Drain() mgl64.Vec2 {
	d := b.sum
	b.sum = mgl64.Vec2{}
	return d
}

// Snapshot is the per-frame input state seen by the systems
type Snapshot struct {
	held    map[ebiten.Key]struct{}
	pressed map[ebiten.Key]struct{}

	Motion    mgl64.Vec2 // summed mouse delta for the frame
	CursorX   int
	CursorY   int
	MouseDown bool
}

// NewSnapshot builds a snapshot from held and just-pressed keys
func NewSnapshot(held, pressed []ebiten.Key) Snapshot {
	s := Snapshot{
		held:    make(map[ebiten.Key]struct{}, len(held)),
		pressed: make(map[ebiten.Key]struct{}, len(pressed)),
	}
	for _, k := range held {
		s.held[k] = struct{}{}
	}
	for _, k := range pressed {
		s.pressed[k] = struct{}{}
	}
	return s
}

// IsHeld reports whether k is down this frame
func (s Snapshot) IsHeld(k ebiten.Key) bool {
	_, ok := s.held[k]
	return ok
}

// JustPressed reports whether k went down this frame
func (s Snapshot) JustPressed(k ebiten.Key) bool {
	_, ok := s.pressed[k]
	return ok
}

// HeldKeys returns the held keys in ascending order
func (s Snapshot) HeldKeys() []ebiten.Key {
	return sortedKeys(s.held)
}

// PressedKeys returns the just-pressed keys in ascending order
func (s Snapshot) PressedKeys() []ebiten.Key {
	return sortedKeys(s.pressed)
}

func sortedKeys(set map[ebiten.Key]struct{}) []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// InputSystem samples a Source into per-frame snapshots
type InputSystem struct {
	source Source
	motion MotionBuffer
}

// NewInputSystem creates a new input system
func NewInputSystem(src Source) *InputSystem {
	return &InputSystem{source: src}
}

// Sample reads the current input state
func (s *InputSystem) Sample() Snapshot {
	raw := s.source.Poll()

	for _, m := range raw.Motion {
		s.motion.Add(m)
	}

	snap := NewSnapshot(raw.Held, raw.Pressed)
	snap.Motion = s.motion.Drain()
	snap.CursorX = raw.CursorX
	snap.CursorY = raw.CursorY
	snap.MouseDown = raw.MouseDown
	return snap
}

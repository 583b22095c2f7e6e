package system

import (
	"github.com/younwookim/cubesim/internal/domain/entity"
	"github.com/younwookim/cubesim/internal/ecs"
)

// ButtonSystem updates menu button interaction and reports pressed actions
type ButtonSystem struct{}

// NewButtonSystem creates a new button system
func NewButtonSystem() *ButtonSystem {
	return &ButtonSystem{}
}

// Update classifies every button against the pointer. Only buttons whose
// interaction changed this frame react: Hovered and None recolour the button,
// Pressed is returned so the caller can act on it.
func (s *ButtonSystem) Update(w *ecs.World, in Snapshot) []entity.ButtonAction {
	var pressed []entity.ButtonAction

	px, py := float64(in.CursorX), float64(in.CursorY)
	for _, id := range w.Buttons() {
		b := w.Button[id]
		next := b.Classify(px, py, in.MouseDown)
		if next == b.Interaction {
			continue
		}
		b.Interaction = next

		switch next {
		case entity.InteractionPressed:
			pressed = append(pressed, b.Action)
		case entity.InteractionHovered:
			b.Fill = entity.ColorPink
		case entity.InteractionNone:
			b.Fill = entity.ColorGreen
		}
		w.Button[id] = b
	}

	return pressed
}

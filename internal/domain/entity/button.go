package entity

import "image/color"

// Palette used by the scenes (CSS named colours)
var (
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorGreen  = color.RGBA{0, 128, 0, 255}
	ColorPink   = color.RGBA{255, 192, 203, 255}
	ColorYellow = color.RGBA{255, 255, 0, 255}
)

// ButtonAction is what a menu button does when pressed
type ButtonAction int

const (
	ActionPlayGame ButtonAction = iota
	ActionDismiss
)

// String returns the string representation of the action
func (a ButtonAction) String() string {
	switch a {
	case ActionPlayGame:
		return "PlayGame"
	case ActionDismiss:
		return "Dismiss"
	default:
		return "Unknown"
	}
}

// Interaction is the pointer interaction state of a button for one frame
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// String returns the string representation of the interaction
func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "None"
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// Rect is a screen-space rectangle in pixels
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rect (right/bottom edges exclusive)
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Button represents a menu button widget
type Button struct {
	Action      ButtonAction
	Label       string
	Bounds      Rect
	Interaction Interaction // last observed interaction
	Fill        color.RGBA
	Border      color.RGBA
}

// NewButton creates a button in its idle colours
func NewButton(action ButtonAction, label string, bounds Rect) Button {
	return Button{
		Action: action,
		Label:  label,
		Bounds: bounds,
		Fill:   ColorGreen,
		Border: ColorYellow,
	}
}

// Classify returns the interaction for a pointer at (px, py)
func (b *Button) Classify(px, py float64, down bool) Interaction {
	if !b.Bounds.Contains(px, py) {
		return InteractionNone
	}
	if down {
		return InteractionPressed
	}
	return InteractionHovered
}

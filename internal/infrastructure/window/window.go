// Package window adapts the ebiten window to the game's window boundary.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/application/system"
	"github.com/younwookim/cubesim/internal/infrastructure/config"
)

// Window implements system.Window on top of ebiten's cursor mode.
// ebiten has a single cursor mode, so visibility and lock are kept
// here and combined on every change.
type Window struct {
	visible bool
	lock    system.CursorLock
	apply   func(ebiten.CursorModeType)
}

// New creates a window adapter driving ebiten.SetCursorMode
func New() *Window {
	return &Window{visible: true, apply: ebiten.SetCursorMode}
}

// Setup applies the display settings before the run loop starts
func Setup(cfg config.DisplayConfig) {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.Framerate)
}

// SetCursorVisible implements system.Window
func (w *Window) SetCursorVisible(visible bool) {
	w.visible = visible
	w.apply(w.Mode())
}

// SetCursorLock implements system.Window
func (w *Window) SetCursorLock(lock system.CursorLock) {
	w.lock = lock
	w.apply(w.Mode())
}

// Mode returns the ebiten cursor mode for the current visibility and lock
func (w *Window) Mode() ebiten.CursorModeType {
	switch {
	case w.lock == system.CursorLocked:
		return ebiten.CursorModeCaptured
	case !w.visible:
		return ebiten.CursorModeHidden
	default:
		return ebiten.CursorModeVisible
	}
}

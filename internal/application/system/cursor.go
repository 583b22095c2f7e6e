package system

import (
	"github.com/younwookim/cubesim/internal/application/state"
	"go.uber.org/zap"
)

// CursorLock is the cursor grab mode
type CursorLock int

const (
	CursorFree CursorLock = iota
	CursorLocked
)

// String returns the string representation of the lock mode
func (l CursorLock) String() string {
	switch l {
	case CursorFree:
		return "Free"
	case CursorLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// Window is the part of the window the core controls
type Window interface {
	SetCursorVisible(visible bool)
	SetCursorLock(lock CursorLock)
}

// CursorPolicy binds cursor visibility and lock mode to the game state
type CursorPolicy struct {
	window Window
	logger *zap.Logger
}

// NewCursorPolicy creates a new cursor policy
func NewCursorPolicy(window Window, logger *zap.Logger) *CursorPolicy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CursorPolicy{window: window, logger: logger}
}

// Bind registers the policy as an enter hook of every state
func (p *CursorPolicy) Bind(m *state.Machine) {
	for _, s := range []state.GameState{state.StateMenu, state.StatePlaying} {
		m.OnEnter(s, func() error {
			p.Apply(s)
			return nil
		})
	}
}

// Apply sets the cursor for s. Playing hides and locks it; Menu shows and frees it.
func (p *CursorPolicy) Apply(s state.GameState) {
	visible, lock := true, CursorFree
	if s == state.StatePlaying {
		visible, lock = false, CursorLocked
	}
	p.window.SetCursorVisible(visible)
	p.window.SetCursorLock(lock)
	p.logger.Debug("cursor policy applied",
		zap.Stringer("state", s),
		zap.Bool("visible", visible),
		zap.Stringer("lock", lock))
}

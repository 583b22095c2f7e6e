package state

import (
	"fmt"

	"go.uber.org/zap"
)

// Hook is an enter or exit handler. A non-nil error aborts the transition.
type Hook func() error

// Machine owns the current game state and its enter/exit hooks.
//
// Requests are buffered: Request only records a pending target, and Apply
// performs the change at a single point per frame in the order
// exit hooks of the old state -> new state applied -> enter hooks of the new state.
type Machine struct {
	current    GameState
	pending    GameState
	hasPending bool
	started    bool

	enter map[GameState][]Hook
	exit  map[GameState][]Hook

	logger *zap.Logger
}

// NewMachine creates a machine resting in initial. Call Start once hooks are registered.
func NewMachine(initial GameState, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		current: initial,
		enter:   make(map[GameState][]Hook),
		exit:    make(map[GameState][]Hook),
		logger:  logger,
	}
}

// OnEnter registers a hook run each time s is entered (hooks run in registration order)
func (m *Machine) OnEnter(s GameState, hook Hook) {
	m.enter[s] = append(m.enter[s], hook)
}

// OnExit registers a hook run each time s is exited
func (m *Machine) OnExit(s GameState, hook Hook) {
	m.exit[s] = append(m.exit[s], hook)
}

// Start runs the enter hooks of the initial state. Subsequent calls do nothing.
func (m *Machine) Start() error {
	if m.started {
		return nil
	}
	m.started = true
	m.logger.Info("state machine started", zap.Stringer("state", m.current))
	if err := run(m.enter[m.current]); err != nil {
		return fmt.Errorf("enter %s: %w", m.current, err)
	}
	return nil
}

// Current returns the active state
func (m *Machine) Current() GameState {
	return m.current
}

// Pending returns the requested next state, if any
func (m *Machine) Pending() (GameState, bool) {
	return m.pending, m.hasPending
}

// Request asks for a transition to next at the end of the frame.
// The last request of a frame wins.
func (m *Machine) Request(next GameState) error {
	if !next.Valid() {
		return fmt.Errorf("request transition: invalid state %d", int(next))
	}
	m.pending = next
	m.hasPending = true
	return nil
}

// Apply performs the pending transition, if any, and reports whether the state changed.
// A request for the current state is dropped without running hooks.
func (m *Machine) Apply() (bool, error) {
	if !m.hasPending {
		return false, nil
	}
	next := m.pending
	m.hasPending = false

	if next == m.current {
		return false, nil
	}

	prev := m.current
	if err := run(m.exit[prev]); err != nil {
		return false, fmt.Errorf("exit %s: %w", prev, err)
	}
	m.current = next
	m.logger.Info("state transition", zap.Stringer("from", prev), zap.Stringer("to", next))
	if err := run(m.enter[next]); err != nil {
		return true, fmt.Errorf("enter %s: %w", next, err)
	}
	return true, nil
}

func run(hooks []Hook) error {
	for _, h := range hooks {
		if err := h(); err != nil {
			return err
		}
	}
	return nil
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/cubesim/internal/application/state"
)

// fakeWindow records cursor commands
type fakeWindow struct {
	visible  bool
	lock     CursorLock
	commands int
}

func (f *fakeWindow) SetCursorVisible(visible bool) {
	f.visible = visible
	f.commands++
}

func (f *fakeWindow) SetCursorLock(lock CursorLock) {
	f.lock = lock
	f.commands++
}

func TestCursorPolicy_Apply(t *testing.T) {
	win := &fakeWindow{visible: true}
	p := NewCursorPolicy(win, nil)

	p.Apply(state.StatePlaying)
	assert.False(t, win.visible)
	assert.Equal(t, CursorLocked, win.lock)

	p.Apply(state.StatePlaying)
	assert.False(t, win.visible, "idempotent")
	assert.Equal(t, CursorLocked, win.lock)

	p.Apply(state.StateMenu)
	assert.True(t, win.visible)
	assert.Equal(t, CursorFree, win.lock)
}

func TestCursorPolicy_Bind(t *testing.T) {
	win := &fakeWindow{}
	m := state.NewMachine(state.StateMenu, nil)
	NewCursorPolicy(win, nil).Bind(m)

	require.NoError(t, m.Start())
	assert.True(t, win.visible)
	assert.Equal(t, CursorFree, win.lock)

	require.NoError(t, m.Request(state.StatePlaying))
	_, err := m.Apply()
	require.NoError(t, err)
	assert.False(t, win.visible)
	assert.Equal(t, CursorLocked, win.lock)

	require.NoError(t, m.Request(state.StateMenu))
	_, err = m.Apply()
	require.NoError(t, err)
	assert.True(t, win.visible)
	assert.Equal(t, CursorFree, win.lock)
}

func TestCursorLock_String(t *testing.T) {
	assert.Equal(t, "Free", CursorFree.String())
	assert.Equal(t, "Locked", CursorLocked.String())
	assert.Equal(t, "Unknown", CursorLock(3).String())
}

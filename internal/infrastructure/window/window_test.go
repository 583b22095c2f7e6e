package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/cubesim/internal/application/state"
	"github.com/younwookim/cubesim/internal/application/system"
)

func createTestWindow() (*Window, *[]ebiten.CursorModeType) {
	var modes []ebiten.CursorModeType
	w := New()
	w.apply = func(m ebiten.CursorModeType) { modes = append(modes, m) }
	return w, &modes
}

func TestWindow_Mode(t *testing.T) {
	tests := []struct {
		name    string
		visible bool
		lock    system.CursorLock
		want    ebiten.CursorModeType
	}{
		{"visible free", true, system.CursorFree, ebiten.CursorModeVisible},
		{"hidden free", false, system.CursorFree, ebiten.CursorModeHidden},
		{"hidden locked", false, system.CursorLocked, ebiten.CursorModeCaptured},
		{"visible locked", true, system.CursorLocked, ebiten.CursorModeCaptured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := createTestWindow()
			w.visible, w.lock = tt.visible, tt.lock
			assert.Equal(t, tt.want, w.Mode())
		})
	}
}

func TestWindow_CursorPolicy(t *testing.T) {
	w, modes := createTestWindow()
	policy := system.NewCursorPolicy(w, nil)

	policy.Apply(state.StatePlaying)
	assert.Equal(t, ebiten.CursorModeCaptured, (*modes)[len(*modes)-1])

	policy.Apply(state.StateMenu)
	assert.Equal(t, ebiten.CursorModeVisible, (*modes)[len(*modes)-1])
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCube(t *testing.T) {
	c := NewCube()
	assert.Equal(t, 0.1, c.Speed)
}

func TestSpeedForDigit(t *testing.T) {
	tests := []struct {
		digit  int
		want   float64
		wantOK bool
	}{
		{0, 10.0, true},
		{1, 0.1, true},
		{5, 0.5, true},
		{9, 0.9, true},
		{-1, 0, false},
		{10, 0, false},
	}

	for _, tt := range tests {
		speed, ok := SpeedForDigit(tt.digit)
		assert.Equal(t, tt.wantOK, ok, "digit %d", tt.digit)
		assert.InDelta(t, tt.want, speed, 1e-12, "digit %d", tt.digit)
	}
}

func TestCameraKind_String(t *testing.T) {
	assert.Equal(t, "2D", Camera2D.String())
	assert.Equal(t, "3D", Camera3D.String())
	assert.Equal(t, "Unknown", CameraKind(7).String())
}

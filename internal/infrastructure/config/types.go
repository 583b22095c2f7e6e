package config

import (
	"errors"
	"fmt"
)

// GameConfig is the root config for game.json
type GameConfig struct {
	Display   DisplayConfig   `json:"display"`
	Cube      CubeConfig      `json:"cube"`
	Camera    CameraConfig    `json:"camera"`
	Playfield PlayfieldConfig `json:"playfield"`
	Menu      MenuConfig      `json:"menu"`
	Logging   LoggingConfig   `json:"logging"`
}

type DisplayConfig struct {
	Title        string `json:"title" env:"CUBESIM_TITLE"`
	ScreenWidth  int    `json:"screenWidth" env:"CUBESIM_SCREEN_WIDTH"`
	ScreenHeight int    `json:"screenHeight" env:"CUBESIM_SCREEN_HEIGHT"`
	Fullscreen   bool   `json:"fullscreen" env:"CUBESIM_FULLSCREEN"`
	Framerate    int    `json:"framerate" env:"CUBESIM_FRAMERATE"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level       string `json:"level" env:"CUBESIM_LOG_LEVEL"`
	Format      string `json:"format" env:"CUBESIM_LOG_FORMAT"` // json or console
	Development bool   `json:"development" env:"CUBESIM_LOG_DEVELOPMENT"`
}

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation divides by or sizes against
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity must be positive, got %g", c.Camera.Sensitivity))
	}
	if c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0, 180), got %g", c.Camera.FovDeg))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes invalid: near %g far %g", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Spawn.Sub(c.Cube.Spawn).Len() == 0 {
		errs = append(errs, errors.New("camera spawn must differ from cube spawn"))
	}
	if c.Cube.Speed < 0 {
		errs = append(errs, fmt.Errorf("cube speed must not be negative, got %g", c.Cube.Speed))
	}
	for i, b := range c.Menu.Buttons {
		if _, err := b.ParseAction(); err != nil {
			errs = append(errs, fmt.Errorf("menu button %d: %w", i, err))
		}
	}
	for i, p := range c.Playfield.Planes {
		if _, err := ParseColor(p.Color); err != nil {
			errs = append(errs, fmt.Errorf("plane %d: %w", i, err))
		}
	}
	if _, err := ParseColor(c.Cube.Color); err != nil {
		errs = append(errs, fmt.Errorf("cube: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

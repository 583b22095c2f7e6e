package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides display and logging settings from CUBESIM_* environment variables.
// Unset variables leave the file values alone.
func ApplyEnv(cfg *GameConfig) error {
	if err := env.Parse(&cfg.Display); err != nil {
		return fmt.Errorf("parse display env: %w", err)
	}
	if err := env.Parse(&cfg.Logging); err != nil {
		return fmt.Errorf("parse logging env: %w", err)
	}
	return nil
}

// LoadAll loads game.json, applies environment overrides and validates the result
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

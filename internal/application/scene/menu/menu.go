// Package menu provides the main menu scene.
package menu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cubesim/internal/application/scene"
	"github.com/younwookim/cubesim/internal/application/state"
	"github.com/younwookim/cubesim/internal/application/system"
	"github.com/younwookim/cubesim/internal/domain/entity"
	"github.com/younwookim/cubesim/internal/ecs"
	"github.com/younwookim/cubesim/internal/infrastructure/config"
	"github.com/younwookim/cubesim/internal/infrastructure/render"
	"go.uber.org/zap"
)

const titleGap = 30 // pixels between the title and the first button

// Menu is the main menu scene: a title and a column of buttons
type Menu struct {
	world   *ecs.World
	machine *state.Machine
	buttons *system.ButtonSystem
	cfg     config.MenuConfig
	screenW int
	screenH int
	logger  *zap.Logger

	camera ecs.EntityID
}

// New creates a new Menu scene
func New(w *ecs.World, m *state.Machine, cfg *config.GameConfig, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{
		world:   w,
		machine: m,
		buttons: system.NewButtonSystem(),
		cfg:     cfg.Menu,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
		logger:  logger.Named("menu"),
	}
}

// OnEnter spawns the UI camera, the title and the buttons (implements scene.Scene)
func (s *Menu) OnEnter() error {
	s.camera = s.world.Spawn(scene.TagMenu)
	s.world.Camera[s.camera] = ecs.Camera{Kind: entity.Camera2D, Active: true}

	layout := s.Layout()

	title := s.world.Spawn(scene.TagMenu)
	x, y := render.TextOrigin(s.cfg.Title, float64(s.screenW)/2, layout[0].Y-titleGap)
	s.world.Transform[title] = ecs.NewTransform(x, y, 0)
	s.world.Text[title] = ecs.Text{Value: s.cfg.Title, Size: 20, Color: entity.ColorYellow}

	for i, bc := range s.cfg.Buttons {
		action, err := bc.ParseAction()
		if err != nil {
			return fmt.Errorf("menu button %d: %w", i, err)
		}
		id := s.world.Spawn(scene.TagMenu)
		s.world.Transform[id] = ecs.NewTransform(layout[i].X, layout[i].Y, 0)
		s.world.Button[id] = entity.NewButton(action, bc.Label, layout[i])
	}

	s.logger.Debug("menu spawned", zap.Int("entities", s.world.CountTag(scene.TagMenu)))
	return nil
}

// Layout returns the bounds of each configured button: a centred column
// with sizes relative to the screen width
func (s *Menu) Layout() []entity.Rect {
	n := len(s.cfg.Buttons)
	if n == 0 {
		return []entity.Rect{{X: float64(s.screenW) / 2, Y: float64(s.screenH) / 2}}
	}

	width := s.cfg.ButtonWidthVw / 100 * float64(s.screenW)
	height := s.cfg.ButtonHeightVw / 100 * float64(s.screenW)
	total := float64(n)*height + float64(n-1)*s.cfg.Margin

	x := (float64(s.screenW) - width) / 2
	y := (float64(s.screenH) - total) / 2

	rects := make([]entity.Rect, n)
	for i := range rects {
		rects[i] = entity.Rect{X: x, Y: y, Width: width, Height: height}
		y += height + s.cfg.Margin
	}
	return rects
}

// OnExit removes everything the menu spawned (implements scene.Scene)
func (s *Menu) OnExit() error {
	removed := s.world.DespawnTag(scene.TagMenu)
	s.camera = 0
	s.logger.Debug("menu despawned", zap.Int("entities", removed))
	return nil
}

// Update runs the button system (implements scene.Scene)
func (s *Menu) Update(in system.Snapshot) error {
	for _, action := range s.buttons.Update(s.world, in) {
		s.logger.Info("button pressed", zap.Stringer("action", action))
		switch action {
		case entity.ActionPlayGame:
			if err := s.machine.Request(state.StatePlaying); err != nil {
				return err
			}
		case entity.ActionDismiss:
			return scene.ErrQuit
		}
	}
	return nil
}

// Draw renders the menu (implements scene.Scene)
func (s *Menu) Draw(screen *ebiten.Image) {
	render.DrawMenu(screen, s.world)
}

// Camera returns the UI camera, zero when the menu is not active
func (s *Menu) Camera() ecs.EntityID {
	return s.camera
}

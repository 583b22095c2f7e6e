// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/cubesim/internal/application/scene"
	"github.com/younwookim/cubesim/internal/application/state"
	"github.com/younwookim/cubesim/internal/application/system"
	"github.com/younwookim/cubesim/internal/domain/entity"
	"github.com/younwookim/cubesim/internal/ecs"
	"github.com/younwookim/cubesim/internal/infrastructure/config"
	"github.com/younwookim/cubesim/internal/infrastructure/render"
	"go.uber.org/zap"
)

// Playing is the main gameplay scene
type Playing struct {
	world   *ecs.World
	machine *state.Machine
	config  *config.GameConfig
	logger  *zap.Logger

	controller *system.CubeController
	orbit      *system.OrbitCamera
	renderer   *render.Wireframe

	// Singleton handles, valid while Playing
	cube   ecs.EntityID
	camera ecs.EntityID
}

// New creates a new Playing scene. rng drives the camera reset.
func New(w *ecs.World, m *state.Machine, cfg *config.GameConfig, rng *rand.Rand, logger *zap.Logger) *Playing {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Playing{
		world:      w,
		machine:    m,
		config:     cfg,
		logger:     logger.Named("playing"),
		controller: system.NewCubeController(),
		orbit:      system.NewOrbitCamera(cfg.Camera.Sensitivity, cfg.Camera.ResetOffset, rng),
		renderer:   render.NewWireframe(cfg.Camera, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
	}
}

// OnEnter spawns the cube with its lights, the ground planes and the
// orbit camera (implements scene.Scene)
func (p *Playing) OnEnter() error {
	if err := p.spawnCube(); err != nil {
		return err
	}
	if err := p.spawnPlanes(); err != nil {
		return err
	}
	p.spawnCamera()

	if err := p.validate(); err != nil {
		p.logger.Error("invalid playing scene", zap.Error(err))
		return err
	}
	p.logger.Debug("playing spawned", zap.Int("entities", p.world.CountTag(scene.TagPlaying)))
	return nil
}

func (p *Playing) spawnCube() error {
	cfg := p.config.Cube
	clr, err := config.ParseColor(cfg.Color)
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}

	p.cube = p.world.Spawn(scene.TagPlaying)
	p.world.Transform[p.cube] = ecs.NewTransform(cfg.Spawn.X(), cfg.Spawn.Y(), cfg.Spawn.Z())
	p.world.Mesh[p.cube] = ecs.Mesh{Shape: entity.ShapeCuboid, Size: cfg.Size, Color: clr}

	cube := entity.NewCube()
	if cfg.Speed > 0 {
		cube.Speed = cfg.Speed
	}
	p.world.Cube[p.cube] = cube

	for _, lc := range p.config.Playfield.Lights {
		light, err := p.world.SpawnChild(p.cube)
		if err != nil {
			return fmt.Errorf("cube light: %w", err)
		}
		p.world.Transform[light] = ecs.NewTransform(lc.Offset.X(), lc.Offset.Y(), lc.Offset.Z())
		p.world.Light[light] = ecs.Light{Intensity: lc.Intensity}
	}
	return nil
}

func (p *Playing) spawnPlanes() error {
	for i, pc := range p.config.Playfield.Planes {
		clr, err := config.ParseColor(pc.Color)
		if err != nil {
			return fmt.Errorf("plane %d: %w", i, err)
		}
		id := p.world.Spawn(scene.TagPlaying)
		p.world.Mesh[id] = ecs.Mesh{
			Shape:  entity.ShapePlane,
			Size:   mgl64.Vec3{pc.HalfSize, 0, pc.HalfSize},
			Normal: pc.Normal,
			Color:  clr,
		}
	}
	return nil
}

func (p *Playing) spawnCamera() {
	spawn := p.config.Camera.Spawn
	p.camera = p.world.Spawn(scene.TagPlaying)
	p.world.Camera[p.camera] = ecs.Camera{Kind: entity.Camera3D, Active: true}
	p.world.Transform[p.camera] = system.Aim(
		ecs.NewTransform(spawn.X(), spawn.Y(), spawn.Z()),
		p.world.WorldPosition(p.cube),
	)
}

// validate checks that exactly one cube and one active camera exist
func (p *Playing) validate() error {
	if cubes := p.world.Cubes(); len(cubes) != 1 || cubes[0] != p.cube {
		return fmt.Errorf("expected one cube, found %d: %w", len(cubes), system.ErrInvariant)
	}
	if cams := p.world.ActiveCameras(); len(cams) != 1 || cams[0] != p.camera {
		return fmt.Errorf("expected one active camera, found %d: %w", len(cams), system.ErrInvariant)
	}
	return nil
}

// OnExit removes everything spawned on enter (implements scene.Scene)
func (p *Playing) OnExit() error {
	removed := p.world.DespawnTag(scene.TagPlaying)
	p.cube, p.camera = 0, 0
	p.logger.Debug("playing despawned", zap.Int("entities", removed))
	return nil
}

// Update moves the cube, then orbits and re-aims the camera (implements scene.Scene)
func (p *Playing) Update(in system.Snapshot) error {
	cancel, err := p.controller.Update(p.world, p.cube, in)
	if err != nil {
		p.logger.Error("cube update failed", zap.Error(err))
		return err
	}
	if cancel {
		if err := p.machine.Request(state.StateMenu); err != nil {
			return err
		}
	}

	if err := p.orbit.Update(p.world, p.cube, p.camera, in); err != nil {
		p.logger.Error("camera update failed", zap.Error(err))
		return err
	}
	return nil
}

// Draw renders the game screen (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	p.renderer.Draw(screen, p.world, p.camera)

	cube := p.world.Cube[p.cube]
	pos := p.world.WorldPosition(p.cube)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("speed %.1f  pos (%.1f, %.1f, %.1f)\n1-9,0 speed  WASD move  R reset  ESC menu",
		cube.Speed, pos.X(), pos.Y(), pos.Z()))
}

// Cube returns the cube handle, zero when not playing
func (p *Playing) Cube() ecs.EntityID {
	return p.cube
}

// Camera returns the camera handle, zero when not playing
func (p *Playing) Camera() ecs.EntityID {
	return p.camera
}

package game

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"voxcraft/assets"
	"voxcraft/internal/atlas"
	"voxcraft/internal/graphics"
	"voxcraft/internal/graphics/renderables/chunks"
	"voxcraft/internal/graphics/renderables/selection"
	"voxcraft/internal/graphics/renderer"
	"voxcraft/internal/input"
	"voxcraft/internal/meshing"
	"voxcraft/internal/player"
	"voxcraft/internal/profiling"
	"voxcraft/internal/state"
	"voxcraft/internal/world"
)

// TextureLayers is the capacity of the block texture array.
const TextureLayers = 256

// PlacedBlock is what a right click puts into the world.
const PlacedBlock = world.BlockTypeStone

type Session struct {
	env *state.LocalEnv
	log *zap.Logger

	Window   *glfw.Window
	Input    *input.InputManager
	Renderer *renderer.Renderer
	Chunks   *chunks.Chunks
	World    *world.World
	Grid     *meshing.ChunkGrid
	Player   *player.Player
	Timer    *profiling.Timer

	Paused bool
}

// NewSession loads the world, builds every chunk mesh and prepares the
// renderer. The window's GL context must be current.
func NewSession(ctx context.Context, env *state.LocalEnv, window *glfw.Window, im *input.InputManager) (*Session, error) {
	log := env.Log.Named("game")

	w, err := LoadWorld(env)
	if err != nil {
		return nil, err
	}

	textures, err := atlas.Load(assets.FS, assets.BlockTexturesDir, TextureLayers)
	if err != nil {
		return nil, fmt.Errorf("unable to load block textures: %w", err)
	}

	grid := meshing.NewChunkGrid(w, textures, env.Cfg.Render.MeshWorkers, env.Log)
	stats, err := grid.RebuildDirty(ctx)
	if err != nil {
		grid.Close()
		return nil, fmt.Errorf("unable to build chunk meshes: %w", err)
	}
	log.Info("Chunk meshes built",
		zap.Int("chunks", stats.Chunks), zap.Int("faces", stats.Faces), zap.Duration("elapsed", stats.Duration))

	p := player.New(w, nil)
	p.SpawnOnGround()

	width, height := window.GetFramebufferSize()
	camera := graphics.NewCamera(width, height, env.Cfg.Render.FOV, env.Cfg.Render.Near, env.Settings.FarPlane())

	chunkRenderer := chunks.NewChunks(grid, textures, env.Log)
	r, err := renderer.NewRenderer(camera, env.Log, chunkRenderer, selection.NewSelection())
	if err != nil {
		grid.Close()
		return nil, err
	}
	r.UpdateViewport(width, height)

	timer := profiling.NewTimer(log)
	timer.Start()

	return &Session{
		env:      env,
		log:      log,
		Window:   window,
		Input:    im,
		Renderer: r,
		Chunks:   chunkRenderer,
		World:    w,
		Grid:     grid,
		Player:   p,
		Timer:    timer,
	}, nil
}

// Cleanup saves the world and releases GL objects and mesh workers.
func (s *Session) Cleanup() error {
	err := SaveWorld(s.env, s.World)
	err = multierr.Append(err, s.Renderer.Dispose())
	s.Grid.Close()
	return err
}

// Update advances the game by dt seconds.
func (s *Session) Update(ctx context.Context, dt float64) error {
	s.handleInputActions()

	if !s.Paused {
		forward, strafe := s.Input.Movement()
		s.Player.SetInput(forward, strafe)
		if s.Input.IsActive(input.ActionJump) {
			s.Player.Jump()
		}
		dx, dy := s.Input.CursorDelta()
		s.Player.Look(float32(dx), float32(dy))

		if s.Input.JustPressed(input.ActionBreakBlock) {
			s.Player.BreakTarget()
		}
		if s.Input.JustPressed(input.ActionPlaceBlock) {
			s.Player.PlaceAtTarget(PlacedBlock)
		}
		s.Player.Update(float32(dt))
	}

	if s.Grid.DirtyCount() > 0 {
		if _, err := s.Grid.RebuildDirty(ctx); err != nil {
			return err
		}
	}
	s.Timer.Update()
	return nil
}

func (s *Session) Render(dt float64) {
	s.Renderer.GetCamera().FarPlane = s.env.Settings.FarPlane()
	s.Renderer.Render(s.World, s.Player, dt)
	s.Timer.Frame()
}

func (s *Session) SetPaused(paused bool) {
	s.Paused = paused
	if s.Paused {
		s.Player.SetInput(0, 0)
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		s.Input.ResetCursor()
	}
	s.log.Debug("Pause toggled", zap.Bool("paused", paused))
}

func (s *Session) handleInputActions() {
	im := s.Input
	settings := s.env.Settings

	if im.JustPressed(input.ActionPause) {
		s.SetPaused(!s.Paused)
	}

	if im.JustPressed(input.ActionResetPosition) {
		s.Player.ResetPosition()
	}

	if im.JustPressed(input.ActionSave) {
		if err := SaveWorld(s.env, s.World); err != nil {
			s.log.Error("Save failed", zap.Error(err))
		}
	}

	if im.JustPressed(input.ActionToggleProfiling) {
		s.Timer.Verbose = settings.ToggleProfile()
	}

	if im.JustPressed(input.ActionRenderDistanceUp) {
		settings.SetRenderDistance(settings.RenderDistance() + 1)
		s.log.Info("Render distance", zap.Int("chunks", settings.RenderDistance()))
	}
	if im.JustPressed(input.ActionRenderDistanceDown) {
		settings.SetRenderDistance(settings.RenderDistance() - 1)
		s.log.Info("Render distance", zap.Int("chunks", settings.RenderDistance()))
	}
}

package renderer

import (
	"voxcraft/internal/graphics"
	"voxcraft/internal/player"
	"voxcraft/internal/world"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera  *graphics.Camera
	Frustum *graphics.Frustum
	World   *world.World
	Player  *player.Player
	DT      float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose() error
	SetViewport(width, height int)
}

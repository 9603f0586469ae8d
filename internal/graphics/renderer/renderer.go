package renderer

import (
	"voxcraft/internal/graphics"
	"voxcraft/internal/player"
	"voxcraft/internal/profiling"
	"voxcraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	log         *zap.Logger
}

// NewRenderer configures GL state and initializes the renderables in order.
func NewRenderer(camera *graphics.Camera, log *zap.Logger, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
		log:         log.Named("renderer"),
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			// dispose what was already initialized
			for j := i - 1; j >= 0; j-- {
				err = multierr.Append(err, rs[j].Dispose())
			}
			return nil, err
		}
	}
	renderer.log.Debug("Renderer ready", zap.Int("renderables", len(rs)))

	return renderer, nil
}

// Render executes the main render loop
func (r *Renderer) Render(w *world.World, p *player.Player, dt float64) {
	defer profiling.Track("renderer.Render")()

	// Clear the screen
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.camera.Update(p.Eyes(), p.Facing())
	frustum := graphics.NewFrustum(r.camera.ViewProjection)

	ctx := RenderContext{
		Camera:  r.camera,
		Frustum: &frustum,
		World:   w,
		Player:  p,
		DT:      dt,
	}

	// Render all features
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() error {
	var err error
	for i := len(r.renderables) - 1; i >= 0; i-- {
		err = multierr.Append(err, r.renderables[i].Dispose())
	}
	return err
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the GL viewport and the camera's aspect ratio
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

package selection

import (
	"voxcraft/internal/graphics"
	renderer "voxcraft/internal/graphics/renderer"
	"voxcraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Selection outlines the block the player is looking at
type Selection struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewSelection() *Selection {
	return &Selection{}
}

// Init initializes the outline rendering system
func (s *Selection) Init() error {
	var err error
	s.shader, err = graphics.NewShader(graphics.SelectionProgram)
	if err != nil {
		return err
	}
	s.setupVAO()
	return graphics.CheckError("selection.Init")
}

// Render draws the outline of the targeted block
func (s *Selection) Render(ctx renderer.RenderContext) {
	target := ctx.Player.Target()
	if !target.Hit {
		return
	}
	defer profiling.Track("selection.Render")()

	s.shader.Use()
	vp := ctx.Camera.ViewProjection
	s.shader.SetMatrix4("viewProjection", &vp[0])

	// cube vertices are centred on the origin, blocks span [p, p+1]
	model := mgl32.Translate3D(
		float32(target.Position[0])+0.5,
		float32(target.Position[1])+0.5,
		float32(target.Position[2])+0.5,
	).Mul4(mgl32.Scale3D(1.01, 1.01, 1.01))
	s.shader.SetMatrix4("model", &model[0])
	s.shader.SetVector3("color", 0.0, 0.0, 0.0) // Black outline

	gl.BindVertexArray(s.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 24) // 24 vertices for cube wireframe
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (s *Selection) Dispose() error {
	if s.shader != nil {
		s.shader.Delete()
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	return graphics.CheckError("selection.Dispose")
}

func (s *Selection) SetViewport(int, int) {}

func (s *Selection) setupVAO() {
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
		0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
		0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

		// Back face
		-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
		0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
		0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

		// Connecting edges
		-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
		0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
		0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
		-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
	}

	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
}

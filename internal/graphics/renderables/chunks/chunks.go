package chunks

import (
	"voxcraft/internal/atlas"
	"voxcraft/internal/face"
	"voxcraft/internal/graphics"
	renderer "voxcraft/internal/graphics/renderer"
	"voxcraft/internal/meshing"
	"voxcraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	pushConstantBinding = 0
	facesUnit           = 0
	texturesUnit        = 1
)

// Chunks draws every chunk mesh of a grid. Face words of all chunks live
// in one texture buffer, each chunk at its FirstFaceOffset. A chunk is a
// single instanced draw of one quad per face.
type Chunks struct {
	grid  *meshing.ChunkGrid
	atlas *atlas.Atlas
	log   *zap.Logger

	shader      *graphics.Shader
	vao         uint32
	ebo         uint32
	faceBuffer  uint32
	faceTexture uint32
	ubo         uint32
	textures    uint32

	uploaded []uint64
	counts   []int32

	// Visible is the number of chunks drawn in the last frame.
	Visible int
}

func NewChunks(grid *meshing.ChunkGrid, a *atlas.Atlas, log *zap.Logger) *Chunks {
	n := len(grid.Meshes())
	return &Chunks{
		grid:     grid,
		atlas:    a,
		log:      log.Named("chunks"),
		uploaded: make([]uint64, n),
		counts:   make([]int32, n),
	}
}

// Init initializes the chunk rendering system
func (c *Chunks) Init() error {
	var err error
	c.shader, err = graphics.NewShader(graphics.BlocksProgram)
	if err != nil {
		return err
	}
	if err := c.shader.BindUniformBlock("ChunkPushConstant", pushConstantBinding); err != nil {
		return err
	}

	// Corners come from gl_VertexID, so the VAO has no attributes.
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(face.QuadIndices)*2, gl.Ptr(face.QuadIndices[:]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	size := len(c.grid.Meshes()) * meshing.MaxFaces * 4
	gl.GenBuffers(1, &c.faceBuffer)
	gl.BindBuffer(gl.TEXTURE_BUFFER, c.faceBuffer)
	gl.BufferData(gl.TEXTURE_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.GenTextures(1, &c.faceTexture)
	gl.BindTexture(gl.TEXTURE_BUFFER, c.faceTexture)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.R32UI, c.faceBuffer)
	gl.BindTexture(gl.TEXTURE_BUFFER, 0)
	gl.BindBuffer(gl.TEXTURE_BUFFER, 0)

	gl.GenBuffers(1, &c.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, c.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, graphics.ChunkPushConstantSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, pushConstantBinding, c.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	c.textures = graphics.UploadTextureArray(c.atlas)

	c.log.Info("Chunk renderer ready",
		zap.Int("chunks", len(c.counts)), zap.Int("faceBufferBytes", size),
		zap.Int("textures", c.atlas.Len()), zap.Int("mipLevels", c.atlas.MipLevels()))
	return graphics.CheckError("chunks.Init")
}

// upload copies rebuilt meshes into the face buffer.
func (c *Chunks) upload() {
	defer profiling.Track("chunks.upload")()

	gl.BindBuffer(gl.TEXTURE_BUFFER, c.faceBuffer)
	for _, m := range c.grid.Meshes() {
		v := m.Version()
		if v == c.uploaded[m.ID] {
			continue
		}
		faces := m.Faces()
		if len(faces) > 0 {
			gl.BufferSubData(gl.TEXTURE_BUFFER, int(m.FirstFaceOffset())*4, len(faces)*4, gl.Ptr(faces))
		}
		c.counts[m.ID] = int32(len(faces))
		c.uploaded[m.ID] = v
	}
	gl.BindBuffer(gl.TEXTURE_BUFFER, 0)
}

// Render draws the visible chunks
func (c *Chunks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("chunks.Render")()

	c.upload()

	c.shader.Use()
	vp := ctx.Camera.ViewProjection
	c.shader.SetMatrix4("viewProjection", &vp[0])
	c.shader.SetInt("faces", facesUnit)
	c.shader.SetInt("textures", texturesUnit)

	gl.ActiveTexture(gl.TEXTURE0 + facesUnit)
	gl.BindTexture(gl.TEXTURE_BUFFER, c.faceTexture)
	gl.ActiveTexture(gl.TEXTURE0 + texturesUnit)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, c.textures)

	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.UNIFORM_BUFFER, c.ubo)

	c.Visible = 0
	for _, m := range c.grid.Meshes() {
		count := c.counts[m.ID]
		if count == 0 {
			continue
		}
		lo := mgl32.Vec3{float32(m.Origin[0]), float32(m.Origin[1]), float32(m.Origin[2])}
		hi := lo.Add(mgl32.Vec3{16, 16, 16})
		if ctx.Frustum != nil && !ctx.Frustum.IntersectsBox(lo, hi) {
			continue
		}
		pc := graphics.ChunkPushConstant{
			Transformation: m.Translation(),
			FirstFaceIndex: m.FirstFaceOffset(),
		}
		gl.BufferSubData(gl.UNIFORM_BUFFER, 0, graphics.ChunkPushConstantSize, gl.Ptr(pc.Bytes()))
		gl.DrawElementsInstanced(gl.TRIANGLES, int32(len(face.QuadIndices)), gl.UNSIGNED_SHORT, nil, count)
		c.Visible++
	}

	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (c *Chunks) Dispose() error {
	if c.shader != nil {
		c.shader.Delete()
	}
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	for _, b := range []*uint32{&c.ebo, &c.faceBuffer, &c.ubo} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
		}
	}
	for _, t := range []*uint32{&c.faceTexture, &c.textures} {
		if *t != 0 {
			gl.DeleteTextures(1, t)
		}
	}
	return graphics.CheckError("chunks.Dispose")
}

func (c *Chunks) SetViewport(int, int) {}

package meshing

import (
	"voxcraft/internal/face"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one corner of an expanded face, as the vertex shader sees it.
type Vertex struct {
	Position   mgl32.Vec3
	UV         mgl32.Vec2
	Layer      uint32
	Brightness float32
}

// Expand turns a packed face into its four corners, placed relative to the
// chunk origin. Used by headless tools and tests; the GPU does the same
// work in blocks.vert. A word whose face field is 6 or 7 expands to zero
// vertices and reports false.
func Expand(p PackedFace, origin mgl32.Vec3) ([face.Corners]Vertex, bool) {
	var out [face.Corners]Vertex
	f := p.Face()
	if !f.Valid() {
		return out, false
	}
	x, y, z := p.Local()
	base := origin.Add(mgl32.Vec3{float32(x), float32(y), float32(z)})
	bright := face.Brightness(p.Light())

	for i := range out {
		out[i] = Vertex{
			Position:   base.Add(face.FaceVertices[f][i]),
			UV:         face.TexturePositions[i],
			Layer:      p.Texture(),
			Brightness: bright,
		}
	}
	return out, true
}

// Triangles expands a whole mesh into an indexed triangle list. Words with
// an invalid face are skipped.
func Triangles(faces []PackedFace, origin mgl32.Vec3) ([]Vertex, []uint32) {
	verts := make([]Vertex, 0, len(faces)*face.Corners)
	idx := make([]uint32, 0, len(faces)*len(face.QuadIndices))
	for _, p := range faces {
		q, ok := Expand(p, origin)
		if !ok {
			continue
		}
		base := uint32(len(verts))
		verts = append(verts, q[:]...)
		for _, i := range face.QuadIndices {
			idx = append(idx, base+uint32(i))
		}
	}
	return verts, idx
}

package meshing

import (
	"fmt"
	"sync"
	"sync/atomic"

	"voxcraft/internal/face"
	"voxcraft/internal/profiling"
	"voxcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureLookup resolves a block texture name to its texture array layer.
type TextureLookup interface {
	TextureIndex(name string) (uint32, error)
}

// ChunkMesh holds the visible faces of one 16³ chunk.
type ChunkMesh struct {
	ID uint32
	// Origin is the world block coordinate of the chunk's lowest corner.
	Origin [3]int

	buildMu sync.Mutex
	builder *FaceBuilder
	dirty   atomic.Bool

	mu      sync.RWMutex
	faces   []PackedFace
	version uint64
}

// NewChunkMesh creates a dirty mesh for the chunk at chunk coordinates cx, cy, cz.
func NewChunkMesh(id uint32, cx, cy, cz int) *ChunkMesh {
	m := &ChunkMesh{
		ID:      id,
		Origin:  [3]int{cx * world.ChunkSize, cy * world.ChunkSize, cz * world.ChunkSize},
		builder: NewFaceBuilder(),
	}
	m.dirty.Store(true)
	return m
}

func (m *ChunkMesh) MarkDirty() {
	m.dirty.Store(true)
}

func (m *ChunkMesh) Dirty() bool {
	return m.dirty.Load()
}

// FirstFaceOffset is where this chunk's faces start in a buffer shared by all chunks.
func (m *ChunkMesh) FirstFaceOffset() uint32 {
	return m.ID * MaxFaces
}

// Translation moves chunk-local vertex positions into world space.
func (m *ChunkMesh) Translation() mgl32.Mat4 {
	return mgl32.Translate3D(float32(m.Origin[0]), float32(m.Origin[1]), float32(m.Origin[2]))
}

// Faces returns the faces of the last successful rebuild. The returned
// slice is never written to again.
func (m *ChunkMesh) Faces() []PackedFace {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.faces
}

// Version increases with every successful rebuild.
func (m *ChunkMesh) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.version
}

// Rebuild regenerates the faces when the mesh is dirty. It reports whether
// a rebuild happened. Edits arriving while it runs leave the mesh dirty again.
func (m *ChunkMesh) Rebuild(w *world.World, tex TextureLookup) (bool, error) {
	m.buildMu.Lock()
	defer m.buildMu.Unlock()

	if !m.dirty.Swap(false) {
		return false, nil
	}
	defer profiling.Track("meshing.Rebuild")()

	if err := m.build(w, tex); err != nil {
		m.dirty.Store(true)
		return false, fmt.Errorf("chunk %d: %w", m.ID, err)
	}

	faces := make([]PackedFace, m.builder.Len())
	copy(faces, m.builder.Faces())

	m.mu.Lock()
	m.faces = faces
	m.version++
	m.mu.Unlock()
	return true, nil
}

func (m *ChunkMesh) build(w *world.World, tex TextureLookup) error {
	b := m.builder
	b.Begin(m.ID)

	layers := make(map[world.BlockType]uint32, 4)
	ox, oy, oz := m.Origin[0], m.Origin[1], m.Origin[2]

	for y := range world.ChunkSize {
		for x := range world.ChunkSize {
			for z := range world.ChunkSize {
				wx, wy, wz := ox+x, oy+y, oz+z
				block := w.Block(wx, wy, wz)
				if !block.IsSolid() {
					continue
				}
				layer, ok := layers[block]
				if !ok {
					var err error
					if layer, err = tex.TextureIndex(block.TextureName()); err != nil {
						return fmt.Errorf("block %s: %w", block, err)
					}
					layers[block] = layer
				}
				for _, f := range face.All {
					dx, dy, dz := f.Offset()
					nx, ny, nz := wx+dx, wy+dy, wz+dz
					if !w.IsTransparent(nx, ny, nz) {
						continue
					}
					if err := b.Emit(x, y, z, f, w.LightLevel(nx, ny, nz), layer); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

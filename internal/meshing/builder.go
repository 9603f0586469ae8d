package meshing

import (
	"errors"

	"voxcraft/internal/face"
)

var ErrMeshFull = errors.New("chunk mesh is full")

// FaceBuilder collects the packed faces of one chunk. The backing slice is
// reused between builds.
type FaceBuilder struct {
	chunkID uint32
	faces   []PackedFace
}

func NewFaceBuilder() *FaceBuilder {
	return &FaceBuilder{faces: make([]PackedFace, 0, 1024)}
}

// Begin starts a new build for the chunk, dropping previous faces.
func (b *FaceBuilder) Begin(chunkID uint32) {
	b.chunkID = chunkID
	b.faces = b.faces[:0]
}

func (b *FaceBuilder) ChunkID() uint32 {
	return b.chunkID
}

// Emit appends one face at chunk-local coordinates.
func (b *FaceBuilder) Emit(x, y, z int, f face.Face, light, texture uint32) error {
	if len(b.faces) >= MaxFaces {
		return ErrMeshFull
	}
	p, err := Pack(x, y, z, f, light, texture)
	if err != nil {
		return err
	}
	b.faces = append(b.faces, p)
	return nil
}

// Faces returns the faces emitted since Begin. The slice is only valid
// until the next Begin.
func (b *FaceBuilder) Faces() []PackedFace {
	return b.faces
}

func (b *FaceBuilder) Len() int {
	return len(b.faces)
}

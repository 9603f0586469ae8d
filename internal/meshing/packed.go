package meshing

import (
	"fmt"

	"voxcraft/internal/face"
	"voxcraft/internal/world"
)

// Packed face layout, low bits first:
//
//	0..11   chunk-local position y*256 + x*16 + z
//	12..14  face index
//	15..18  light level
//	19..31  texture layer
const (
	positionBits = 12
	faceBits     = 3
	lightBits    = 4
	textureBits  = 13

	faceShift    = positionBits
	lightShift   = faceShift + faceBits
	textureShift = lightShift + lightBits

	positionMask = 1<<positionBits - 1
	faceMask     = 1<<faceBits - 1
	lightMask    = 1<<lightBits - 1
	textureMask  = 1<<textureBits - 1

	// MaxTexture is the highest texture layer a face word can carry.
	MaxTexture = textureMask
	// MaxFaces bounds the faces of one chunk: every block showing all sides.
	MaxFaces = world.ChunkVolume * face.Count
)

// PackedFace is one visible block face as the vertex stage reads it.
type PackedFace uint32

// Pack encodes a face. x, y and z are chunk-local.
func Pack(x, y, z int, f face.Face, light, texture uint32) (PackedFace, error) {
	if x < 0 || y < 0 || z < 0 || x >= world.ChunkSize || y >= world.ChunkSize || z >= world.ChunkSize {
		return 0, fmt.Errorf("local position (%d,%d,%d) outside chunk", x, y, z)
	}
	if !f.Valid() {
		return 0, face.ErrInvalidFace
	}
	if light > lightMask {
		return 0, fmt.Errorf("light level %d out of range", light)
	}
	if texture > textureMask {
		return 0, fmt.Errorf("texture layer %d out of range", texture)
	}
	pos := uint32(y*world.ChunkArea + x*world.ChunkSize + z)
	return PackedFace(pos | uint32(f)<<faceShift | light<<lightShift | texture<<textureShift), nil
}

func (p PackedFace) Position() uint32 {
	return uint32(p) & positionMask
}

// Local decodes the chunk-local block coordinates.
func (p PackedFace) Local() (x, y, z int) {
	pos := int(p.Position())
	y = pos / world.ChunkArea
	x = pos / world.ChunkSize % world.ChunkSize
	z = pos % world.ChunkSize
	return x, y, z
}

// Face returns the face index. Words written by Pack always decode to a
// valid face; a corrupted word may not.
func (p PackedFace) Face() face.Face {
	return face.Face(uint32(p) >> faceShift & faceMask)
}

func (p PackedFace) Light() uint32 {
	return uint32(p) >> lightShift & lightMask
}

func (p PackedFace) Texture() uint32 {
	return uint32(p) >> textureShift & textureMask
}

func (p PackedFace) String() string {
	x, y, z := p.Local()
	return fmt.Sprintf("%s@(%d,%d,%d) light=%d tex=%d", p.Face(), x, y, z, p.Light(), p.Texture())
}

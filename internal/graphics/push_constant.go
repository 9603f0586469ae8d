package graphics

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkPushConstantSize is the byte size of an encoded ChunkPushConstant.
const ChunkPushConstantSize = 68

// ChunkPushConstant is the per-chunk data handed to blocks.vert.
type ChunkPushConstant struct {
	Transformation mgl32.Mat4
	FirstFaceIndex uint32
}

// Bytes encodes the constant little-endian: the column-major matrix at
// offset 0 and the face index at offset 64. The layout matches a std140
// block of a mat4 followed by a uint.
func (p ChunkPushConstant) Bytes() []byte {
	buf := make([]byte, 0, ChunkPushConstantSize)
	for _, f := range p.Transformation {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return binary.LittleEndian.AppendUint32(buf, p.FirstFaceIndex)
}

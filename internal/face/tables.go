package face

import "github.com/go-gl/mathgl/mgl32"

// FaceVertices holds the unit-cube corners of every face. Corners 0,1,2
// wind counter-clockwise when seen from outside the cube.
var FaceVertices = [Count][Corners]mgl32.Vec3{
	{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}, // Top
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // Bottom
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // West
	{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, // East
	{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, // South
	{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // North
}

// TexturePositions maps corner index to texture coordinate, the same for
// every face.
var TexturePositions = [Corners]mgl32.Vec2{
	{0, 1},
	{1, 1},
	{1, 0},
	{0, 0},
}

const (
	LightShadow = 0
	LightFull   = 1
)

// LightLevels is the brightness applied to a face, indexed by light level.
var LightLevels = [2]float32{
	0.12,
	1.0,
}

// QuadIndices draws a face quad as two triangles.
var QuadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// Brightness returns the multiplier for a face light level. Every non-zero
// level is treated as full light.
func Brightness(level uint32) float32 {
	if level == LightShadow {
		return LightLevels[LightShadow]
	}
	return LightLevels[LightFull]
}

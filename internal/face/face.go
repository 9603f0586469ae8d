// Package face holds the cube-face tables shared by the mesher and the
// block shaders.
package face

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one side of a unit cube. The numeric value is the index
// into FaceVertices and the 3-bit face field of a packed face.
type Face uint8

const (
	Top Face = iota
	Bottom
	West
	East
	South
	North
)

const (
	// Count is the number of faces of a cube
	Count = 6
	// Corners is the number of vertices per face quad
	Corners = 4
)

var ErrInvalidFace = errors.New("invalid face index")

// All lists the faces in table order.
var All = [Count]Face{Top, Bottom, West, East, South, North}

var names = [Count]string{"top", "bottom", "west", "east", "south", "north"}

var normals = [Count]mgl32.Vec3{
	{0, 1, 0},
	{0, -1, 0},
	{-1, 0, 0},
	{1, 0, 0},
	{0, 0, -1},
	{0, 0, 1},
}

// FromIndex converts a raw index (as stored in a packed face) to a Face.
func FromIndex(i uint32) (Face, error) {
	if i >= Count {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFace, i)
	}
	return Face(i), nil
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < Count
}

func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("face(%d)", uint8(f))
	}
	return names[f]
}

// Normal returns the outward unit normal, or the zero vector for an
// invalid face.
func (f Face) Normal() mgl32.Vec3 {
	if !f.Valid() {
		return mgl32.Vec3{}
	}
	return normals[f]
}

// Offset returns the integer step to the neighbouring block across f.
func (f Face) Offset() (dx, dy, dz int) {
	n := f.Normal()
	return int(n[0]), int(n[1]), int(n[2])
}

// Opposite returns the face pointing the other way.
func (f Face) Opposite() Face {
	// faces come in -/+ pairs at even/odd indices
	return f ^ 1
}

// Vertex returns the unit-cube position of the given corner. Invalid faces
// and corners give the zero vector.
func (f Face) Vertex(corner int) mgl32.Vec3 {
	if !f.Valid() || corner < 0 || corner >= Corners {
		return mgl32.Vec3{}
	}
	return FaceVertices[f][corner]
}

// Quad returns the four corners of f translated to origin. An invalid face
// collapses to origin.
func (f Face) Quad(origin mgl32.Vec3) [Corners]mgl32.Vec3 {
	var q [Corners]mgl32.Vec3
	if !f.Valid() {
		for i := range q {
			q[i] = origin
		}
		return q
	}
	for i, v := range FaceVertices[f] {
		q[i] = origin.Add(v)
	}
	return q
}

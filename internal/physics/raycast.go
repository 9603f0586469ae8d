package physics

import (
	"errors"
	"fmt"
	"math"

	"voxcraft/internal/face"
	"voxcraft/internal/profiling"
	"voxcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0

	rayStep = 0.02
)

var ErrNotAdjacent = errors.New("previous cell is not adjacent to hit cell")

// HitResult is the first solid cell along a ray and the empty cell the ray
// came from.
type HitResult struct {
	Position [3]int
	Previous [3]int
	Distance float32
	Hit      bool
}

// Face returns the side of the hit block that the ray entered through.
func (h HitResult) Face() (face.Face, error) {
	d := [3]int{
		h.Previous[0] - h.Position[0],
		h.Previous[1] - h.Position[1],
		h.Previous[2] - h.Position[2],
	}
	switch d {
	case [3]int{0, 1, 0}:
		return face.Top, nil
	case [3]int{0, -1, 0}:
		return face.Bottom, nil
	case [3]int{-1, 0, 0}:
		return face.West, nil
	case [3]int{1, 0, 0}:
		return face.East, nil
	case [3]int{0, 0, -1}:
		return face.South, nil
	case [3]int{0, 0, 1}:
		return face.North, nil
	}
	return 0, fmt.Errorf("%w: hit %v previous %v", ErrNotAdjacent, h.Position, h.Previous)
}

func cellOf(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	}
}

// Raycast marches from start along direction and reports the first solid
// block between minDist and maxDist. Blocks occupy [x,x+1) on every axis.
// When a step crosses more than one cell boundary the intermediate cells
// are visited axis by axis so Previous always shares a face with Position.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, w *world.World) HitResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return HitResult{}
	}
	direction = direction.Normalize()
	steps := int(maxDist / rayStep)

	prev := cellOf(start)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * rayStep
		cell := cellOf(start.Add(direction.Mul(dist)))
		if cell == prev && i > 0 {
			continue
		}

		cur := prev
		for axis := 0; axis < 3 && i > 0; axis++ {
			if cur[axis] == cell[axis] {
				continue
			}
			next := cur
			next[axis] = cell[axis]
			if dist >= minDist && w.IsBlock(next[0], next[1], next[2]) {
				return HitResult{Position: next, Previous: cur, Distance: dist, Hit: true}
			}
			cur = next
		}
		prev = cell
	}
	return HitResult{}
}

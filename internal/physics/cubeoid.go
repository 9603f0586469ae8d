package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cubeoid is a box tested for overlap one projection at a time.
type Cubeoid struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (c Cubeoid) Size() mgl32.Vec3 {
	return c.Max.Sub(c.Min)
}

func (c Cubeoid) Center() mgl32.Vec3 {
	return c.Min.Add(c.Size().Mul(0.5))
}

// XProjectionIntersects tests the YZ projections.
func (c Cubeoid) XProjectionIntersects(o Cubeoid) bool {
	return overlaps(c, o, 1) && overlaps(c, o, 2)
}

// YProjectionIntersects tests the XZ projections.
func (c Cubeoid) YProjectionIntersects(o Cubeoid) bool {
	return overlaps(c, o, 0) && overlaps(c, o, 2)
}

// ZProjectionIntersects tests the XY projections.
func (c Cubeoid) ZProjectionIntersects(o Cubeoid) bool {
	return overlaps(c, o, 0) && overlaps(c, o, 1)
}

// Intersects is true when all three projections overlap.
func (c Cubeoid) Intersects(o Cubeoid) bool {
	return c.XProjectionIntersects(o) && c.YProjectionIntersects(o) && c.ZProjectionIntersects(o)
}

func overlaps(a, b Cubeoid, axis int) bool {
	return !(a.Min[axis] >= b.Max[axis] || a.Max[axis] <= b.Min[axis])
}

// Resolution describes how to stop a movement: along Axis, keeping Scale
// of distance. An infinite Scale means no collision on that axis.
type Resolution struct {
	Axis  mgl32.Vec3
	Scale float32
}

// NoResolution is returned when a candidate does not block an axis.
var NoResolution = Resolution{Scale: float32(math.Inf(1))}

// Mask zeroes the blocked axis when multiplied component-wise.
func (r Resolution) Mask() mgl32.Vec3 {
	return mgl32.Vec3{1, 1, 1}.Sub(r.Axis)
}

// Blocks reports whether r stops movement at all.
func (r Resolution) Blocks() bool {
	return !math.IsInf(float64(r.Scale), 1)
}

const (
	contactEpsilon = 0.001
	moveEpsilon    = 0.0001
)

// ResolveAxis computes how mover, travelling d along axis, hits block.
func ResolveAxis(mover, block Cubeoid, axis int, d float32) Resolution {
	var projects bool
	switch axis {
	case 0:
		projects = block.XProjectionIntersects(mover)
	case 1:
		projects = block.YProjectionIntersects(mover)
	default:
		projects = block.ZProjectionIntersects(mover)
	}
	if !projects {
		return NoResolution
	}
	var unit mgl32.Vec3
	unit[axis] = 1
	if d > moveEpsilon {
		if dist := block.Min[axis] - mover.Max[axis]; dist <= d {
			return Resolution{Axis: unit, Scale: dist - contactEpsilon}
		}
	} else if d < -moveEpsilon {
		if dist := block.Max[axis] - mover.Min[axis]; dist >= d {
			return Resolution{Axis: unit, Scale: dist + contactEpsilon}
		}
	}
	return NoResolution
}

// Best returns the resolution with the smallest absolute scale.
func Best(rs ...Resolution) Resolution {
	best := NoResolution
	for _, r := range rs {
		if abs32(r.Scale) < abs32(best.Scale) {
			best = r
		}
	}
	return best
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

package physics

import (
	"testing"

	"voxcraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func makeWorldForPhysics() *world.World {
	w, _ := world.New(64, 64, 48)
	w.Generate(world.NewHillsGenerator(1, 24))
	return w
}

func BenchmarkBlocksInRange(b *testing.B) {
	w := makeWorldForPhysics()
	box := NewAABB(30, 20, 30, 30.6, 21.8, 30.6).Expand(mgl32.Vec3{0.2, -0.5, 0.2})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BlocksInRange(w, box)
	}
}

func BenchmarkRaycast(b *testing.B) {
	w := makeWorldForPhysics()
	start := mgl32.Vec3{32, 40, 32}
	dir := mgl32.Vec3{1, -0.2, 0}.Normalize()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Raycast(start, dir, MinReachDistance, MaxReachDistance, w)
	}
}

package meshing

import (
	"testing"

	"voxcraft/internal/world"
)

func makeHillsWorld(b *testing.B) *world.World {
	w, err := world.New(64, 64, 48)
	if err != nil {
		b.Fatal(err)
	}
	w.Generate(world.NewHillsGenerator(1337, w.DefaultSurface()))
	return w
}

func BenchmarkChunkMeshRebuild(b *testing.B) {
	w := makeHillsWorld(b)
	m := NewChunkMesh(0, 1, 1, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		m.MarkDirty()
		if _, err := m.Rebuild(w, testTextures); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpand(b *testing.B) {
	w := makeHillsWorld(b)
	m := NewChunkMesh(0, 1, 1, 1)
	if _, err := m.Rebuild(w, testTextures); err != nil {
		b.Fatal(err)
	}
	origin := m.Translation().Col(3).Vec3()
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = Triangles(m.Faces(), origin)
	}
}

package world

import (
	"bytes"
	"testing"
)

func BenchmarkGenerateHills(b *testing.B) {
	w, err := New(128, 128, 64)
	if err != nil {
		b.Fatal(err)
	}
	g := NewHillsGenerator(1, w.DefaultSurface())

	b.ReportAllocs()
	for b.Loop() {
		w.Generate(g)
	}
}

// Edits near the surface exercise the light column update
func BenchmarkSetBlock(b *testing.B) {
	w := generated(b, 3)
	i := 0

	b.ReportAllocs()
	for b.Loop() {
		x, z := i%w.Width, (i/w.Width)%w.Depth
		w.SetBlock(x, w.Height-2, z, BlockTypeStone)
		w.SetBlock(x, w.Height-2, z, BlockTypeAir)
		i++
	}
}

func BenchmarkSave(b *testing.B) {
	w := generated(b, 5)
	var buf bytes.Buffer

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		if err := w.Save(&buf); err != nil {
			b.Fatal(err)
		}
	}
}

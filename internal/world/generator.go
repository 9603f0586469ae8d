package world

import (
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// TerrainGenerator decides the surface height of every column.
type TerrainGenerator interface {
	HeightAt(x, z int) int
}

// FlatGenerator produces a constant surface height.
type FlatGenerator struct {
	height int
}

func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{height: height}
}

func (g *FlatGenerator) HeightAt(x, z int) int {
	return g.height
}

// HillsGenerator builds rolling terrain from OpenSimplex noise.
type HillsGenerator struct {
	noise       opensimplex.Noise32
	scale       float32
	baseHeight  int
	amp         float32
	octaves     int
	persistence float32
	lacunarity  float32
}

// NewHillsGenerator creates a noise generator centred on baseHeight.
func NewHillsGenerator(seed int64, baseHeight int) *HillsGenerator {
	return &HillsGenerator{
		noise:       opensimplex.New32(seed),
		scale:       1.0 / 48.0,
		baseHeight:  baseHeight,
		amp:         float32(baseHeight) / 4,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

// HeightAt computes the surface height at world X,Z.
func (g *HillsGenerator) HeightAt(x, z int) int {
	var (
		sum  float32
		norm float32
		amp  float32 = 1
		freq float32 = 1
	)
	for range g.octaves {
		sum += g.noise.Eval2(float32(x)*g.scale*freq, float32(z)*g.scale*freq) * amp
		norm += amp
		amp *= g.persistence
		freq *= g.lacunarity
	}
	h := float32(g.baseHeight) + sum/norm*g.amp
	if h < 0 {
		h = 0
	}
	return int(math.Floor(float64(h)))
}

// Generate replaces the world contents: stone up to the surface height,
// grass on top. Light is recomputed and listeners get AllChanged.
func (w *World) Generate(g TerrainGenerator) {
	w.mu.Lock()
	for x := range w.Width {
		for z := range w.Depth {
			top := min(g.HeightAt(x, z), w.Height-1)
			for y := range w.Height {
				b := BlockTypeAir
				switch {
				case y < top:
					b = BlockTypeStone
				case y == top:
					b = BlockTypeGrass
				}
				w.blocks[w.index(x, y, z)] = b
			}
		}
	}
	w.mu.Unlock()

	w.CalcLightDepths(0, 0, w.Width, w.Depth)
	w.notifyAll()
}

// DefaultSurface is the flat surface height used by new worlds.
func (w *World) DefaultSurface() int {
	return w.Height * 2 / 3
}

// NewGenerator returns the generator registered under name. A surface of
// zero selects DefaultSurface.
func (w *World) NewGenerator(name string, seed int64, surface int) (TerrainGenerator, error) {
	if surface <= 0 {
		surface = w.DefaultSurface()
	}
	switch name {
	case "flat":
		return NewFlatGenerator(surface), nil
	case "hills", "":
		return NewHillsGenerator(seed, surface), nil
	default:
		return nil, fmt.Errorf("unknown terrain generator %q", name)
	}
}

package game

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"voxcraft/assets"
	"voxcraft/internal/atlas"
	"voxcraft/internal/meshing"
	"voxcraft/internal/state"
)

// MeshReport summarizes a mesh build without a GL context.
type MeshReport struct {
	meshing.Stats
	// Vertices and Indices are what expanding every face into triangles yields.
	Vertices int
	Indices  int
	// ByFace counts faces per face direction.
	ByFace [6]int
}

// BuildMeshes loads or generates the configured world and meshes every chunk.
func BuildMeshes(ctx context.Context, env *state.LocalEnv) (MeshReport, error) {
	var report MeshReport

	w, err := LoadWorld(env)
	if err != nil {
		return report, err
	}
	textures, err := atlas.Load(assets.FS, assets.BlockTexturesDir, TextureLayers)
	if err != nil {
		return report, fmt.Errorf("unable to load block textures: %w", err)
	}

	grid := meshing.NewChunkGrid(w, textures, env.Cfg.Render.MeshWorkers, env.Log)
	defer grid.Close()

	if report.Stats, err = grid.RebuildDirty(ctx); err != nil {
		return report, err
	}
	for _, m := range grid.Meshes() {
		faces := m.Faces()
		for _, p := range faces {
			report.ByFace[p.Face()]++
		}
		origin := mgl32.Vec3{float32(m.Origin[0]), float32(m.Origin[1]), float32(m.Origin[2])}
		vertices, indices := meshing.Triangles(faces, origin)
		report.Vertices += len(vertices)
		report.Indices += len(indices)
	}

	env.Log.Info("Meshes built",
		zap.Int("chunks", report.Chunks),
		zap.Int("faces", report.Faces),
		zap.Int("vertices", report.Vertices),
		zap.Ints("by face", report.ByFace[:]),
		zap.Duration("elapsed", report.Duration))
	return report, nil
}

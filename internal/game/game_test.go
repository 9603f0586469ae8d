package game

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"voxcraft/internal/config"
	"voxcraft/internal/face"
	"voxcraft/internal/state"
	"voxcraft/internal/world"
)

func testEnv(t *testing.T, save string) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Width, cfg.World.Depth, cfg.World.Height = 32, 32, 32
	cfg.World.Generator = "flat"
	cfg.World.Surface = 8
	cfg.World.SavePath = save
	return &state.LocalEnv{
		Cfg:      cfg,
		Log:      zaptest.NewLogger(t),
		Settings: config.NewRenderSettings(cfg),
	}
}

func TestLoadWorldGenerates(t *testing.T) {
	env := testEnv(t, filepath.Join(t.TempDir(), "missing.sav.gz"))
	w, err := LoadWorld(env)
	if err != nil {
		t.Fatal(err)
	}
	if w.Block(4, 8, 4) != world.BlockTypeGrass || w.Block(4, 7, 4) != world.BlockTypeStone || w.Block(4, 9, 4) != world.BlockTypeAir {
		t.Error("flat terrain not generated at surface 8")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.sav.gz")
	env := testEnv(t, path)
	w, err := LoadWorld(env)
	if err != nil {
		t.Fatal(err)
	}
	w.SetBlock(1, 20, 1, world.BlockTypeStone)
	if err := SaveWorld(env, w); err != nil {
		t.Fatal(err)
	}

	back, err := LoadWorld(env)
	if err != nil {
		t.Fatal(err)
	}
	if back.Block(1, 20, 1) != world.BlockTypeStone {
		t.Error("saved edit lost")
	}
}

func TestLoadWorldSizeMismatchRegenerates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.sav.gz")
	env := testEnv(t, path)
	w, err := LoadWorld(env)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveWorld(env, w); err != nil {
		t.Fatal(err)
	}

	env.Cfg.World.Height = 48
	back, err := LoadWorld(env)
	if err != nil {
		t.Fatalf("mismatched save should regenerate: %v", err)
	}
	if back.Height != 48 || back.Block(0, 8, 0) != world.BlockTypeGrass {
		t.Error("world not regenerated")
	}
}

func TestLoadWorldCorruptSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.sav.gz")
	if err := os.WriteFile(path, []byte("not gzip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWorld(testEnv(t, path)); err == nil {
		t.Fatal("expected error for corrupt save")
	}
}

func TestLoadWorldTruncatedSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.sav.gz")
	env := testEnv(t, path)
	w, err := LoadWorld(env)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveWorld(env, w); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cut := data[:len(data)/2]
	if err := os.WriteFile(path, cut, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWorld(env); err == nil {
		t.Fatal("truncated save loaded or regenerated")
	} else if errors.Is(err, world.ErrSizeMismatch) {
		t.Errorf("truncated save reported as size mismatch: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(cut) {
		t.Error("truncated save was overwritten")
	}
}

func TestSaveDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.sav.gz")
	env := testEnv(t, path)
	env.NoSave = true
	w, err := LoadWorld(env)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveWorld(env, w); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("save written while disabled: %v", err)
	}
}

func TestFPSLimiter(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Now()
	f.Wait(0, false)
	if time.Since(start) > 5*time.Millisecond {
		t.Error("unlimited wait blocked")
	}

	start = time.Now()
	for range 3 {
		f.Wait(100, false)
	}
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Errorf("3 frames at 100 fps took %v", elapsed)
	}
}

func TestBuildMeshesFlat(t *testing.T) {
	env := testEnv(t, "")
	report, err := BuildMeshes(context.Background(), env)
	if err != nil {
		t.Fatal(err)
	}
	// 2x2x2 chunks of a flat 32x32 surface
	if report.Chunks != 8 || report.Rebuilt != 8 {
		t.Errorf("chunks=%d rebuilt=%d", report.Chunks, report.Rebuilt)
	}
	// one top face per column; the bottom layer sits on the world floor,
	// which is open, and four sides of 9 blocks each are exposed at the edges
	if report.ByFace[face.Top] != 32*32 {
		t.Errorf("top faces = %d, want %d", report.ByFace[face.Top], 32*32)
	}
	if report.ByFace[face.Bottom] != 32*32 {
		t.Errorf("bottom faces = %d, want %d", report.ByFace[face.Bottom], 32*32)
	}
	if report.ByFace[face.West] != 32*9 {
		t.Errorf("west faces = %d, want %d", report.ByFace[face.West], 32*9)
	}
	if report.Vertices != report.Faces*4 || report.Indices != report.Faces*6 {
		t.Errorf("faces=%d vertices=%d indices=%d", report.Faces, report.Vertices, report.Indices)
	}
}

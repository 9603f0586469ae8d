package game

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"voxcraft/internal/state"
	"voxcraft/internal/world"
)

// LoadWorld creates the configured world and fills it from the save file
// when there is one, otherwise from the terrain generator.
func LoadWorld(env *state.LocalEnv) (*world.World, error) {
	cfg := env.Cfg.World
	w, err := world.New(cfg.Width, cfg.Depth, cfg.Height)
	if err != nil {
		return nil, err
	}

	if path := env.SavePath(); len(path) > 0 {
		err := w.LoadFile(path)
		switch {
		case err == nil:
			env.Log.Info("World loaded", zap.String("path", path), zap.Int("blocks", w.CountBlocks()))
			return w, nil
		case errors.Is(err, fs.ErrNotExist):
			env.Log.Debug("No saved world, generating", zap.String("path", path))
		case errors.Is(err, world.ErrSizeMismatch):
			env.Log.Warn("Saved world has different dimensions, generating", zap.String("path", path))
		default:
			return nil, fmt.Errorf("unable to load world: %w", err)
		}
	}

	g, err := w.NewGenerator(cfg.Generator, cfg.Seed, cfg.Surface)
	if err != nil {
		return nil, err
	}
	w.Generate(g)
	env.Log.Info("World generated",
		zap.String("generator", cfg.Generator), zap.Int64("seed", cfg.Seed), zap.Int("blocks", w.CountBlocks()))
	return w, nil
}

// SaveWorld writes the world to the save path, doing nothing when saving is
// disabled.
func SaveWorld(env *state.LocalEnv, w *world.World) error {
	path := env.SavePath()
	if len(path) == 0 {
		return nil
	}
	if err := w.SaveFile(path); err != nil {
		return fmt.Errorf("unable to save world: %w", err)
	}
	env.Log.Info("World saved", zap.String("path", path))
	return nil
}

// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"voxcraft/internal/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Settings *config.RenderSettings

	// set from the command line, override configuration
	WorldPath string
	NoSave    bool

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// SavePath is where the world is loaded from and saved to, empty when
// persistence is off.
func (e *LocalEnv) SavePath() string {
	if e.NoSave {
		return ""
	}
	if len(e.WorldPath) > 0 {
		return e.WorldPath
	}
	if e.Cfg == nil {
		return ""
	}
	return e.Cfg.World.SavePath
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"voxcraft/internal/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContextPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := &LocalEnv{start: time.Now().Add(-time.Second)}
	if up := env.Uptime(); up < time.Second {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestLocalEnv_SavePath(t *testing.T) {
	cfg := &config.Config{World: config.WorldConfig{SavePath: "world.sav.gz"}}
	tests := []struct {
		name string
		env  LocalEnv
		want string
	}{
		{"no config", LocalEnv{}, ""},
		{"from config", LocalEnv{Cfg: cfg}, "world.sav.gz"},
		{"flag wins", LocalEnv{Cfg: cfg, WorldPath: "other.gz"}, "other.gz"},
		{"disabled", LocalEnv{Cfg: cfg, WorldPath: "other.gz", NoSave: true}, ""},
	}
	for _, tt := range tests {
		if got := tt.env.SavePath(); got != tt.want {
			t.Errorf("%s: SavePath() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLocalEnv_RedirectAndRestore(t *testing.T) {
	env := &LocalEnv{
		Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
	}
	for i := range 3 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Errorf("Iteration %d: restoreStdLog not set", i)
		}
		env.RestoreStdLog()
	}

	env = &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("Expected restoreStdLog to remain nil without a logger")
	}
	env.RestoreStdLog()
}

package game

import (
	"context"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"voxcraft/internal/input"
	"voxcraft/internal/profiling"
	"voxcraft/internal/state"
)

// slowFrame is the processing time above which a frame is reported.
const slowFrame = 50 * time.Millisecond

type App struct {
	env          *state.LocalEnv
	window       *glfw.Window
	inputManager *input.InputManager

	session *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp starts a session in the window and hooks up input callbacks.
func NewApp(ctx context.Context, env *state.LocalEnv, window *glfw.Window) (*App, error) {
	im := input.NewInputManager()
	session, err := NewSession(ctx, env, window, im)
	if err != nil {
		return nil, err
	}

	app := &App{
		env:          env,
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(app)
	return app, nil
}

// Run loops until the window is closed or ctx is cancelled, then cleans up
// the session.
func (a *App) Run(ctx context.Context) error {
	for !a.window.ShouldClose() && ctx.Err() == nil {
		if err := a.tick(ctx); err != nil {
			_ = a.session.Cleanup()
			return err
		}
	}
	return a.session.Cleanup()
}

func (a *App) tick(ctx context.Context) error {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	if err := a.session.Update(ctx, dt); err != nil {
		return err
	}
	a.session.Render(dt)

	a.window.SwapBuffers()

	if processing := time.Since(startTick); processing > slowFrame {
		a.env.Log.Debug("Slow frame", zap.Duration("elapsed", processing), zap.String("top", profiling.TopN(5)))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(a.env.Settings.FPSLimit(), a.session.Paused)
	return nil
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.session.Render(0)
	a.window.SwapBuffers()
}

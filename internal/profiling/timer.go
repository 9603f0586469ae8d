package profiling

import (
	"time"

	"go.uber.org/zap"
)

// Timer counts updates and frames and reports them once per second.
type Timer struct {
	log   *zap.Logger
	now   func() time.Time
	start time.Time

	updates int
	frames  int

	// last completed one-second window
	UPS int
	FPS int

	// Verbose reports at info instead of debug level.
	Verbose bool
}

func NewTimer(log *zap.Logger) *Timer {
	return &Timer{log: log, now: time.Now}
}

func (t *Timer) Start() {
	t.start = t.now()
}

func (t *Timer) Reset() {
	t.updates, t.frames = 0, 0
	t.start = t.now()
}

// Update counts one update and closes the window when a second has passed.
func (t *Timer) Update() {
	t.updates++
	if t.now().Sub(t.start) < time.Second {
		return
	}
	t.UPS, t.FPS = t.updates, t.frames
	lvl := zap.DebugLevel
	if t.Verbose {
		lvl = zap.InfoLevel
	}
	t.log.Log(lvl, "Timing", zap.Int("updates", t.UPS), zap.Int("frames", t.FPS), zap.String("top", TopN(3)))
	t.updates, t.frames = 0, 0
	t.start = t.now()
}

// Frame counts one rendered frame.
func (t *Timer) Frame() {
	t.frames++
}

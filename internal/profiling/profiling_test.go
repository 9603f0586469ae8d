package profiling

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestTrackAndTopN(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["a"] = 3 * time.Millisecond
	frameTotals["b"] = 1500 * time.Microsecond
	frameTotals["c"] = 100 * time.Microsecond
	mu.Unlock()

	stop := Track("d")
	stop()
	if _, ok := Snapshot()["d"]; !ok {
		t.Fatal("tracked entry missing")
	}

	got := TopN(2)
	if got != "a:3.0ms, b:1.5ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if n := strings.Count(TopN(10), ":"); n != 4 {
		t.Errorf("TopN(10) has %d entries", n)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("ResetFrame left entries")
	}
}

func TestTimerWindow(t *testing.T) {
	now := time.Unix(0, 0)
	tm := NewTimer(zaptest.NewLogger(t))
	tm.now = func() time.Time { return now }
	tm.Start()

	for range 5 {
		tm.Frame()
		tm.Update()
	}
	if tm.UPS != 0 {
		t.Fatalf("window closed early: %d", tm.UPS)
	}

	now = now.Add(time.Second)
	tm.Frame()
	tm.Update()
	if tm.UPS != 6 || tm.FPS != 6 {
		t.Errorf("UPS=%d FPS=%d, want 6/6", tm.UPS, tm.FPS)
	}
}

func TestTimerVerbose(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	now := time.Unix(0, 0)
	tm := NewTimer(zap.New(core))
	tm.now = func() time.Time { return now }
	tm.Start()

	now = now.Add(time.Second)
	tm.Update()
	if logs.Len() != 0 {
		t.Fatalf("debug timing reached info core: %v", logs.All())
	}

	tm.Verbose = true
	now = now.Add(time.Second)
	tm.Update()
	if logs.FilterMessage("Timing").Len() != 1 {
		t.Errorf("verbose timing not logged at info")
	}
}

package focus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfigClamping(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 0, BreakMinutes: -1, TotalRounds: -3})
	cfg := tm.Config()
	assert.Equal(t, 5, cfg.WorkMinutes)
	assert.Equal(t, 3, cfg.BreakMinutes)
	assert.Equal(t, 1, cfg.TotalRounds)

	snap := tm.Snapshot()
	assert.Equal(t, 5*60, snap.SecondsRemaining)
	assert.Equal(t, 1, snap.RoundsRemaining)
}

func TestInitialState(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 2})
	snap := tm.Snapshot()
	assert.Equal(t, PhaseWork, snap.Phase)
	assert.Equal(t, 1500, snap.SecondsRemaining)
	assert.Equal(t, 2, snap.RoundsRemaining)
	assert.False(t, snap.Running)
	assert.False(t, snap.Done())
}

func TestTickWhileIdleIsNoop(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 2})
	tm.Tick()
	assert.Equal(t, 1500, tm.Snapshot().SecondsRemaining)
}

// Full cycle for 25/5 with two rounds:
// work(1500s) -> break(300s) -> work(1500s) -> stopped, never negative.
func TestFullPhaseCycle(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 2})
	tm.Start()
	require.True(t, tm.Snapshot().Running)

	tick := func(n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			tm.Tick()
			require.GreaterOrEqual(t, tm.Snapshot().SecondsRemaining, 0)
		}
	}

	// 1500 ticks finish the first work phase and land in break.
	tick(1500)
	snap := tm.Snapshot()
	assert.Equal(t, PhaseBreak, snap.Phase)
	assert.Equal(t, 300, snap.SecondsRemaining)
	assert.Equal(t, 2, snap.RoundsRemaining) // consumed on leaving break
	assert.True(t, snap.Running)

	// 300 ticks finish the break; round consumed on the way out.
	tick(300)
	snap = tm.Snapshot()
	assert.Equal(t, PhaseWork, snap.Phase)
	assert.Equal(t, 1500, snap.SecondsRemaining)
	assert.Equal(t, 1, snap.RoundsRemaining)

	// Final work phase expires into the terminal state.
	tick(1500)
	snap = tm.Snapshot()
	assert.Equal(t, PhaseWork, snap.Phase)
	assert.Equal(t, 0, snap.SecondsRemaining)
	assert.False(t, snap.Running)
	assert.True(t, snap.Done())

	// Further ticks and Start are no-ops until Reset.
	tm.Tick()
	tm.Start()
	snap = tm.Snapshot()
	assert.Equal(t, 0, snap.SecondsRemaining)
	assert.False(t, snap.Running)
}

func TestPausePreservesSeconds(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 2})
	tm.Start()
	for i := 0; i < 10; i++ {
		tm.Tick()
	}
	tm.Pause()

	snap := tm.Snapshot()
	assert.Equal(t, 1490, snap.SecondsRemaining)
	assert.False(t, snap.Running)

	tm.Tick() // paused: no effect
	assert.Equal(t, 1490, tm.Snapshot().SecondsRemaining)

	tm.Start()
	tm.Tick()
	assert.Equal(t, 1489, tm.Snapshot().SecondsRemaining)
}

func TestReset(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 2})
	tm.Start()
	for i := 0; i < 1600; i++ { // into the break phase
		tm.Tick()
	}
	require.Equal(t, PhaseBreak, tm.Snapshot().Phase)

	tm.Reset()
	snap := tm.Snapshot()
	assert.Equal(t, PhaseWork, snap.Phase)
	assert.Equal(t, 1500, snap.SecondsRemaining)
	assert.Equal(t, 2, snap.RoundsRemaining)
	assert.False(t, snap.Running)
}

func TestEditReseedsMatchingIdlePhase(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 2})

	// Idle in work phase: editing work minutes re-seeds the countdown.
	tm.SetWorkMinutes(30)
	assert.Equal(t, 1800, tm.Snapshot().SecondsRemaining)

	// Editing the break length while in the work phase does not.
	tm.SetBreakMinutes(10)
	assert.Equal(t, 1800, tm.Snapshot().SecondsRemaining)

	// Clamped edit.
	tm.SetWorkMinutes(0)
	assert.Equal(t, 5*60, tm.Snapshot().SecondsRemaining)

	// While running, edits change config but not the live countdown.
	tm.Start()
	tm.Tick()
	before := tm.Snapshot().SecondsRemaining
	tm.SetWorkMinutes(45)
	assert.Equal(t, before, tm.Snapshot().SecondsRemaining)
}

func TestSetTotalRoundsWhileIdle(t *testing.T) {
	tm := NewTimer(Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 4})
	tm.SetTotalRounds(-3)
	assert.Equal(t, 1, tm.Snapshot().RoundsRemaining)
	tm.SetTotalRounds(6)
	assert.Equal(t, 6, tm.Snapshot().RoundsRemaining)
}

func TestRepeatStopIsIdempotent(t *testing.T) {
	fired := make(chan struct{}, 64)
	stop := Repeat(context.Background(), time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	<-fired
	stop()
	stop() // second call must not panic

	// Drain anything in flight, then verify the ticking stopped.
	time.Sleep(5 * time.Millisecond)
	for len(fired) > 0 {
		<-fired
	}
	time.Sleep(5 * time.Millisecond)
	assert.Empty(t, fired)
}

func TestRepeatHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fired := make(chan struct{}, 64)
	stop := Repeat(ctx, time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	defer stop()

	<-fired
	cancel()
	time.Sleep(5 * time.Millisecond)
	for len(fired) > 0 {
		<-fired
	}
	time.Sleep(5 * time.Millisecond)
	assert.Empty(t, fired)
}

func TestSessionRunsToCompletion(t *testing.T) {
	// Minimum config (5/3/1) still completes; drive it with a fast tick.
	s := NewSession(Config{}, zap.NewNop())

	var ticks int
	snap := s.Run(context.Background(), 50*time.Microsecond, func(Snapshot) {
		ticks++
	})

	assert.True(t, snap.Done())
	assert.Equal(t, 0, snap.SecondsRemaining)
	// One round of the minimum work phase is 300 ticks.
	assert.GreaterOrEqual(t, ticks, 300)
}

func TestSessionCancellation(t *testing.T) {
	s := NewSession(DefaultConfig(), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	snap := s.Run(ctx, time.Millisecond, nil)
	assert.False(t, snap.Running)
	assert.False(t, snap.Done())
}

// Package focus implements the pomodoro-style countdown: a work/break
// state machine advanced by a once-per-second tick, plus the
// cancellable ticker that drives it in real time.
package focus

import "sync"

type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Configuration floors. Out-of-range input is clamped, never rejected.
const (
	MinWorkMinutes  = 5
	MinBreakMinutes = 3
	MinRounds       = 1
)

// Config holds the user-editable timer durations.
type Config struct {
	WorkMinutes  int
	BreakMinutes int
	TotalRounds  int
}

// DefaultConfig is the classic 25/5 with four rounds.
func DefaultConfig() Config {
	return Config{WorkMinutes: 25, BreakMinutes: 5, TotalRounds: 4}
}

func (c Config) clamped() Config {
	if c.WorkMinutes < MinWorkMinutes {
		c.WorkMinutes = MinWorkMinutes
	}
	if c.BreakMinutes < MinBreakMinutes {
		c.BreakMinutes = MinBreakMinutes
	}
	if c.TotalRounds < MinRounds {
		c.TotalRounds = MinRounds
	}
	return c
}

// Snapshot is the observable timer state at one instant.
type Snapshot struct {
	Phase            Phase
	SecondsRemaining int
	RoundsRemaining  int
	Running          bool
}

// Done reports the terminal state: the last work phase has expired and
// only an explicit Reset restarts the session.
func (s Snapshot) Done() bool {
	return !s.Running && s.SecondsRemaining == 0
}

// Timer is the countdown state machine. The tick source is external;
// Timer itself never sleeps.
type Timer struct {
	mu  sync.Mutex
	cfg Config

	phase   Phase
	seconds int
	rounds  int
	running bool
}

// NewTimer seeds a stopped timer at the start of the first work phase.
func NewTimer(cfg Config) *Timer {
	t := &Timer{cfg: cfg.clamped()}
	t.reset()
	return t
}

// Config returns the effective (clamped) configuration.
func (t *Timer) Config() Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cfg
}

// Snapshot returns the current state.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		Phase:            t.phase,
		SecondsRemaining: t.seconds,
		RoundsRemaining:  t.rounds,
		Running:          t.running,
	}
}

// Start begins ticking. No-op when already running or already done.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seconds == 0 {
		return // terminal; Reset first
	}
	t.running = true
}

// Pause stops ticking, preserving the remaining seconds.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// Reset forces the initial state regardless of where the timer is.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

func (t *Timer) reset() {
	t.phase = PhaseWork
	t.seconds = t.cfg.WorkMinutes * 60
	t.rounds = t.cfg.TotalRounds
	t.running = false
}

// Tick advances the countdown by one second. At phase expiry it flips
// phase instead of decrementing: work with rounds left moves to break;
// the final work expiry stops the session at zero; leaving break
// reloads work and consumes one round. A round is therefore one full
// work+break cycle, decremented on the break-to-work edge.
func (t *Timer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	if t.seconds > 1 {
		t.seconds--
		return
	}

	switch t.phase {
	case PhaseWork:
		if t.rounds > 1 {
			t.phase = PhaseBreak
			t.seconds = t.cfg.BreakMinutes * 60
		} else {
			t.running = false
			t.seconds = 0
		}
	case PhaseBreak:
		t.phase = PhaseWork
		t.seconds = t.cfg.WorkMinutes * 60
		t.rounds--
	}
}

// SetWorkMinutes updates the work duration, clamped. While idle in the
// work phase the displayed countdown is re-seeded so it matches the new
// setting without an explicit reset.
func (t *Timer) SetWorkMinutes(min int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if min < MinWorkMinutes {
		min = MinWorkMinutes
	}
	t.cfg.WorkMinutes = min
	if !t.running && t.phase == PhaseWork {
		t.seconds = min * 60
	}
}

// SetBreakMinutes updates the break duration, clamped, re-seeding the
// countdown when idle in the break phase.
func (t *Timer) SetBreakMinutes(min int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if min < MinBreakMinutes {
		min = MinBreakMinutes
	}
	t.cfg.BreakMinutes = min
	if !t.running && t.phase == PhaseBreak {
		t.seconds = min * 60
	}
}

// SetTotalRounds updates the round budget, clamped. While idle the live
// remaining-rounds counter follows the new value.
func (t *Timer) SetTotalRounds(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < MinRounds {
		n = MinRounds
	}
	t.cfg.TotalRounds = n
	if !t.running {
		t.rounds = n
	}
}

package timer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerive_Idle_Reads_Planned_Duration(t *testing.T) {
	req := require.New(t)
	s := NewState(DefaultConfig())

	d := Derive(s, t0)

	req.Equal(25*60, d.RemainingSeconds)
	req.Zero(d.EndsAtMs)
	req.False(d.Overdue)
}

func TestDerive_Ended_Reads_Zero(t *testing.T) {
	req := require.New(t)
	s := State{Phase: PhaseEnded, Mode: ModeBreak, EndedAtMs: t0, PlannedSeconds: 300}

	d := Derive(s, t0+5_000)

	req.Zero(d.RemainingSeconds)
	req.Equal(t0, d.EndsAtMs)
	req.False(d.Overdue)
}

func TestDerive_Running_Counts_Down(t *testing.T) {
	req := require.New(t)
	s := State{
		Phase:           PhaseRunning,
		Mode:            ModeFocus,
		ActiveCardID:    "c1",
		ActiveSessionID: "s1",
		StartedAtMs:     t0,
		PlannedSeconds:  60,
	}

	req.Equal(60, Derive(s, t0).RemainingSeconds)
	req.Equal(50, Derive(s, t0+10_000).RemainingSeconds)
	// Partial seconds round up: 100ms in, 59.9s left reads as 60.
	req.Equal(60, Derive(s, t0+100).RemainingSeconds)
	req.Equal(t0+60_000, Derive(s, t0).EndsAtMs)
}

func TestDerive_Exactly_Due_Is_Not_Overdue(t *testing.T) {
	req := require.New(t)
	s := State{
		Phase:           PhaseRunning,
		ActiveSessionID: "s1",
		StartedAtMs:     t0,
		PlannedSeconds:  60,
	}

	d := Derive(s, t0+60_000)
	req.Zero(d.RemainingSeconds)
	req.False(d.Overdue)

	d = Derive(s, t0+60_001)
	req.Zero(d.RemainingSeconds)
	req.True(d.Overdue)
}

func TestDerive_Pause_Time_Extends_Deadline(t *testing.T) {
	req := require.New(t)
	s := State{
		Phase:              PhaseRunning,
		ActiveSessionID:    "s1",
		StartedAtMs:        t0,
		PlannedSeconds:     60,
		PauseAccumulatedMs: 20_000,
	}

	// 70s of wall time minus 20s paused leaves 10s on the clock.
	d := Derive(s, t0+70_000)
	req.Equal(10, d.RemainingSeconds)
	req.Equal(t0+80_000, d.EndsAtMs)
}

func TestDerive_Paused_Is_Frozen(t *testing.T) {
	req := require.New(t)
	s := State{
		Phase:           PhasePaused,
		ActiveSessionID: "s1",
		StartedAtMs:     t0,
		PausedAtMs:      t0 + 15_000,
		PlannedSeconds:  60,
	}

	// Repeated queries while paused keep reading the same remaining time.
	for _, nowMs := range []int64{t0 + 15_000, t0 + 20_000, t0 + 600_000} {
		d := Derive(s, nowMs)
		req.Equal(45, d.RemainingSeconds)
		req.False(d.Overdue)
	}
}

func TestDerive_Never_Mutates(t *testing.T) {
	req := require.New(t)
	s := State{
		Phase:           PhaseRunning,
		ActiveSessionID: "s1",
		StartedAtMs:     t0,
		PlannedSeconds:  1,
	}
	snapshot := s

	Derive(s, t0+500)
	Derive(s, t0+5_000)

	req.Equal(snapshot, s)
}

func TestElapsedSeconds_Never_Negative(t *testing.T) {
	req := require.New(t)
	s := State{
		Phase:           PhaseRunning,
		ActiveSessionID: "s1",
		StartedAtMs:     t0,
		PlannedSeconds:  60,
	}

	// A caller-supplied timestamp behind startedAt clamps to zero.
	req.Zero(elapsedSeconds(s, t0-5_000))
	req.Equal(12, elapsedSeconds(s, t0+12_400))
}

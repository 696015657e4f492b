// Package timer contains the deterministic focus timer core.
// The reducer computes the next room timer state from an event and the
// previous state. It never reads the wall clock, never persists anything,
// and never spawns goroutines: "now" always travels inside the event.
package timer

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseEnded   Phase = "ended"
)

type Mode string

const (
	ModeFocus     Mode = "focus"
	ModeBreak     Mode = "break"
	ModeLongBreak Mode = "long_break"
)

// Outcome qualifies how a session ended.
type Outcome string

const (
	OutcomeComplete    Outcome = "complete"
	OutcomeInterrupted Outcome = "interrupted"
	OutcomeAbandoned   Outcome = "abandoned"
)

// State is the single authoritative timer snapshot of a room.
// Exactly one exists per room; it is owned by the caller and only the
// reducer may produce a new version of it.
//
// Timestamps are unix milliseconds; zero means unset. ActiveSessionID is
// set if and only if Phase is running or paused, and a session can only
// exist while a card is attached.
type State struct {
	Phase              Phase
	Mode               Mode
	ActiveCardID       string
	ActiveSessionID    string
	StartedAtMs        int64
	PausedAtMs         int64
	EndedAtMs          int64
	PlannedSeconds     int
	PauseAccumulatedMs int64
	CycleCount         int
}

// NewState returns the initial idle snapshot for a room: no card, no
// session, a focus interval queued at the configured duration.
func NewState(cfg Config) State {
	return State{
		Phase:          PhaseIdle,
		Mode:           ModeFocus,
		PlannedSeconds: cfg.PlannedSeconds(ModeFocus),
	}
}

// Active reports whether a session is in flight.
func (s State) Active() bool {
	return s.Phase == PhaseRunning || s.Phase == PhasePaused
}

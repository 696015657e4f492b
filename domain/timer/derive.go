package timer

// Derived is a read-only view computed from stored timestamps. It is the
// single basis both for Tick's auto-complete check and for status queries.
type Derived struct {
	RemainingSeconds int
	EndsAtMs         int64
	Overdue          bool
}

// Derive computes the clock face of a snapshot at a given instant without
// mutating anything. While paused the effective deadline slides forward
// with now, so the remaining time is frozen at the value it had when the
// pause began.
func Derive(s State, nowMs int64) Derived {
	switch s.Phase {
	case PhaseIdle:
		return Derived{RemainingSeconds: s.PlannedSeconds}
	case PhaseEnded:
		return Derived{EndsAtMs: s.EndedAtMs}
	}

	endsAt := s.StartedAtMs + int64(s.PlannedSeconds)*1000 + s.PauseAccumulatedMs
	if s.Phase == PhasePaused {
		endsAt += nowMs - s.PausedAtMs
	}

	diff := endsAt - nowMs
	remaining := 0
	if diff > 0 {
		remaining = int((diff + 999) / 1000)
	}
	return Derived{
		RemainingSeconds: remaining,
		EndsAtMs:         endsAt,
		Overdue:          diff < 0,
	}
}

// elapsedSeconds measures worked time excluding pauses. While paused the
// measurement collapses to the pause instant, so elapsed time never
// accrues past the moment of pausing. Never negative.
func elapsedSeconds(s State, nowMs int64) int {
	effectiveNow := nowMs
	if s.Phase == PhasePaused {
		effectiveNow = s.PausedAtMs
	}
	elapsed := effectiveNow - s.StartedAtMs - s.PauseAccumulatedMs
	if elapsed < 0 {
		elapsed = 0
	}
	return int(elapsed / 1000)
}

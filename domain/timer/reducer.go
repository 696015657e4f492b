package timer

import "focus-lab/errors"

// Transition is the pure reducer: previous state × event × config to the
// next state, a derived view, and the effects an external consumer must
// run. It is total for well-formed input; the only reportable failure is
// starting without an attached work item. Every other transition that is
// invalid for the current phase is absorbed as a silent no-op, which makes
// duplicated or reordered delivery of the same logical event harmless.
func Transition(prev State, evt Event, cfg Config) (State, Derived, []Effect, error) {
	switch e := evt.(type) {
	case AttachCard:
		// Reassigning the card under an in-flight session is refused:
		// a timer belongs to exactly one work item until it ends.
		if prev.Active() {
			return noop(prev)
		}
		next := prev
		next.ActiveCardID = e.CardID
		return noop(next)

	case ClearCard:
		if prev.Active() {
			return noop(prev)
		}
		next := prev
		next.ActiveCardID = ""
		return noop(next)

	case Start:
		if prev.ActiveCardID == "" {
			return prev, Derive(prev, e.NowMs), nil, errors.ErrNoAttachedCard
		}
		// A second, racing start must not clobber the in-flight session.
		if prev.Active() {
			return prev, Derive(prev, e.NowMs), nil, nil
		}
		mode := prev.Mode
		if e.Mode != "" {
			mode = e.Mode
		}
		planned := e.PlannedSeconds
		if planned <= 0 {
			planned = cfg.PlannedSeconds(mode)
		}
		next := prev
		next.Phase = PhaseRunning
		next.Mode = mode
		next.PlannedSeconds = planned
		next.ActiveSessionID = e.SessionID
		next.StartedAtMs = e.NowMs
		next.PausedAtMs = 0
		next.PauseAccumulatedMs = 0
		next.EndedAtMs = 0
		effects := []Effect{SessionStarted{
			SessionID:      e.SessionID,
			Mode:           mode,
			PlannedSeconds: planned,
		}}
		return next, Derive(next, e.NowMs), effects, nil

	case Pause:
		if prev.Phase != PhaseRunning {
			return prev, Derive(prev, e.NowMs), nil, nil
		}
		next := prev
		next.Phase = PhasePaused
		next.PausedAtMs = e.NowMs
		return next, Derive(next, e.NowMs), nil, nil

	case Resume:
		if prev.Phase != PhasePaused {
			return prev, Derive(prev, e.NowMs), nil, nil
		}
		next := prev
		if pausedFor := e.NowMs - prev.PausedAtMs; pausedFor > 0 {
			next.PauseAccumulatedMs += pausedFor
		}
		next.Phase = PhaseRunning
		next.PausedAtMs = 0
		return next, Derive(next, e.NowMs), nil, nil

	case End:
		if !prev.Active() || prev.ActiveSessionID == "" {
			return prev, Derive(prev, e.NowMs), nil, nil
		}
		next, effects := endSession(prev, e.Outcome, e.Note, e.NowMs, cfg)
		return next, Derive(next, e.NowMs), effects, nil

	case Tick:
		due := prev.Phase == PhaseRunning &&
			prev.ActiveSessionID != "" &&
			Derive(prev, e.NowMs).RemainingSeconds == 0
		if !due {
			return prev, Derive(prev, e.NowMs), nil, nil
		}
		next, effects := endSession(prev, OutcomeComplete, "", e.NowMs, cfg)
		return next, Derive(next, e.NowMs), effects, nil
	}

	return noop(prev)
}

// endSession closes the active session and, on a completed interval,
// advances the schedule so the queued duration already reflects the
// upcoming mode.
func endSession(prev State, outcome Outcome, note string, nowMs int64, cfg Config) (State, []Effect) {
	actual := elapsedSeconds(prev, nowMs)

	next := prev
	next.Phase = PhaseEnded
	next.EndedAtMs = nowMs
	next.ActiveSessionID = ""
	next.PausedAtMs = 0
	next.PauseAccumulatedMs = 0

	if outcome == OutcomeComplete {
		next = advanceSchedule(next, cfg)
	}

	return next, []Effect{SessionEnded{
		SessionID:     prev.ActiveSessionID,
		Outcome:       outcome,
		ActualSeconds: actual,
		Note:          note,
	}}
}

// advanceSchedule applies the cadence rule: a finished focus interval
// counts one cycle and queues a break (long break every LongBreakEvery
// cycles); a finished break of either kind queues focus.
func advanceSchedule(s State, cfg Config) State {
	if s.Mode == ModeFocus {
		s.CycleCount++
		s.Mode = ModeBreak
		if cfg.LongBreakEvery > 0 && s.CycleCount%cfg.LongBreakEvery == 0 {
			s.Mode = ModeLongBreak
		}
	} else {
		s.Mode = ModeFocus
	}
	s.PlannedSeconds = cfg.PlannedSeconds(s.Mode)
	return s
}

// noop is used by events that carry no timestamp. The view is derived at
// the last instant the state itself knows about; callers needing a fresh
// clock face use Derive directly.
func noop(s State) (State, Derived, []Effect, error) {
	at := s.StartedAtMs
	if s.Phase == PhasePaused {
		at = s.PausedAtMs
	}
	return s, Derive(s, at), nil, nil
}

package timer

// Event describes one intended action or time probe. The set is sealed:
// the reducer switches over every variant and a new one cannot be added
// without the compiler pointing at the switch.
type Event interface {
	isEvent()
}

// AttachCard binds the room timer to a work item.
type AttachCard struct {
	CardID string
}

// ClearCard detaches the work item. Guarded: ignored while a session is
// running or paused.
type ClearCard struct{}

// Start begins a new interval. Mode and PlannedSeconds are optional
// overrides: an empty Mode keeps the state's queued mode, a zero
// PlannedSeconds falls back to the config duration for the resolved mode.
type Start struct {
	SessionID      string
	Mode           Mode
	PlannedSeconds int
	NowMs          int64
}

type Pause struct {
	NowMs int64
}

type Resume struct {
	NowMs int64
}

// End closes the active session with an outcome.
type End struct {
	Outcome Outcome
	Note    string
	NowMs   int64
}

// Tick is a no-effect probe that auto-completes the interval once the
// derivation reports zero remaining seconds. Safe to send arbitrarily often.
type Tick struct {
	NowMs int64
}

func (AttachCard) isEvent() {}
func (ClearCard) isEvent()  {}
func (Start) isEvent()      {}
func (Pause) isEvent()      {}
func (Resume) isEvent()     {}
func (End) isEvent()        {}
func (Tick) isEvent()       {}

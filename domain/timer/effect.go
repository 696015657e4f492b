package timer

// Effect is a side-effect request returned by the reducer and executed by
// an external consumer (session bookkeeping, broadcast). The core never
// runs one itself.
type Effect interface {
	isEffect()
}

type SessionStarted struct {
	SessionID      string
	Mode           Mode
	PlannedSeconds int
}

type SessionEnded struct {
	SessionID     string
	Outcome       Outcome
	ActualSeconds int
	Note          string
}

func (SessionStarted) isEffect() {}
func (SessionEnded) isEffect()   {}

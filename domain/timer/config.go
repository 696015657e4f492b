package timer

// Config holds the interval durations and the long break cadence.
// It is caller-supplied and never mutated by the reducer.
type Config struct {
	FocusSeconds     int
	BreakSeconds     int
	LongBreakSeconds int
	LongBreakEvery   int
}

func DefaultConfig() Config {
	return Config{
		FocusSeconds:     25 * 60,
		BreakSeconds:     5 * 60,
		LongBreakSeconds: 15 * 60,
		LongBreakEvery:   4,
	}
}

// PlannedSeconds returns the configured duration for a given mode.
func (c Config) PlannedSeconds(mode Mode) int {
	switch mode {
	case ModeBreak:
		return c.BreakSeconds
	case ModeLongBreak:
		return c.LongBreakSeconds
	default:
		return c.FocusSeconds
	}
}

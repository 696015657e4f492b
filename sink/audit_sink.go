package sink

import (
	"context"
	"log/slog"

	"focus-lab/domain/event"
)

// AuditSink records the semantic action behind every change, independent
// of persistence and broadcast. It never fails the pipeline.
type AuditSink struct {
	log *slog.Logger
}

func NewAuditSink(log *slog.Logger) AuditSink {
	return AuditSink{log: log}
}

func (a AuditSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.TimerStateChanged:
		a.log.Info("Timer state changed",
			"room", evt.Room,
			"phase", evt.State.Phase,
			"mode", evt.State.Mode,
			"card", evt.State.ActiveCardID,
			"remaining_seconds", evt.Derived.RemainingSeconds,
		)
	case event.FocusSessionStarted:
		a.log.Info("Focus session started",
			"room", evt.Room,
			"session", evt.SessionID,
			"card", evt.CardID,
			"mode", evt.Mode,
			"planned_seconds", evt.PlannedSeconds,
		)
	case event.FocusSessionEnded:
		a.log.Info("Focus session ended",
			"room", evt.Room,
			"session", evt.SessionID,
			"card", evt.CardID,
			"outcome", evt.Outcome,
			"actual_seconds", evt.ActualSeconds,
		)
	}
	return nil
}

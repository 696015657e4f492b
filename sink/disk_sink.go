package sink

import (
	"context"
	"fmt"
	"log/slog"

	"focus-lab/domain/event"
	"focus-lab/repositories"

	"github.com/google/uuid"
)

// DiskSink is the session bookkeeping consumer: it opens a row when a
// session starts and finalizes it when the session ends. Timer snapshots
// themselves are persisted by the room worker, not here.
type DiskSink struct {
	sessions repositories.ISessionRepository
	log      *slog.Logger
}

func NewDiskSink(sessions repositories.ISessionRepository, log *slog.Logger) DiskSink {
	return DiskSink{sessions: sessions, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.FocusSessionStarted:
		id, err := uuid.Parse(evt.SessionID)
		if err != nil {
			return fmt.Errorf("session id %q: %w", evt.SessionID, err)
		}
		return d.sessions.StartSession(repositories.DiskSession{
			ID:             id,
			Room:           string(evt.Room),
			CardID:         evt.CardID,
			Mode:           string(evt.Mode),
			PlannedSeconds: evt.PlannedSeconds,
			StartedAt:      evt.At,
		})
	case event.FocusSessionEnded:
		id, err := uuid.Parse(evt.SessionID)
		if err != nil {
			return fmt.Errorf("session id %q: %w", evt.SessionID, err)
		}
		return d.sessions.FinalizeSession(id, evt.At, string(evt.Outcome), evt.ActualSeconds, evt.Note)
	default:
		d.log.Debug(fmt.Sprintf("Not a bookkeeping event : %T", evt))
		return nil
	}
}

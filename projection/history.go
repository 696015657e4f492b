// Package projection builds local read models from observed events.
// It handles accumulation only; it does not emit events or touch storage.
package projection

import (
	"context"
	"sync"
	"time"

	"focus-lab/domain"
	"focus-lab/domain/event"
	"focus-lab/domain/timer"
)

// SessionSummary is one line of a room's session history.
type SessionSummary struct {
	SessionID     string
	CardID        string
	Mode          timer.Mode
	Outcome       timer.Outcome
	ActualSeconds int
	Note          string
	StartedAt     time.Time
	EndedAt       time.Time
}

// History keeps an in-memory, per-room view of started and finished
// sessions, fed by the fan-out pipeline.
type History struct {
	mu     sync.RWMutex
	open   map[string]SessionSummary
	byRoom map[domain.RoomID][]SessionSummary
}

func NewHistory() *History {
	return &History{
		open:   make(map[string]SessionSummary),
		byRoom: make(map[domain.RoomID][]SessionSummary),
	}
}

func (h *History) Consume(_ context.Context, e event.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch evt := e.(type) {
	case event.FocusSessionStarted:
		h.open[evt.SessionID] = SessionSummary{
			SessionID: evt.SessionID,
			CardID:    evt.CardID,
			Mode:      evt.Mode,
			StartedAt: evt.At,
		}
	case event.FocusSessionEnded:
		summary, ok := h.open[evt.SessionID]
		if !ok {
			// The start predates this process; rebuild what we can.
			summary = SessionSummary{
				SessionID: evt.SessionID,
				CardID:    evt.CardID,
				Mode:      evt.Mode,
				StartedAt: evt.StartedAt,
			}
		}
		delete(h.open, evt.SessionID)

		summary.Outcome = evt.Outcome
		summary.ActualSeconds = evt.ActualSeconds
		summary.Note = evt.Note
		summary.EndedAt = evt.At
		h.byRoom[evt.Room] = append(h.byRoom[evt.Room], summary)
	}
	return nil
}

// ForRoom returns the finished sessions of a room, oldest first.
func (h *History) ForRoom(roomID domain.RoomID) []SessionSummary {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]SessionSummary, len(h.byRoom[roomID]))
	copy(out, h.byRoom[roomID])
	return out
}

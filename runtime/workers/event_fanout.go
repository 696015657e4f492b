package workers

import (
	"context"
	"log/slog"
	"time"

	"focus-lab/contract"
	"focus-lab/domain/event"
)

// EventFanout broadcasts domain events to multiple in-process consumers:
// the permanent sinks (bookkeeping, audit, projections) plus whichever
// participant sinks are currently subscribed to the event's room.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	log             *slog.Logger
	registry        contract.IRegistry
	permanentSinks  []contract.EventSink
	domainEvents    chan event.DomainEvent
	telemetryEvents chan event.DomainEvent
	sinkTimeout     time.Duration
}

func NewEventFanout(
	log *slog.Logger,
	registry contract.IRegistry,
	permanentSinks []contract.EventSink,
	domainEvents, telemetryEvents chan event.DomainEvent,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:             log,
		registry:        registry,
		permanentSinks:  permanentSinks,
		domainEvents:    domainEvents,
		telemetryEvents: telemetryEvents,
		sinkTimeout:     sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return ctx.Err()
		case evt, ok := <-w.domainEvents:
			if !ok {
				return nil
			}
			w.Fanout(ctx, evt)
			select {
			case w.telemetryEvents <- evt:
			default:
				w.log.Debug("Telemetry event lost")
			}
		}
	}
}

// Fanout delivers one event to every permanent sink and every sink of the
// event's room. A slow sink only costs its own timeout budget; it cannot
// wedge the pipeline for the rest of the room.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	roomSinks := w.registry.GetSinksForRoom(evt.RoomID())
	sinks := make([]contract.EventSink, 0, len(w.permanentSinks)+len(roomSinks))
	sinks = append(sinks, w.permanentSinks...)
	sinks = append(sinks, roomSinks...)
	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "room", evt.RoomID(), "error", err)
		}
		cancel()
	}
}

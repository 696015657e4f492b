package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"focus-lab/contract"
	"focus-lab/domain"
	"focus-lab/domain/event"
	"focus-lab/domain/timer"
	"focus-lab/repositories"
)

// Ensure *RoomWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*RoomWorker)(nil)

// Envelope wraps a command on its way to a room worker. Reply, when not
// nil, receives the outcome exactly once; it must be buffered so a caller
// that gave up waiting never blocks the worker.
type Envelope struct {
	Cmd   domain.Command
	Reply chan Result
}

type Result struct {
	Apply domain.ApplyResult
	Err   error
}

// RoomWorker drives one room. It is the only writer of that room's timer
// snapshot: every control action and tick probe for the room funnels
// through its command channel, which serializes the read-transition-write
// cycle without any cross-room locking.
type RoomWorker struct {
	room     *domain.Room
	cfg      timer.Config
	states   repositories.ITimerStateRepository
	commands chan Envelope
	events   chan event.DomainEvent
	log      *slog.Logger
}

func NewRoomWorker(
	room *domain.Room,
	cfg timer.Config,
	states repositories.ITimerStateRepository,
	commands chan Envelope,
	events chan event.DomainEvent,
	log *slog.Logger) *RoomWorker {
	return &RoomWorker{
		room:     room,
		cfg:      cfg,
		states:   states,
		commands: commands,
		events:   events,
		log:      log,
	}
}

func (w *RoomWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker", "room", w.room.ID)
			return ctx.Err()
		case env, ok := <-w.commands:
			if !ok {
				return nil
			}
			w.handle(ctx, env)
		}
	}
}

func (w *RoomWorker) handle(ctx context.Context, env Envelope) {
	evt, at, ok := toTimerEvent(env.Cmd)
	if !ok {
		w.log.Warn(fmt.Sprintf("Unhandled command %T for room %s", env.Cmd, w.room.ID))
		return
	}

	result, err := w.room.Apply(evt, w.cfg)
	if env.Reply != nil {
		select {
		case env.Reply <- Result{Apply: result, Err: err}:
		default:
		}
	}
	if err != nil {
		w.log.Debug("Command rejected", "room", w.room.ID, "error", err)
		return
	}
	if !result.Changed {
		return
	}

	// Write-through before broadcasting: a member reconnecting right after
	// the fan-out must load the same snapshot it was just pushed.
	if err := w.states.SaveState(w.room.ID, result.Next); err != nil {
		w.log.Error("Persisting timer state failed", "room", w.room.ID, "error", err)
	}

	w.emit(ctx, event.TimerStateChanged{
		Room:    w.room.ID,
		State:   result.Next,
		Derived: result.Derived,
		At:      at,
	})
	for _, effect := range result.Effects {
		w.emit(ctx, toSessionEvent(w.room.ID, result.Prev, effect, at))
	}
}

func (w *RoomWorker) emit(ctx context.Context, evt event.DomainEvent) {
	select {
	case <-ctx.Done():
	case w.events <- evt:
	}
}

// toTimerEvent maps a room command onto a core event, converting caller
// timestamps to unix milliseconds at the boundary.
func toTimerEvent(cmd domain.Command) (timer.Event, time.Time, bool) {
	switch c := cmd.(type) {
	case domain.AttachCardCommand:
		return timer.AttachCard{CardID: c.CardID}, c.At, true
	case domain.ClearCardCommand:
		return timer.ClearCard{}, c.At, true
	case domain.StartTimerCommand:
		return timer.Start{
			SessionID:      c.SessionID,
			Mode:           c.Mode,
			PlannedSeconds: c.PlannedSeconds,
			NowMs:          c.At.UnixMilli(),
		}, c.At, true
	case domain.PauseTimerCommand:
		return timer.Pause{NowMs: c.At.UnixMilli()}, c.At, true
	case domain.ResumeTimerCommand:
		return timer.Resume{NowMs: c.At.UnixMilli()}, c.At, true
	case domain.EndTimerCommand:
		return timer.End{Outcome: c.Outcome, Note: c.Note, NowMs: c.At.UnixMilli()}, c.At, true
	case domain.TickCommand:
		return timer.Tick{NowMs: c.At.UnixMilli()}, c.At, true
	}
	return nil, time.Time{}, false
}

// toSessionEvent enriches a core effect with the room facts the
// bookkeeping side needs. The pre-transition state carries the card and
// the start instant of the session the effect belongs to.
func toSessionEvent(room domain.RoomID, prev timer.State, effect timer.Effect, at time.Time) event.DomainEvent {
	switch eff := effect.(type) {
	case timer.SessionStarted:
		return event.FocusSessionStarted{
			Room:           room,
			CardID:         prev.ActiveCardID,
			SessionID:      eff.SessionID,
			Mode:           eff.Mode,
			PlannedSeconds: eff.PlannedSeconds,
			At:             at,
		}
	case timer.SessionEnded:
		return event.FocusSessionEnded{
			Room:          room,
			CardID:        prev.ActiveCardID,
			SessionID:     eff.SessionID,
			Mode:          prev.Mode,
			Outcome:       eff.Outcome,
			ActualSeconds: eff.ActualSeconds,
			Note:          eff.Note,
			StartedAt:     time.UnixMilli(prev.StartedAtMs),
			At:            at,
		}
	}
	return nil
}

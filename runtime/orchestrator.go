// Package runtime handles command routing, room supervision, and event
// propagation. It orchestrates the system without containing timer rules:
// every transition goes through the reducer in domain/timer.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"focus-lab/contract"
	"focus-lab/domain"
	"focus-lab/domain/event"
	"focus-lab/domain/timer"
	"focus-lab/errors"
	"focus-lab/repositories"
	"focus-lab/runtime/workers"
)

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	cfg            timer.Config
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	states         repositories.ITimerStateRepository
	rooms          map[domain.RoomID]*domain.Room
	channels       map[domain.RoomID]chan workers.Envelope
	permanentSinks []contract.EventSink

	domainEvents    chan event.DomainEvent
	telemetryEvents chan event.DomainEvent

	bufferSize     int
	sinkTimeout    time.Duration
	tickInterval   time.Duration
	metricInterval time.Duration

	// runCtx is set once Start has launched the supervisor; rooms
	// registered afterwards get their worker started against it.
	runCtx context.Context
}

func NewOrchestrator(
	log *slog.Logger,
	cfg timer.Config,
	supervisor *workers.Supervisor,
	registry *Registry,
	states repositories.ITimerStateRepository,
	bufferSize int,
	sinkTimeout, tickInterval, metricInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:             log,
		cfg:             cfg,
		supervisor:      supervisor,
		registry:        registry,
		states:          states,
		rooms:           make(map[domain.RoomID]*domain.Room),
		channels:        make(map[domain.RoomID]chan workers.Envelope),
		domainEvents:    make(chan event.DomainEvent, bufferSize),
		telemetryEvents: make(chan event.DomainEvent, bufferSize),
		bufferSize:      bufferSize,
		sinkTimeout:     sinkTimeout,
		tickInterval:    tickInterval,
		metricInterval:  metricInterval,
	}
}

// Add registers permanent sinks consulted on every event regardless of
// room membership (bookkeeping, audit, projections).
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// EnsureRoom returns the room, rehydrating it from the persisted snapshot
// on first sight and spinning up its dedicated worker. A snapshot that
// fails validation on load aborts here; it never reaches the reducer.
func (o *Orchestrator) EnsureRoom(roomID domain.RoomID) (*domain.Room, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if room, ok := o.rooms[roomID]; ok {
		return room, nil
	}

	state, found, err := o.states.LoadState(roomID)
	if err != nil {
		return nil, err
	}
	var room *domain.Room
	if found {
		room = domain.NewRoomFromState(roomID, state)
	} else {
		room = domain.NewRoom(roomID, o.cfg)
	}

	commands := make(chan workers.Envelope, o.bufferSize)
	worker := workers.NewRoomWorker(room, o.cfg, o.states, commands, o.domainEvents, o.log)

	o.rooms[roomID] = room
	o.channels[roomID] = commands

	if o.runCtx != nil {
		o.supervisor.Start(o.runCtx, worker)
	} else {
		o.supervisor.Add(worker)
	}
	return room, nil
}

// Execute routes a command to its room worker and waits for the outcome.
// This is the synchronous control path: the caller learns about the one
// reportable precondition failure, and about nothing else, because every
// other invalid transition is a documented no-op.
func (o *Orchestrator) Execute(ctx context.Context, cmd domain.Command) (domain.ApplyResult, error) {
	if _, err := o.EnsureRoom(cmd.RoomID()); err != nil {
		return domain.ApplyResult{}, err
	}

	o.mu.Lock()
	commands := o.channels[cmd.RoomID()]
	o.mu.Unlock()

	reply := make(chan workers.Result, 1)
	select {
	case <-ctx.Done():
		return domain.ApplyResult{}, ctx.Err()
	case commands <- workers.Envelope{Cmd: cmd, Reply: reply}:
	}

	select {
	case <-ctx.Done():
		return domain.ApplyResult{}, ctx.Err()
	case res := <-reply:
		return res.Apply, res.Err
	}
}

// Dispatch is the fire-and-forget path used by the tick poller. Dropping
// under backpressure is harmless there: the next poll carries a fresher
// timestamp anyway.
func (o *Orchestrator) Dispatch(cmd domain.Command) {
	o.mu.Lock()
	commands, ok := o.channels[cmd.RoomID()]
	o.mu.Unlock()
	if !ok {
		o.log.Debug(fmt.Sprintf("Room %s doesn't exist, dropping command", cmd.RoomID()))
		return
	}

	select {
	case commands <- workers.Envelope{Cmd: cmd}:
	default:
		o.log.Warn(fmt.Sprintf("Command channel full for room %s, dropping command", cmd.RoomID()))
	}
}

func (o *Orchestrator) RoomIDs() []domain.RoomID {
	o.mu.Lock()
	defer o.mu.Unlock()
	ids := make([]domain.RoomID, 0, len(o.rooms))
	for id := range o.rooms {
		ids = append(ids, id)
	}
	return ids
}

// Snapshot returns the current state of a known room without mutating it.
func (o *Orchestrator) Snapshot(roomID domain.RoomID) (timer.State, error) {
	o.mu.Lock()
	room, ok := o.rooms[roomID]
	o.mu.Unlock()
	if !ok {
		return timer.State{}, fmt.Errorf("%w: %s", errors.ErrUnknownRoom, roomID)
	}
	return room.Snapshot(), nil
}

// RegisterParticipant subscribes a member's sink to a room and immediately
// pushes the current snapshot, so a newcomer never waits for the next
// transition to learn what the clock reads.
func (o *Orchestrator) RegisterParticipant(ctx context.Context, participantID string, roomID domain.RoomID, sink contract.EventSink, at time.Time) error {
	room, err := o.EnsureRoom(roomID)
	if err != nil {
		return err
	}
	o.registry.Subscribe(participantID, roomID, sink)

	state := room.Snapshot()
	return sink.Consume(ctx, event.TimerStateChanged{
		Room:    roomID,
		State:   state,
		Derived: timer.Derive(state, at.UnixMilli()),
		At:      at,
	})
}

// UnregisterParticipant disconnects a member.
func (o *Orchestrator) UnregisterParticipant(participantID string, roomID domain.RoomID) {
	o.registry.Unsubscribe(participantID, roomID)
}

// Start wires the pipeline workers and launches the supervisor. Room
// workers registered before this point start with it; later rooms are
// attached to the same supervised context.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	fanout := workers.NewEventFanout(
		o.log,
		o.registry,
		o.permanentSinks,
		o.domainEvents,
		o.telemetryEvents,
		o.sinkTimeout,
	)
	telemetry := workers.NewTelemetryWorker(o.log, o.metricInterval, o.telemetryEvents)
	ticker := workers.NewTickWorker(o, o.tickInterval, o.log)

	o.supervisor.Add(fanout, telemetry, ticker)
	o.runCtx = ctx
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	go o.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown of the orchestrator by canceling the
// supervised context, which signals every worker to stop.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

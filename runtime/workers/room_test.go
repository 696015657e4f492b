package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"focus-lab/domain"
	"focus-lab/domain/event"
	"focus-lab/domain/timer"
	"focus-lab/errors"
	"focus-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRoomWorkerFixture(t *testing.T) (*RoomWorker, chan Envelope, chan event.DomainEvent, *mocks.MockITimerStateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	states := mocks.NewMockITimerStateRepository(ctrl)
	commands := make(chan Envelope, 8)
	events := make(chan event.DomainEvent, 8)

	cfg := timer.Config{FocusSeconds: 60, BreakSeconds: 10, LongBreakSeconds: 20, LongBreakEvery: 4}
	room := domain.NewRoom("room-1", cfg)
	worker := NewRoomWorker(room, cfg, states, commands, events, log)
	return worker, commands, events, states
}

func execute(t *testing.T, commands chan Envelope, cmd domain.Command) Result {
	t.Helper()
	reply := make(chan Result, 1)
	commands <- Envelope{Cmd: cmd, Reply: reply}

	select {
	case result := <-reply:
		return result
	case <-time.After(time.Second):
		t.Fatal("worker did not reply in time")
		return Result{}
	}
}

func TestRoomWorker_Start_Persists_And_Broadcasts(t *testing.T) {
	req := require.New(t)
	worker, commands, events, states := newRoomWorkerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	at := time.UnixMilli(1_700_000_000_000)

	// Every state change is written before the broadcast
	states.EXPECT().SaveState(domain.RoomID("room-1"), gomock.Any()).Return(nil).Times(2)

	result := execute(t, commands, domain.AttachCardCommand{Room: "room-1", CardID: "card-7", At: at})
	req.NoError(result.Err)
	req.True(result.Apply.Changed)

	result = execute(t, commands, domain.StartTimerCommand{Room: "room-1", SessionID: "session-1", At: at})
	req.NoError(result.Err)
	req.Equal(timer.PhaseRunning, result.Apply.Next.Phase)
	req.Equal(60, result.Apply.Derived.RemainingSeconds)

	// Then a state change and a session start were broadcast for each step
	changed := <-events
	req.IsType(event.TimerStateChanged{}, changed)

	changed = <-events
	req.IsType(event.TimerStateChanged{}, changed)

	started, ok := (<-events).(event.FocusSessionStarted)
	req.True(ok)
	req.Equal(domain.RoomID("room-1"), started.Room)
	req.Equal("card-7", started.CardID)
	req.Equal("session-1", started.SessionID)
	req.Equal(timer.ModeFocus, started.Mode)
}

func TestRoomWorker_Start_Without_Card_Replies_Error(t *testing.T) {
	req := require.New(t)
	worker, commands, events, _ := newRoomWorkerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	at := time.UnixMilli(1_700_000_000_000)

	// When starting with no work item attached
	result := execute(t, commands, domain.StartTimerCommand{Room: "room-1", SessionID: "session-1", At: at})

	// Then the caller gets the error and nothing is persisted or broadcast
	req.ErrorIs(result.Err, errors.ErrNoAttachedCard)
	req.Empty(events)
}

func TestRoomWorker_Noop_Is_Not_Persisted(t *testing.T) {
	req := require.New(t)
	worker, commands, events, _ := newRoomWorkerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	at := time.UnixMilli(1_700_000_000_000)

	// When pausing an idle room
	result := execute(t, commands, domain.PauseTimerCommand{Room: "room-1", At: at})

	// Then the transition is a silent no-op
	req.NoError(result.Err)
	req.False(result.Apply.Changed)
	req.Empty(events)
}

func TestRoomWorker_Tick_AutoCompletes_Session(t *testing.T) {
	req := require.New(t)
	worker, commands, events, states := newRoomWorkerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	at := time.UnixMilli(1_700_000_000_000)
	states.EXPECT().SaveState(domain.RoomID("room-1"), gomock.Any()).Return(nil).Times(3)

	result := execute(t, commands, domain.AttachCardCommand{Room: "room-1", CardID: "card-7", At: at})
	req.NoError(result.Err)
	result = execute(t, commands, domain.StartTimerCommand{Room: "room-1", SessionID: "session-1", At: at})
	req.NoError(result.Err)

	// When a tick lands past the deadline
	result = execute(t, commands, domain.TickCommand{Room: "room-1", At: at.Add(61 * time.Second)})
	req.NoError(result.Err)
	req.Equal(timer.PhaseEnded, result.Apply.Next.Phase)

	// Then the completed session event carries the elapsed focus time
	var ended event.FocusSessionEnded
	deadline := time.After(time.Second)
	for ended.SessionID == "" {
		select {
		case evt := <-events:
			if e, ok := evt.(event.FocusSessionEnded); ok {
				ended = e
			}
		case <-deadline:
			t.Fatal("no session ended event received")
		}
	}
	req.Equal("session-1", ended.SessionID)
	req.Equal("card-7", ended.CardID)
	req.Equal(timer.OutcomeComplete, ended.Outcome)
	req.Equal(61, ended.ActualSeconds)
	req.Equal(at, ended.StartedAt)
}

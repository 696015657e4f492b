package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"focus-lab/contract"
	"focus-lab/domain/event"
	"focus-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	permanentSink := mocks.NewMockEventSink(ctrl)
	roomSink := mocks.NewMockEventSink(ctrl)
	roomSinks := []contract.EventSink{roomSink, roomSink}

	fanoutWorker := NewEventFanout(
		log, mockRegistry, []contract.EventSink{permanentSink},
		nil, nil, 10*time.Second)

	// Given two participant sinks subscribed to the room
	mockRegistry.EXPECT().GetSinksForRoom(gomock.Any()).Return(roomSinks).Times(1)
	// Then the permanent sink and both room sinks are consumed
	permanentSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	roomSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	evt := event.TimerStateChanged{Room: "room-1"}

	// When an event is received and handled by worker
	fanoutWorker.Fanout(context.Background(), evt)
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	slowSink := mocks.NewMockEventSink(ctrl)
	fastSink := mocks.NewMockEventSink(ctrl)
	roomSinks := []contract.EventSink{fastSink}

	sinkTimeout := 20 * time.Millisecond
	fanoutWorker := NewEventFanout(
		log, mockRegistry, []contract.EventSink{slowSink},
		nil, nil, sinkTimeout)

	mockRegistry.EXPECT().GetSinksForRoom(gomock.Any()).Return(roomSinks).Times(1)

	// Given a sink that never returns until its context is canceled
	slowSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(
			func(ctx context.Context, evt event.DomainEvent) error {
				<-ctx.Done()     // Waiting for timeout to trigger cancellation
				return ctx.Err() // Sending back "context deadline exceeded"
			},
		).
		Times(1)
	// Then the next sink is still served after the timeout fires
	fastSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	evt := event.TimerStateChanged{Room: "room-1"}

	// When an event is received and handled by worker
	fanoutWorker.Fanout(context.Background(), evt)
}

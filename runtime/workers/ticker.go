package workers

import (
	"context"
	"log/slog"
	"time"

	"focus-lab/domain"
)

// Dispatcher is the slice of the orchestrator the tick worker needs.
type Dispatcher interface {
	Dispatch(cmd domain.Command)
	RoomIDs() []domain.RoomID
}

// TickWorker polls every registered room on a fixed interval by
// dispatching Tick commands carrying the current time. The countdown
// itself lives in the stored timestamps; this worker merely substitutes
// for a timer interrupt, and a missed or duplicated poll changes nothing.
type TickWorker struct {
	dispatcher Dispatcher
	interval   time.Duration
	now        func() time.Time
	log        *slog.Logger
}

func NewTickWorker(dispatcher Dispatcher, interval time.Duration, log *slog.Logger) *TickWorker {
	return &TickWorker{
		dispatcher: dispatcher,
		interval:   interval,
		now:        time.Now,
		log:        log,
	}
}

func (w *TickWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping tick worker")
			return ctx.Err()
		case <-ticker.C:
			at := w.now()
			for _, roomID := range w.dispatcher.RoomIDs() {
				w.dispatcher.Dispatch(domain.TickCommand{Room: roomID, At: at})
			}
		}
	}
}

package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"focus-lab/domain/event"

	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker drains the fan-out side channel, counts transitions and
// session endings, and periodically logs those counters together with the
// process's own CPU and memory figures.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	telemetryChan  chan event.DomainEvent

	stateChanges  uint64
	sessionsEnded uint64
}

func NewTelemetryWorker(log *slog.Logger, metricInterval time.Duration, telemetryChan chan event.DomainEvent) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		telemetryChan:  telemetryChan,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt := <-w.telemetryChan:
			w.observe(evt)
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.log.Info("Telemetry",
				"state_changes", w.stateChanges,
				"sessions_ended", w.sessionsEnded,
				"cpu_percent", cpu,
				"ram_bytes", rss,
			)
		}
	}
}

func (w *TelemetryWorker) observe(evt event.DomainEvent) {
	switch evt.(type) {
	case event.TimerStateChanged:
		w.stateChanges++
	case event.FocusSessionEnded:
		w.sessionsEnded++
	}
}

// selfStats retrieves memory and CPU figures for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}

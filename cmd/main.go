package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"focus-lab/internal"
	"focus-lab/projection"
	"focus-lab/repositories"
	"focus-lab/runtime"
	"focus-lab/runtime/workers"
	"focus-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting, so every defer (database cleanup included)
// executes before the program exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Supervision & Orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()
	states := repositories.NewTimerStateRepository(db, log)
	sessions := repositories.NewSessionRepository(db, log, config.LimitSessions)

	orchestrator := runtime.NewOrchestrator(
		log, config.TimerConfig(), sup, registry, states,
		config.BufferSize, config.SinkTimeout, config.TickInterval, config.MetricInterval,
	)

	history := projection.NewHistory()
	orchestrator.Add(
		sink.NewDiskSink(sessions, log),
		sink.NewAuditSink(log),
		history,
	)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the Engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}
	defer orchestrator.Stop()

	// 6. Local inspection endpoint
	if config.DebugServerPort > 0 {
		internal.StartDebugServer(db, config.DebugServerPort, func() map[string]any {
			return map[string]any{
				"rooms": len(orchestrator.RoomIDs()),
			}
		})
		log.Info("Debug server listening", "port", config.DebugServerPort)
	}

	<-ctx.Done()
	log.Info("Shutting down gracefully...")
	return nil
}

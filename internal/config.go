package internal

import (
	"time"

	"focus-lab/domain/timer"
)

type Config struct {
	FocusSeconds     int `env:"FOCUS_SECONDS,default=1500"`
	BreakSeconds     int `env:"BREAK_SECONDS,default=300"`
	LongBreakSeconds int `env:"LONG_BREAK_SECONDS,default=900"`
	LongBreakEvery   int `env:"LONG_BREAK_EVERY,default=4"`

	BufferSize      int           `env:"BUFFER_SIZE,required=true"`
	TickInterval    time.Duration `env:"TICK_INTERVAL,required=true"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,required=true"`

	LimitSessions   *int   `env:"LIMIT_SESSIONS"`
	BadgerFilepath  string `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string `env:"LOG_LEVEL,required=true"`
	DebugServerPort int    `env:"DEBUG_SERVER_PORT"`
}

// TimerConfig maps the environment durations onto the core's config.
func (c Config) TimerConfig() timer.Config {
	return timer.Config{
		FocusSeconds:     c.FocusSeconds,
		BreakSeconds:     c.BreakSeconds,
		LongBreakSeconds: c.LongBreakSeconds,
		LongBreakEvery:   c.LongBreakEvery,
	}
}

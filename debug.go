package fibre

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05.000"

// tickStats holds per-tick metrics. Only collected when debug is enabled.
type tickStats struct {
	elapsed   Duration
	active    int
	finished  int
	available int
	poolSize  int
	wall      time.Duration
}

// NewConsoleLogger returns a human-readable zerolog logger writing to w at
// the given level name. Unknown names fall back to info.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(s))
}

// debugTick logs the stats of one tick.
func (s *Scheduler) debugTick(stats tickStats) {
	s.log.Debug().
		Int("frames", stats.elapsed.Frames).
		Float64("seconds", stats.elapsed.Seconds).
		Int("active", stats.active).
		Int("finished", stats.finished).
		Int("pool_available", stats.available).
		Int("pool_size", stats.poolSize).
		Dur("wall", stats.wall).
		Msg("tick")
}

package telemetry

import (
	"time"

	"github.com/rs/zerolog"
)

// Event records a single tool invocation.
type Event struct {
	Tool      string
	RequestID string
	Outcome   string
	Duration  time.Duration
	Args      map[string]any
	Err       error
}

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Sink receives tool invocation events. Implementations must not block the
// request path for long; the log sink writes synchronously and is fast enough.
type Sink interface {
	Record(ev Event)
}

// LogSink emits one structured log line per tool call. Guest contact fields in
// the arguments are masked before they reach the sink, see RedactArgs.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "telemetry").Logger()}
}

func (s *LogSink) Record(ev Event) {
	e := s.log.Info()
	if ev.Err != nil {
		e = s.log.Warn().Err(ev.Err)
	}
	e.Str("tool", ev.Tool).
		Str("request_id", ev.RequestID).
		Str("outcome", ev.Outcome).
		Dur("duration", ev.Duration)
	if len(ev.Args) > 0 {
		e.Interface("args", RedactArgs(ev.Args))
	}
	e.Msg("tool call")
}

// Nop discards all events.
type Nop struct{}

func (Nop) Record(Event) {}

package sinks

import (
	"fmt"

	"helpscout-metrics/internal/shared/loggers"
)

// LogSink emits every metric value as a structured log line. It is the
// default reporting surface when no external dashboard is wired up.
type LogSink struct {
	logger loggers.Logger
}

func NewLogSink(logger loggers.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Set implements Sink.
func (s *LogSink) Set(name string, value any) {
	s.logger.Info().
		Str("metric", name).
		Str("value", fmt.Sprintf("%v", value)).
		Msg("metric reported")
}

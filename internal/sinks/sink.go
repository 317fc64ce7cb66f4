// Package sinks defines where reduced metric values go.
//
// A Sink is a write-only mapping from metric name to value; values are
// numbers, strings, timestamps, or Breakdown maps. Sinks are best-effort:
// Set has no failure contract and must not block the reporting run.
package sinks

// Breakdown maps an owner display name to a conversation count.
type Breakdown map[string]int

//go:generate mockgen -source=sink.go -destination=./mocks/sink_mock.go -package=mocks
type Sink interface {
	Set(name string, value any)
}

// Tee fans a Set call out to every underlying sink, in order.
func Tee(targets ...Sink) Sink {
	return teeSink(targets)
}

type teeSink []Sink

func (t teeSink) Set(name string, value any) {
	for _, s := range t {
		s.Set(name, value)
	}
}

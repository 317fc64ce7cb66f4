package sinks

import "sync"

// Snapshot retains the latest value written for each metric name.
// It is safe for concurrent use; the ops endpoint reads it while the
// reporting loop writes.
type Snapshot struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewSnapshot() *Snapshot {
	return &Snapshot{values: make(map[string]any)}
}

// Set implements Sink.
func (s *Snapshot) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// Values returns a copy of the current metric values.
func (s *Snapshot) Values() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// Len returns the number of metrics currently held.
func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

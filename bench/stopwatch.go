// Package bench times the sampling functions and summarises repeated runs.
package bench

import "time"

// Stopwatch measures elapsed wall-clock time.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// Start returns a new running stopwatch.
func Start() *Stopwatch {
	return &Stopwatch{start: time.Now(), running: true}
}

// Stop halts the stopwatch and returns the elapsed time; stopping an already stopped stopwatch is a no-op.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.elapsed = time.Since(s.start)
		s.running = false
	}

	return s.elapsed
}

// Elapsed returns the time elapsed so far without stopping the stopwatch.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return time.Since(s.start)
	}

	return s.elapsed
}

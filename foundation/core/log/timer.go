// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on stop.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with performance timing
// - 2026-10-16 v0.2.0: StopWithError logs through LogError severity mapping

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs "<operation> completed". A stopped timer
// returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.finish(true)

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.fields)
	}
	return elapsed
}

// StopWithError stops the timer and logs "<operation> failed" with err at
// the level its severity maps to
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.finish(false)

	if t.logger != nil {
		level := LevelError
		if severity, ok := severityOf(err); ok {
			level = LevelForSeverity(severity)
		}
		t.logger.log(level, t.operation+" failed", err, t.fields)
	}
	return elapsed
}

func (t *Timer) finish(success bool) time.Duration {
	elapsed := t.Elapsed()
	t.stopped = true

	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	t.fields["success"] = success
	return elapsed
}

// Cancel cancels the timer without logging completion
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

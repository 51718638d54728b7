package pipeline

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ProgressReporter fans pipeline events out to a single subscriber through a
// bounded channel. Emit never blocks: when the subscriber falls behind, or
// after Close, events are counted as dropped instead.
type ProgressReporter struct {
	mu      sync.RWMutex
	ch      chan ProgressEvent
	closed  bool
	dropped atomic.Int64
}

// NewProgressReporter creates a reporter buffering up to size events.
// Sizes below 1 are raised to 1.
func NewProgressReporter(size int) *ProgressReporter {
	return &ProgressReporter{ch: make(chan ProgressEvent, max(1, size))}
}

// Emit queues event for the subscriber.
func (pr *ProgressReporter) Emit(event ProgressEvent) {
	pr.mu.RLock()
	defer pr.mu.RUnlock()

	if pr.closed {
		pr.dropped.Add(1)
		return
	}
	select {
	case pr.ch <- event:
	default:
		pr.dropped.Add(1)
	}
}

// Subscribe returns the event channel. It is closed by Close.
func (pr *ProgressReporter) Subscribe() <-chan ProgressEvent {
	return pr.ch
}

// Dropped returns how many events were discarded.
func (pr *ProgressReporter) Dropped() int64 {
	return pr.dropped.Load()
}

// Close closes the event channel. Calling it more than once is a no-op.
func (pr *ProgressReporter) Close() {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	if !pr.closed {
		pr.closed = true
		close(pr.ch)
	}
}

// FormatProgress renders an event as one status line, appending the event
// message when there is one.
func FormatProgress(event ProgressEvent) string {
	var marker, state string
	switch event.Status {
	case ProgressPending:
		marker, state = "○", "pending"
	case ProgressWorking:
		marker, state = "●", "working"
	case ProgressComplete:
		marker, state = "✓", "complete"
	case ProgressFailed:
		marker, state = "✗", "failed"
	default:
		marker, state = "?", "unknown status"
	}

	line := fmt.Sprintf("  %s %s %s", marker, event.Section, state)
	if event.Message != "" {
		line += ": " + event.Message
	}
	return line
}

package queue

import (
	"context"
	"sync"

	"github.com/wellywell/plaquexpress/internal/types"
)

const DefaultSize = 100

// Memory is an in-process queue on top of a buffered channel.
type Memory struct {
	mu     sync.Mutex
	closed bool
	jobs   chan types.OrderSummary
}

func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	return &Memory{jobs: make(chan types.OrderSummary, size)}
}

// Enqueue never blocks: a full buffer is reported as ErrQueueFull.
func (m *Memory) Enqueue(ctx context.Context, summary types.OrderSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrQueueClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case m.jobs <- summary:
		return nil
	default:
		return ErrQueueFull
	}
}

func (m *Memory) Jobs() <-chan types.OrderSummary {
	return m.jobs
}

// Close stops accepting jobs. Jobs already queued can still be read.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.jobs)
	}
	return nil
}

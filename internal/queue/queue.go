package queue

import (
	"context"
	"errors"

	"github.com/wellywell/plaquexpress/internal/types"
)

var (
	ErrQueueFull   = errors.New("notification queue is full")
	ErrQueueClosed = errors.New("notification queue is closed")
)

// Queue hands notification jobs from request handlers to the workers.
type Queue interface {
	Enqueue(ctx context.Context, summary types.OrderSummary) error
	Jobs() <-chan types.OrderSummary
	Close() error
}

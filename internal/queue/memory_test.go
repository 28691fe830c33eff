package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/plaquexpress/internal/types"
)

func TestMemory(t *testing.T) {

	ctx := context.Background()
	q := NewMemory(2)

	first := types.OrderSummary{OrderID: "1", OrderNumber: "PX20260001"}
	second := types.OrderSummary{OrderID: "2", OrderNumber: "PX20260002"}

	assert.NoError(t, q.Enqueue(ctx, first))
	assert.NoError(t, q.Enqueue(ctx, second))
	assert.ErrorIs(t, q.Enqueue(ctx, types.OrderSummary{OrderID: "3"}), ErrQueueFull)

	assert.Equal(t, first, <-q.Jobs())

	assert.NoError(t, q.Close())
	assert.NoError(t, q.Close())
	assert.ErrorIs(t, q.Enqueue(ctx, first), ErrQueueClosed)

	// queued jobs survive close
	job, ok := <-q.Jobs()
	assert.True(t, ok)
	assert.Equal(t, second, job)

	_, ok = <-q.Jobs()
	assert.False(t, ok)
}

func TestMemoryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewMemory(0)
	assert.ErrorIs(t, q.Enqueue(ctx, types.OrderSummary{}), context.Canceled)
	assert.Equal(t, DefaultSize, cap(q.jobs))
}

package notify

import (
	"context"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/plaquexpress/internal/types"
	"golang.org/x/sync/errgroup"
)

const DefaultJobTimeout = 30 * time.Second

type Notifier interface {
	Dispatch(ctx context.Context, summary types.OrderSummary) types.DispatchResult
}

// RunWorkers starts n workers reading jobs and blocks until all of them
// stop. Workers stop when jobs is closed or ctx is cancelled. A job that has
// already started gets jobTimeout to finish even if ctx is cancelled.
func RunWorkers(ctx context.Context, jobs <-chan types.OrderSummary, notifier Notifier, n int, jobTimeout time.Duration) error {
	if n < 1 {
		n = 1
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		workerID := i
		g.Go(func() error {
			processJobs(ctx, workerID, jobs, notifier, jobTimeout)
			return nil
		})
	}
	return g.Wait()
}

func processJobs(ctx context.Context, workerID int, jobs <-chan types.OrderSummary, notifier Notifier, jobTimeout time.Duration) {
	for {
		select {
		case <-ctx.Done():
			logger.Infof("Context cancel, stopping notification worker %d", workerID)
			return
		case job, ok := <-jobs:
			if !ok {
				logger.Infof("Job queue closed, stopping notification worker %d", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), jobTimeout)
			result := notifier.Dispatch(jobCtx, job)
			cancel()

			logger.WithFields(logger.Fields{
				"worker":       workerID,
				"order_number": job.OrderNumber,
				"attempted":    result.Attempted,
				"sent":         result.Sent,
			}).Info(result.Message)
		}
	}
}

package client

import (
	"context"
	"time"

	"github.com/mkarev/vault-sync/internal/service"
)

// syncWorker adapts the background sync job to the workers.Worker contract.
type syncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	userID   int64
	interval time.Duration
}

func newSyncWorker(ctx context.Context, job service.ClientSyncJob, userID int64, interval time.Duration) *syncWorker {
	return &syncWorker{
		ctx:      ctx,
		job:      job,
		userID:   userID,
		interval: interval,
	}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.userID, w.interval)
}

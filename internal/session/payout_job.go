package session

import (
	"context"

	"github.com/google/uuid"
)

// payoutJob settles one roll when its timer fires on the worker pool
type payoutJob struct {
	svc    *service
	rollID uuid.UUID
}

func (j *payoutJob) Process(ctx context.Context) error {
	defer j.svc.inFlight.Done()
	return j.svc.settle(ctx, j.rollID)
}

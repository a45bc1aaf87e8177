package handler

import (
	"context"
	"errors"
)

// ErrNoPendingRun is returned when no run is waiting for a worker.
var ErrNoPendingRun = errors.New("no process handled")

func (h *ReconciliationHandler) ReconciliationExecution(ctx context.Context) error {
	acquired, runID, err := h.Usecase.TryAcquireRun(ctx)
	if err != nil {
		return err
	}

	if !acquired {
		return ErrNoPendingRun
	}

	defer h.Usecase.UnlockRun(ctx, runID)

	if err := h.Usecase.ProcessReconciliationJob(ctx, runID); err != nil {
		return err
	}

	return nil
}

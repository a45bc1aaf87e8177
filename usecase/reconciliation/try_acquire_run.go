package reconciliation

import (
	"context"

	"github.com/labstack/gommon/log"

	"github.com/neoglobal/pnl-reconciliation/consts"
)

func (u *reconciliationUsecase) TryAcquireRun(ctx context.Context) (bool, int64, error) {
	runs, err := u.dao.GetReconciliationRunsByStatusList([]int{consts.StatusInit})
	if err != nil {
		return false, 0, err
	}

	for _, run := range runs {
		if !u.locker.TryAcquire(run.ID) {
			continue
		}
		log.Infof("[LOCK_RUN] run_id:%d", run.ID)
		return true, run.ID, nil
	}

	return false, 0, nil
}

func (u *reconciliationUsecase) UnlockRun(ctx context.Context, runID int64) {
	u.locker.Unlock(runID)
	log.Infof("[UNLOCK_RUN] run_id:%d", runID)
}

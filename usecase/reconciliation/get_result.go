package reconciliation

import (
	"encoding/json"
	"fmt"

	"github.com/neoglobal/pnl-reconciliation/consts"
	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
	"github.com/neoglobal/pnl-reconciliation/money"
)

func (u *reconciliationUsecase) GetReconciliationRuns() ([]model.ReconciliationRun, error) {
	return u.dao.GetReconciliationRuns()
}

// GetReconciliationResult returns the fact table of a finished run. Runs that
// are still in flight or failed expose nothing: the last known-good result
// stays authoritative.
func (u *reconciliationUsecase) GetReconciliationResult(runID int64) ([]model.FctReconciliation, error) {
	run, err := u.dao.GetReconciliationRunByID(runID)
	if err != nil {
		return nil, err
	}
	if run.Status != consts.StatusFinished {
		return nil, fmt.Errorf("run %d has not finished (status %d)", runID, run.Status)
	}
	return u.dao.GetFctReconciliationRowsByRunID(runID)
}

func (u *reconciliationUsecase) GetReconciliationSummary(runID int64) (*entity.ReconciliationSummary, error) {
	run, err := u.dao.GetReconciliationRunByID(runID)
	if err != nil {
		return nil, err
	}
	if run.Status != consts.StatusFinished {
		return nil, fmt.Errorf("run %d has not finished (status %d)", runID, run.Status)
	}

	row, err := u.dao.GetReconciliationSummaryRowByRunID(runID)
	if err != nil {
		return nil, err
	}

	exposure, err := money.Parse(row.TotalExposure)
	if err != nil {
		return nil, fmt.Errorf("stored exposure is corrupt: %w", err)
	}
	counts := make(map[entity.Classification]int64)
	if err := json.Unmarshal([]byte(row.CountsJSON), &counts); err != nil {
		return nil, fmt.Errorf("stored counts are corrupt: %w", err)
	}
	for _, c := range entity.AllClassifications() {
		if _, ok := counts[c]; !ok {
			counts[c] = 0
		}
	}

	return &entity.ReconciliationSummary{
		TotalExposure:          exposure,
		IntegrityScore:         row.IntegrityScore,
		CountsByClassification: counts,
	}, nil
}

package dao

import (
	"fmt"

	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
)

func (d *dao) CreateReconciliationSummaryRow(row *model.ReconciliationSummaryRow) error {
	if err := d.db.Create(row).Error; err != nil {
		return fmt.Errorf("failed to create summary row: %w", err)
	}
	return nil
}

func (d *dao) GetReconciliationSummaryRowByRunID(runID int64) (model.ReconciliationSummaryRow, error) {
	var row model.ReconciliationSummaryRow
	if err := d.db.
		Where("reconciliation_run_id = ?", runID).
		First(&row).Error; err != nil {
		return row, fmt.Errorf("summary not found: %w", err)
	}
	return row, nil
}

func (d *dao) DeleteReconciliationSummaryRowByRunID(runID int64) error {
	if err := d.db.
		Where("reconciliation_run_id = ?", runID).
		Delete(model.ReconciliationSummaryRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete summary for run %d: %w", runID, err)
	}
	return nil
}

package dao

import (
	"fmt"

	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
)

// insertChunkSize bounds the number of rows per INSERT so multi-million row
// runs do not build unbounded statements.
const insertChunkSize = 1000

func (d *dao) InsertFctReconciliationRows(rows []model.FctReconciliation) error {
	for start := 0; start < len(rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		tx := d.db.Begin()
		if tx.Error != nil {
			return fmt.Errorf("failed to begin insert transaction: %w", tx.Error)
		}
		for i := start; i < end; i++ {
			if err := tx.Create(&rows[i]).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to insert fact row %s: %w", rows[i].ReconciliationID, err)
			}
		}
		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit fact rows: %w", err)
		}
	}
	return nil
}

func (d *dao) GetFctReconciliationRowsByRunID(runID int64) ([]model.FctReconciliation, error) {
	var rows []model.FctReconciliation
	if err := d.db.
		Where("reconciliation_run_id = ?", runID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (d *dao) DeleteFctReconciliationRowsByRunID(runID int64) error {
	if err := d.db.
		Where("reconciliation_run_id = ?", runID).
		Delete(model.FctReconciliation{}).Error; err != nil {
		return fmt.Errorf("failed to delete fact rows for run %d: %w", runID, err)
	}
	return nil
}

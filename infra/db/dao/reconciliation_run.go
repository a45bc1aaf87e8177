package dao

import (
	"fmt"

	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
)

func (d *dao) CreateReconciliationRun(run *model.ReconciliationRun) error {
	if err := d.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create reconciliation run: %w", err)
	}
	return nil
}

func (d *dao) GetReconciliationRuns() ([]model.ReconciliationRun, error) {
	var runs []model.ReconciliationRun
	if err := d.db.Order("create_time DESC").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (d *dao) GetReconciliationRunsByStatusList(statusList []int) ([]model.ReconciliationRun, error) {
	var runs []model.ReconciliationRun
	if err := d.db.
		Select("id").
		Where("status IN (?)", statusList).
		Order("create_time ASC").
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (d *dao) GetReconciliationRunByID(runID int64) (model.ReconciliationRun, error) {
	var run model.ReconciliationRun
	if err := d.db.First(&run, runID).Error; err != nil {
		return run, fmt.Errorf("run not found: %w", err)
	}
	return run, nil
}

func (d *dao) UpdateReconciliationRun(run model.ReconciliationRun) error {
	if err := d.db.Save(&run).Error; err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	return nil
}

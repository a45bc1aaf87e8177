package dao

import (
	"fmt"

	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
)

func (d *dao) CreateReconciliationRunAsset(asset model.ReconciliationRunAsset) error {
	if err := d.db.Create(&asset).Error; err != nil {
		return fmt.Errorf("failed to save file asset: %w", err)
	}
	return nil
}

func (d *dao) GetReconciliationRunAssetsByRunID(runID int64) ([]model.ReconciliationRunAsset, error) {
	var assets []model.ReconciliationRunAsset
	if err := d.db.
		Where("reconciliation_run_id = ?", runID).
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

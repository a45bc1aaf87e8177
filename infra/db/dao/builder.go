package dao

import (
	"github.com/neoglobal/pnl-reconciliation/infra/db/model"

	"github.com/jinzhu/gorm"
)

//go:generate mockgen -destination=mocks/mock_dao.go -package=mock_dao -source=builder.go DaoMethod

type DaoMethod interface {
	CreateReconciliationRun(run *model.ReconciliationRun) error
	GetReconciliationRuns() ([]model.ReconciliationRun, error)
	GetReconciliationRunsByStatusList(statusList []int) ([]model.ReconciliationRun, error)
	GetReconciliationRunByID(runID int64) (model.ReconciliationRun, error)
	UpdateReconciliationRun(run model.ReconciliationRun) error
	CreateReconciliationRunAsset(asset model.ReconciliationRunAsset) error
	GetReconciliationRunAssetsByRunID(runID int64) ([]model.ReconciliationRunAsset, error)
	InsertFctReconciliationRows(rows []model.FctReconciliation) error
	GetFctReconciliationRowsByRunID(runID int64) ([]model.FctReconciliation, error)
	DeleteFctReconciliationRowsByRunID(runID int64) error
	CreateReconciliationSummaryRow(row *model.ReconciliationSummaryRow) error
	GetReconciliationSummaryRowByRunID(runID int64) (model.ReconciliationSummaryRow, error)
	DeleteReconciliationSummaryRowByRunID(runID int64) error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}

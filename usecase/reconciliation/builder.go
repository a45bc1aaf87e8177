package reconciliation

import (
	"context"

	"github.com/neoglobal/pnl-reconciliation/consts"
	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/infra/db/dao"
	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
	"github.com/neoglobal/pnl-reconciliation/infra/locker"

	"github.com/jinzhu/gorm"
)

type ReconciliationUsecase interface {
	ProcessReconciliationInit(billingCSV, ledgerCSV, operator string) (*model.ReconciliationRun, error)
	ProcessReconciliationJob(ctx context.Context, runID int64) error
	TryAcquireRun(ctx context.Context) (bool, int64, error)
	UnlockRun(ctx context.Context, runID int64)
	GetReconciliationRuns() ([]model.ReconciliationRun, error)
	GetReconciliationResult(runID int64) ([]model.FctReconciliation, error)
	GetReconciliationSummary(runID int64) (*entity.ReconciliationSummary, error)
}

type reconciliationUsecase struct {
	dao       dao.DaoMethod
	locker    *locker.Locker
	batchSize int
	uploadDir string
}

func NewReconciliationUsecase(db *gorm.DB, l *locker.Locker) ReconciliationUsecase {
	return &reconciliationUsecase{
		dao:       dao.NewDaoMethod(db),
		locker:    l,
		batchSize: consts.DefaultBatchSize,
		uploadDir: "uploads",
	}
}

// NewReconciliationUsecaseWithDao wires an explicit DAO and batch size; tests
// use it with a mock DAO.
func NewReconciliationUsecaseWithDao(d dao.DaoMethod, l *locker.Locker, batchSize int, uploadDir string) ReconciliationUsecase {
	return &reconciliationUsecase{
		dao:       d,
		locker:    l,
		batchSize: batchSize,
		uploadDir: uploadDir,
	}
}

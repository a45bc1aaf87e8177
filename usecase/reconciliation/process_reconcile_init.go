package reconciliation

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/neoglobal/pnl-reconciliation/consts"
	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
)

// ProcessReconciliationInit registers a new run over a staged billing/ledger
// file pair. The run starts in status init; a cron worker picks it up.
func (u *reconciliationUsecase) ProcessReconciliationInit(billingCSV, ledgerCSV, operator string) (*model.ReconciliationRun, error) {
	timeNowUnix := time.Now().Unix()

	billingURL, err := u.uploadFile(billingCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to upload billing file: %w", err)
	}
	ledgerURL, err := u.uploadFile(ledgerCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to upload ledger file: %w", err)
	}

	run := &model.ReconciliationRun{
		RunUUID:            uuid.New().String(),
		ReconciliationType: consts.ReconciliationTypeBillingLedger,
		TotalMainRow:       0, // known once the billing file is counted
		CurrentMainRow:     0,
		Status:             consts.StatusInit,
		Result:             "",
		QualityFlags:       "",
		CreateTime:         timeNowUnix,
		CreateBy:           operator,
		UpdateTime:         timeNowUnix,
		UpdateBy:           operator,
	}
	if err := u.dao.CreateReconciliationRun(run); err != nil {
		return nil, err
	}

	assets := []model.ReconciliationRunAsset{
		{ReconciliationRunID: run.ID, DataType: consts.DataTypeBillingFile, FileName: filepath.Base(billingURL), FileUrl: billingURL, CreateTime: timeNowUnix, CreateBy: operator},
		{ReconciliationRunID: run.ID, DataType: consts.DataTypeLedgerFile, FileName: filepath.Base(ledgerURL), FileUrl: ledgerURL, CreateTime: timeNowUnix, CreateBy: operator},
	}
	for _, asset := range assets {
		if err := u.dao.CreateReconciliationRunAsset(asset); err != nil {
			return nil, err
		}
	}

	log.Infof("[ReconcileInit] Registered run %s (id %d)", run.RunUUID, run.ID)
	return run, nil
}

// NOTES: this is the simulation version of object storage, later we can
// implement an object storage uploader in production.
func (u *reconciliationUsecase) uploadFile(filePath string) (string, error) {
	input, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return "", err
	}

	fileName := filepath.Base(filePath)
	destPath := filepath.Join(u.uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), fileName))

	if err := os.WriteFile(destPath, input, 0o644); err != nil {
		return "", err
	}

	return destPath, nil
}

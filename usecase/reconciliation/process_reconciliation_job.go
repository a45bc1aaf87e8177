package reconciliation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/neoglobal/pnl-reconciliation/consts"
	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/gateway"
	"github.com/neoglobal/pnl-reconciliation/infra/db/model"
)

// ProcessReconciliationJob executes one run end to end: ledger index build,
// batched billing classification, symmetric ledger pass, KPI rollup. A run
// either reaches StatusFinished with a full, consistent result set or is
// marked failed; partial fact rows of an unfinished run are never served.
func (u *reconciliationUsecase) ProcessReconciliationJob(ctx context.Context, runID int64) error {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[ReconcileJob] Panic recovered for run %d: %v", runID, r)
		}
	}()

	log.Infof("[ReconcileJob] Starting job for run: %d", runID)

	run, err := u.dao.GetReconciliationRunByID(runID)
	if err != nil {
		log.Errorf("[ReconcileJob] Could not fetch run %d: %v", runID, err)
		return err
	}

	assets, err := u.dao.GetReconciliationRunAssetsByRunID(runID)
	if err != nil {
		log.Errorf("[ReconcileJob] Could not fetch assets for run %d: %v", runID, err)
		return err
	}

	billingPath, ledgerPath, err := findRunFiles(assets)
	if err != nil {
		log.Errorf("[ReconcileJob] Run %d asset lookup failed: %v", runID, err)
		return u.failRun(run, err)
	}

	// A retried run replaces its previous partial output wholesale.
	if err := u.dao.DeleteFctReconciliationRowsByRunID(runID); err != nil {
		return u.failRun(run, err)
	}
	if err := u.dao.DeleteReconciliationSummaryRowByRunID(runID); err != nil {
		return u.failRun(run, err)
	}

	ledger, flags, err := gateway.ReadLedgerRecords(ledgerPath)
	if err != nil {
		// Schema violations abort: a silently coerced ledger would corrupt
		// the aggregate.
		log.Errorf("[ReconcileJob] Ledger parse failed for run %d: %v", runID, err)
		return u.failRun(run, err)
	}
	idx, dupFlags := BuildLedgerIndex(ledger)
	flags = append(flags, dupFlags...)
	log.Infof("[ReconcileJob] Run %d: indexed %d ledger keys (%d quality flags)", runID, idx.Size(), len(flags))

	totalRows, err := gateway.CountDataRows(billingPath)
	if err != nil {
		return u.failRun(run, err)
	}

	run.TotalMainRow = totalRows
	run.CurrentMainRow = 0
	run.Status = consts.StatusRunning
	run.UpdateTime = time.Now().Unix()
	run.UpdateBy = "system"
	if err := u.dao.UpdateReconciliationRun(run); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	reader, err := gateway.OpenBillingFile(billingPath)
	if err != nil {
		return u.failRun(run, err)
	}
	defer reader.Close()

	acc := NewSummaryAccumulator()
	var processed int64
	for {
		batch, batchFlags, readErr := reader.ReadBatch(u.batchSize)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return u.failRun(run, readErr)
		}
		flags = append(flags, batchFlags...)

		if len(batch) > 0 {
			records := MatchBatch(batch, idx)
			acc.ObserveAll(records)
			if err := u.dao.InsertFctReconciliationRows(toFactRows(runID, records)); err != nil {
				return u.failRun(run, err)
			}
		}

		processed += int64(len(batch) + len(batchFlags))
		run.CurrentMainRow = processed
		if run.Result, err = acc.MarshalState(); err != nil {
			return u.failRun(run, err)
		}
		run.UpdateTime = time.Now().Unix()
		if err := u.dao.UpdateReconciliationRun(run); err != nil {
			return fmt.Errorf("failed to update run: %w", err)
		}
		log.Infof("[ReconcileJob] Run %d: processed %d of %d billing rows", runID, processed, totalRows)

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	// Symmetric outer-join completeness: ledger rows nothing referenced.
	unmatched := UnmatchedLedger(idx)
	if len(unmatched) > 0 {
		acc.ObserveAll(unmatched)
		if err := u.dao.InsertFctReconciliationRows(toFactRows(runID, unmatched)); err != nil {
			return u.failRun(run, err)
		}
		log.Infof("[ReconcileJob] Run %d: %d ledger records missing in billing", runID, len(unmatched))
	}

	if err := u.finishRun(run, acc, flags); err != nil {
		return err
	}
	log.Infof("[ReconcileJob] Job completed for run %d", runID)
	return nil
}

func (u *reconciliationUsecase) finishRun(run model.ReconciliationRun, acc *SummaryAccumulator, flags []entity.DataQualityFlag) error {
	summary := acc.Summary()

	counts, err := json.Marshal(summary.CountsByClassification)
	if err != nil {
		return u.failRun(run, fmt.Errorf("failed to marshal counts: %w", err))
	}
	summaryRow := &model.ReconciliationSummaryRow{
		ReconciliationRunID: run.ID,
		TotalExposure:       summary.TotalExposure.String(),
		IntegrityScore:      summary.IntegrityScore,
		CountsJSON:          string(counts),
		CreateTime:          time.Now().Unix(),
	}
	if err := u.dao.CreateReconciliationSummaryRow(summaryRow); err != nil {
		return u.failRun(run, err)
	}

	finalResult, err := json.Marshal(summary)
	if err != nil {
		return u.failRun(run, fmt.Errorf("failed to marshal summary: %w", err))
	}
	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		return u.failRun(run, fmt.Errorf("failed to marshal quality flags: %w", err))
	}

	run.Result = string(finalResult)
	run.QualityFlags = string(flagsJSON)
	run.Status = consts.StatusFinished
	run.UpdateTime = time.Now().Unix()
	run.UpdateBy = "system"
	if err := u.dao.UpdateReconciliationRun(run); err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	log.Infof("[ReconcileJob] Run %d finished: exposure=%s integrity=%.2f%%",
		run.ID, summary.TotalExposure, summary.IntegrityScore)
	return nil
}

func (u *reconciliationUsecase) failRun(run model.ReconciliationRun, cause error) error {
	run.Status = consts.StatusFailed
	run.UpdateTime = time.Now().Unix()
	run.UpdateBy = "system"
	if err := u.dao.UpdateReconciliationRun(run); err != nil {
		log.Errorf("[ReconcileJob] Failed to mark run %d failed: %v", run.ID, err)
	}
	return cause
}

func findRunFiles(assets []model.ReconciliationRunAsset) (billingPath, ledgerPath string, err error) {
	for _, asset := range assets {
		switch asset.DataType {
		case consts.DataTypeBillingFile:
			billingPath = asset.FileUrl
		case consts.DataTypeLedgerFile:
			ledgerPath = asset.FileUrl
		}
	}
	if billingPath == "" {
		return "", "", errors.New("missing billing file URL")
	}
	if ledgerPath == "" {
		return "", "", errors.New("missing ledger file URL")
	}
	return billingPath, ledgerPath, nil
}

func toFactRows(runID int64, records []entity.ReconciledRecord) []model.FctReconciliation {
	rows := make([]model.FctReconciliation, 0, len(records))
	for _, rec := range records {
		row := model.FctReconciliation{
			ReconciliationRunID: runID,
			ReconciliationID:    rec.ReconciliationID,
			Variance:            rec.Variance.String(),
			Classification:      string(rec.Classification),
			IsMissingInErp:      rec.Classification == entity.MissingInLedger,
			IsAmountMismatch:    rec.Classification == entity.AmountMismatch,
			IsPerfectMatch:      rec.Classification == entity.PerfectMatch,
			Matched:             rec.Matched,
		}
		if rec.BillingAmount != nil {
			row.BillingAmount = rec.BillingAmount.String()
		}
		if rec.LedgerAmount != nil {
			row.LedgerAmount = rec.LedgerAmount.String()
		}
		rows = append(rows, row)
	}
	return rows
}

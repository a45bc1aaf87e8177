package gateway

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/neoglobal/pnl-reconciliation/entity"
)

// LedgerPairWriter appends generated billing and ledger rows to a pair of
// staged CSV files. The synthetic generator feeds it one batch at a time.
type LedgerPairWriter struct {
	billingFile *os.File
	ledgerFile  *os.File
	billing     *csv.Writer
	ledger      *csv.Writer
}

// NewLedgerPairWriter creates (truncates) both output files and writes their
// headers.
func NewLedgerPairWriter(billingPath, ledgerPath string) (*LedgerPairWriter, error) {
	billingFile, err := os.Create(billingPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create billing file %s: %w", billingPath, err)
	}
	ledgerFile, err := os.Create(ledgerPath)
	if err != nil {
		billingFile.Close()
		return nil, fmt.Errorf("failed to create ledger file %s: %w", ledgerPath, err)
	}

	w := &LedgerPairWriter{
		billingFile: billingFile,
		ledgerFile:  ledgerFile,
		billing:     csv.NewWriter(billingFile),
		ledger:      csv.NewWriter(ledgerFile),
	}
	if err := w.billing.Write(billingHeader); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write billing header: %w", err)
	}
	if err := w.ledger.Write(ledgerHeader); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write ledger header: %w", err)
	}
	return w, nil
}

// WriteBilling appends one billing record.
func (w *LedgerPairWriter) WriteBilling(rec entity.BillingRecord) error {
	return w.billing.Write([]string{
		rec.ID,
		rec.Amount.String(),
		rec.Currency,
		rec.CreatedUTC.Format(time.RFC3339),
	})
}

// WriteLedger appends one enterprise-ledger record.
func (w *LedgerPairWriter) WriteLedger(rec entity.LedgerRecord) error {
	return w.ledger.Write([]string{
		rec.ID,
		rec.ExternalID,
		strconv.Itoa(rec.AccountCode),
		rec.CreditAmount.String(),
		rec.DebitAmount.String(),
		rec.Memo,
		rec.CreatedUTC.Format(time.RFC3339),
	})
}

// Flush pushes buffered rows to disk; call it at every batch boundary.
func (w *LedgerPairWriter) Flush() error {
	w.billing.Flush()
	if err := w.billing.Error(); err != nil {
		return fmt.Errorf("failed to flush billing rows: %w", err)
	}
	w.ledger.Flush()
	if err := w.ledger.Error(); err != nil {
		return fmt.Errorf("failed to flush ledger rows: %w", err)
	}
	return nil
}

// Close flushes and closes both files.
func (w *LedgerPairWriter) Close() error {
	flushErr := w.Flush()
	if err := w.billingFile.Close(); err != nil && flushErr == nil {
		flushErr = err
	}
	if err := w.ledgerFile.Close(); err != nil && flushErr == nil {
		flushErr = err
	}
	return flushErr
}

// GroundTruthWriter records the expected classification per generated charge
// id, for the verification harness.
type GroundTruthWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewGroundTruthWriter creates (truncates) the ground truth file.
func NewGroundTruthWriter(path string) (*GroundTruthWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create ground truth file %s: %w", path, err)
	}
	w := &GroundTruthWriter{file: file, writer: csv.NewWriter(file)}
	if err := w.writer.Write(groundTruthHeader); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write ground truth header: %w", err)
	}
	return w, nil
}

// Write appends one expected classification.
func (w *GroundTruthWriter) Write(chargeID string, class entity.Classification) error {
	return w.writer.Write([]string{chargeID, string(class)})
}

// Close flushes and closes the file.
func (w *GroundTruthWriter) Close() error {
	w.writer.Flush()
	flushErr := w.writer.Error()
	if err := w.file.Close(); err != nil && flushErr == nil {
		flushErr = err
	}
	return flushErr
}

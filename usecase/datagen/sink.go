package datagen

import (
	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/gateway"
)

// CSVSink writes generated records to staged CSV files via the gateway
// writers.
type CSVSink struct {
	pair  *gateway.LedgerPairWriter
	truth *gateway.GroundTruthWriter
}

// NewCSVSink creates (truncating) the three output files.
func NewCSVSink(billingPath, ledgerPath, groundTruthPath string) (*CSVSink, error) {
	pair, err := gateway.NewLedgerPairWriter(billingPath, ledgerPath)
	if err != nil {
		return nil, err
	}
	truth, err := gateway.NewGroundTruthWriter(groundTruthPath)
	if err != nil {
		pair.Close()
		return nil, err
	}
	return &CSVSink{pair: pair, truth: truth}, nil
}

func (s *CSVSink) WriteBilling(rec entity.BillingRecord) error {
	return s.pair.WriteBilling(rec)
}

func (s *CSVSink) WriteLedger(rec entity.LedgerRecord) error {
	return s.pair.WriteLedger(rec)
}

func (s *CSVSink) WriteGroundTruth(chargeID string, class entity.Classification) error {
	return s.truth.Write(chargeID, class)
}

func (s *CSVSink) Flush() error {
	return s.pair.Flush()
}

// Close flushes and closes all three files.
func (s *CSVSink) Close() error {
	pairErr := s.pair.Close()
	if err := s.truth.Close(); err != nil && pairErr == nil {
		pairErr = err
	}
	return pairErr
}

// MemorySink collects generated records in slices. It backs the engine
// validation path and tests, where no files are wanted.
type MemorySink struct {
	Billing     []entity.BillingRecord
	Ledger      []entity.LedgerRecord
	GroundTruth map[string]entity.Classification
}

func NewMemorySink() *MemorySink {
	return &MemorySink{GroundTruth: make(map[string]entity.Classification)}
}

func (s *MemorySink) WriteBilling(rec entity.BillingRecord) error {
	s.Billing = append(s.Billing, rec)
	return nil
}

func (s *MemorySink) WriteLedger(rec entity.LedgerRecord) error {
	s.Ledger = append(s.Ledger, rec)
	return nil
}

func (s *MemorySink) WriteGroundTruth(chargeID string, class entity.Classification) error {
	s.GroundTruth[chargeID] = class
	return nil
}

func (s *MemorySink) Flush() error {
	return nil
}

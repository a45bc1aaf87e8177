package entity

import (
	"github.com/neoglobal/pnl-reconciliation/money"
)

// Classification labels the outcome of matching one billing/ledger pair.
type Classification string

const (
	PerfectMatch     Classification = "PERFECT_MATCH"
	AmountMismatch   Classification = "AMOUNT_MISMATCH"
	MissingInLedger  Classification = "MISSING_IN_LEDGER"
	MissingInBilling Classification = "MISSING_IN_BILLING"
)

// AllClassifications enumerates every classification value in a fixed order,
// so rollups can report zero counts explicitly.
func AllClassifications() []Classification {
	return []Classification{PerfectMatch, AmountMismatch, MissingInLedger, MissingInBilling}
}

// ReconciledRecord is one row of the reconciliation fact table. It is created
// once per run and never mutated; a new run replaces the prior result set
// wholesale.
type ReconciledRecord struct {
	ReconciliationID string         `json:"reconciliation_id"`
	BillingAmount    *money.Amount  `json:"billing_amount"`
	LedgerAmount     *money.Amount  `json:"ledger_amount"`
	Variance         money.Amount   `json:"variance"`
	Classification   Classification `json:"classification"`
	Matched          bool           `json:"matched"`
}

// ReconciliationSummary is the KPI rollup over one run's fact table. It holds
// no state of its own and is recomputed fully each run.
type ReconciliationSummary struct {
	TotalExposure money.Amount `json:"total_exposure"`
	// IntegrityScore is the percentage of records classified PERFECT_MATCH.
	// An empty record set scores 100 (vacuously perfect). The value is
	// presentation-only and never feeds back into monetary arithmetic.
	IntegrityScore         float64                  `json:"integrity_score"`
	CountsByClassification map[Classification]int64 `json:"counts_by_classification"`
}

// DataQualityFlagKind distinguishes per-record quality issues that do not
// abort a run.
type DataQualityFlagKind string

const (
	FlagDuplicateKey DataQualityFlagKind = "DUPLICATE_KEY"
	FlagPrecision    DataQualityFlagKind = "PRECISION"
)

// DataQualityFlag records a per-record violation (duplicate ledger key,
// unrepresentable amount) surfaced alongside the run result instead of
// silently dropping the record.
type DataQualityFlag struct {
	Kind     DataQualityFlagKind `json:"kind"`
	RecordID string              `json:"record_id"`
	Detail   string              `json:"detail"`
}

// Discrepancy is one id whose injected ground-truth classification disagrees
// with the engine's output.
type Discrepancy struct {
	ID       string         `json:"id"`
	Expected Classification `json:"expected"`
	Got      Classification `json:"got"`
}

// VerificationReport is the outcome of checking engine output against the
// synthetic generator's ground truth.
type VerificationReport struct {
	Matches       bool          `json:"matches"`
	Discrepancies []Discrepancy `json:"discrepancies"`
}

package reconciliation

import (
	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/money"
)

// LedgerIndex is the external_id -> ledger record mapping used for the join.
// It must be fully built before any matching begins; splitting the billing
// side into batches then cannot change classification results.
type LedgerIndex struct {
	byExternalID map[string]entity.LedgerRecord
	order        []string
	consumed     map[string]bool
}

// BuildLedgerIndex indexes ledger records by external id. The first-seen
// record wins the mapping slot; every later collision is reported as a
// DUPLICATE_KEY data quality flag instead of aborting the run.
func BuildLedgerIndex(ledger []entity.LedgerRecord) (*LedgerIndex, []entity.DataQualityFlag) {
	idx := &LedgerIndex{
		byExternalID: make(map[string]entity.LedgerRecord, len(ledger)),
		consumed:     make(map[string]bool),
	}

	var flags []entity.DataQualityFlag
	for _, rec := range ledger {
		if _, exists := idx.byExternalID[rec.ExternalID]; exists {
			dup := &entity.DuplicateKeyError{ExternalID: rec.ExternalID, LedgerID: rec.ID}
			flags = append(flags, entity.DataQualityFlag{
				Kind:     entity.FlagDuplicateKey,
				RecordID: rec.ExternalID,
				Detail:   dup.Error(),
			})
			continue
		}
		idx.byExternalID[rec.ExternalID] = rec
		idx.order = append(idx.order, rec.ExternalID)
	}
	return idx, flags
}

// Size returns the number of distinct ledger keys in the index.
func (idx *LedgerIndex) Size() int {
	return len(idx.byExternalID)
}

// MatchBatch classifies one batch of billing records against the index.
// A looked-up ledger key is marked consumed so the symmetric pass can emit
// the never-referenced remainder.
func MatchBatch(billing []entity.BillingRecord, idx *LedgerIndex) []entity.ReconciledRecord {
	out := make([]entity.ReconciledRecord, 0, len(billing))
	for _, b := range billing {
		billingAmount := b.Amount

		ledgerRec, found := idx.byExternalID[b.ID]
		if !found {
			// The full billing amount is at risk.
			out = append(out, entity.ReconciledRecord{
				ReconciliationID: b.ID,
				BillingAmount:    &billingAmount,
				LedgerAmount:     nil,
				Variance:         b.Amount,
				Classification:   entity.MissingInLedger,
				Matched:          false,
			})
			continue
		}
		idx.consumed[b.ID] = true

		ledgerAmount := ledgerRec.CreditAmount
		variance := b.Amount.Sub(ledgerRec.CreditAmount)

		classification := entity.PerfectMatch
		if !variance.IsZero() {
			classification = entity.AmountMismatch
		}
		out = append(out, entity.ReconciledRecord{
			ReconciliationID: b.ID,
			BillingAmount:    &billingAmount,
			LedgerAmount:     &ledgerAmount,
			Variance:         variance,
			Classification:   classification,
			Matched:          true,
		})
	}
	return out
}

// UnmatchedLedger emits one MISSING_IN_BILLING record for every ledger key no
// billing record ever referenced, in first-seen input order. The variance is
// the negated credit amount: the billing side contributes nothing.
func UnmatchedLedger(idx *LedgerIndex) []entity.ReconciledRecord {
	var out []entity.ReconciledRecord
	for _, externalID := range idx.order {
		if idx.consumed[externalID] {
			continue
		}
		rec := idx.byExternalID[externalID]
		ledgerAmount := rec.CreditAmount
		out = append(out, entity.ReconciledRecord{
			ReconciliationID: externalID,
			BillingAmount:    nil,
			LedgerAmount:     &ledgerAmount,
			Variance:         money.Zero().Sub(rec.CreditAmount),
			Classification:   entity.MissingInBilling,
			Matched:          false,
		})
	}
	return out
}

// Reconcile performs the full outer join in one call for in-memory inputs:
// index build, billing classification, then the symmetric ledger pass. The
// returned quality flags carry duplicate-key collisions.
func Reconcile(billing []entity.BillingRecord, ledger []entity.LedgerRecord) ([]entity.ReconciledRecord, []entity.DataQualityFlag) {
	idx, flags := BuildLedgerIndex(ledger)
	records := MatchBatch(billing, idx)
	records = append(records, UnmatchedLedger(idx)...)
	return records, flags
}

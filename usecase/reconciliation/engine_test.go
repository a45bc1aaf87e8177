package reconciliation_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/money"
	"github.com/neoglobal/pnl-reconciliation/usecase/reconciliation"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func billingRecord(id, amount string) entity.BillingRecord {
	return entity.BillingRecord{
		ID:         id,
		Amount:     money.MustParse(amount),
		Currency:   "USD",
		CreatedUTC: testTime,
	}
}

func ledgerRecord(ledgerID, externalID, credit string) entity.LedgerRecord {
	return entity.LedgerRecord{
		ID:           ledgerID,
		ExternalID:   externalID,
		AccountCode:  4000,
		CreditAmount: money.MustParse(credit),
		DebitAmount:  money.Zero(),
		Memo:         entity.MemoPrefix + externalID,
		CreatedUTC:   testTime.Add(2 * time.Hour),
	}
}

func TestReconcileScenarios(t *testing.T) {
	tests := []struct {
		name         string
		billing      []entity.BillingRecord
		ledger       []entity.LedgerRecord
		wantClass    entity.Classification
		wantVariance string
		wantMatched  bool
	}{
		{
			name:         "perfect match has exactly zero variance",
			billing:      []entity.BillingRecord{billingRecord("ch_1", "100.0000")},
			ledger:       []entity.LedgerRecord{ledgerRecord("ns_1", "ch_1", "100.0000")},
			wantClass:    entity.PerfectMatch,
			wantVariance: "0.0000",
			wantMatched:  true,
		},
		{
			name:         "missing in ledger puts the full amount at risk",
			billing:      []entity.BillingRecord{billingRecord("ch_2", "50.0000")},
			ledger:       nil,
			wantClass:    entity.MissingInLedger,
			wantVariance: "50.0000",
			wantMatched:  false,
		},
		{
			name:         "amount mismatch preserves the signed variance",
			billing:      []entity.BillingRecord{billingRecord("ch_3", "10.0000")},
			ledger:       []entity.LedgerRecord{ledgerRecord("ns_3", "ch_3", "9.9900")},
			wantClass:    entity.AmountMismatch,
			wantVariance: "0.0100",
			wantMatched:  true,
		},
		{
			name:         "negative variance when the ledger credit is higher",
			billing:      []entity.BillingRecord{billingRecord("ch_4", "10.0000")},
			ledger:       []entity.LedgerRecord{ledgerRecord("ns_4", "ch_4", "10.0100")},
			wantClass:    entity.AmountMismatch,
			wantVariance: "-0.0100",
			wantMatched:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, flags := reconciliation.Reconcile(tt.billing, tt.ledger)
			require.Len(t, records, 1)
			assert.Empty(t, flags)

			rec := records[0]
			assert.Equal(t, tt.billing[0].ID, rec.ReconciliationID)
			assert.Equal(t, tt.wantClass, rec.Classification)
			assert.Equal(t, tt.wantVariance, rec.Variance.String())
			assert.Equal(t, tt.wantMatched, rec.Matched)
		})
	}
}

func TestReconcileMissingInBilling(t *testing.T) {
	records, flags := reconciliation.Reconcile(
		nil,
		[]entity.LedgerRecord{ledgerRecord("ns_9", "ch_9", "75.2500")},
	)
	require.Len(t, records, 1)
	assert.Empty(t, flags)

	rec := records[0]
	assert.Equal(t, "ch_9", rec.ReconciliationID)
	assert.Equal(t, entity.MissingInBilling, rec.Classification)
	assert.Nil(t, rec.BillingAmount)
	require.NotNil(t, rec.LedgerAmount)
	assert.Equal(t, "75.2500", rec.LedgerAmount.String())
	assert.Equal(t, "-75.2500", rec.Variance.String())
	assert.False(t, rec.Matched)
}

func TestReconcileCompleteness(t *testing.T) {
	// Every input id appears in exactly one output record.
	billing := []entity.BillingRecord{
		billingRecord("ch_a", "10.0000"),
		billingRecord("ch_b", "20.0000"),
		billingRecord("ch_c", "30.0000"),
	}
	ledger := []entity.LedgerRecord{
		ledgerRecord("ns_1", "ch_b", "20.0000"),
		ledgerRecord("ns_2", "ch_c", "29.0000"),
		ledgerRecord("ns_3", "ch_z", "99.0000"),
	}

	records, flags := reconciliation.Reconcile(billing, ledger)
	assert.Empty(t, flags)
	require.Len(t, records, 4)

	seen := map[string]int{}
	for _, rec := range records {
		seen[rec.ReconciliationID]++
	}
	assert.Equal(t, map[string]int{"ch_a": 1, "ch_b": 1, "ch_c": 1, "ch_z": 1}, seen)
}

func TestBuildLedgerIndexDuplicateKeys(t *testing.T) {
	idx, flags := reconciliation.BuildLedgerIndex([]entity.LedgerRecord{
		ledgerRecord("ns_1", "ch_dup", "10.0000"),
		ledgerRecord("ns_2", "ch_dup", "11.0000"),
		ledgerRecord("ns_3", "ch_ok", "5.0000"),
	})

	assert.Equal(t, 2, idx.Size())
	require.Len(t, flags, 1)
	assert.Equal(t, entity.FlagDuplicateKey, flags[0].Kind)
	assert.Equal(t, "ch_dup", flags[0].RecordID)
	assert.Contains(t, flags[0].Detail, "ns_2")

	// First-seen wins the mapping slot.
	records := reconciliation.MatchBatch([]entity.BillingRecord{billingRecord("ch_dup", "10.0000")}, idx)
	require.Len(t, records, 1)
	assert.Equal(t, entity.PerfectMatch, records[0].Classification)
}

func TestReconcileOrderPermutationYieldsSameMultiset(t *testing.T) {
	billing := []entity.BillingRecord{
		billingRecord("ch_a", "10.0000"),
		billingRecord("ch_b", "20.0000"),
		billingRecord("ch_c", "30.0000"),
	}
	ledger := []entity.LedgerRecord{
		ledgerRecord("ns_1", "ch_a", "10.0000"),
		ledgerRecord("ns_2", "ch_c", "31.0000"),
	}

	first, _ := reconciliation.Reconcile(billing, ledger)

	billingPermuted := []entity.BillingRecord{billing[2], billing[0], billing[1]}
	ledgerPermuted := []entity.LedgerRecord{ledger[1], ledger[0]}
	second, _ := reconciliation.Reconcile(billingPermuted, ledgerPermuted)

	assert.ElementsMatch(t, normalize(first), normalize(second))
}

func TestMatchBatchInvariantToBatchSize(t *testing.T) {
	billing := []entity.BillingRecord{
		billingRecord("ch_a", "10.0000"),
		billingRecord("ch_b", "20.0000"),
		billingRecord("ch_c", "30.0000"),
		billingRecord("ch_d", "40.0000"),
	}
	ledger := []entity.LedgerRecord{
		ledgerRecord("ns_1", "ch_a", "10.0000"),
		ledgerRecord("ns_2", "ch_c", "29.9900"),
		ledgerRecord("ns_3", "ch_x", "1.0000"),
	}

	wholeRun, _ := reconciliation.Reconcile(billing, ledger)

	idx, _ := reconciliation.BuildLedgerIndex(ledger)
	var batched []entity.ReconciledRecord
	for _, batch := range [][]entity.BillingRecord{billing[:1], billing[1:3], billing[3:]} {
		batched = append(batched, reconciliation.MatchBatch(batch, idx)...)
	}
	batched = append(batched, reconciliation.UnmatchedLedger(idx)...)

	assert.Equal(t, normalize(wholeRun), normalize(batched))
}

// normalize projects records onto comparable tuples sorted by id.
func normalize(records []entity.ReconciledRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.ReconciliationID+"|"+string(rec.Classification)+"|"+rec.Variance.String())
	}
	sort.Strings(out)
	return out
}

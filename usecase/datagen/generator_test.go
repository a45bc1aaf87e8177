package datagen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/money"
	"github.com/neoglobal/pnl-reconciliation/usecase/datagen"
	"github.com/neoglobal/pnl-reconciliation/usecase/reconciliation"
	"github.com/neoglobal/pnl-reconciliation/usecase/verify"
)

var baseTime = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func testParams(n int, seed int64) datagen.Params {
	return datagen.Params{
		N:                n,
		MissingFraction:  0.05,
		MismatchFraction: 0.10,
		MismatchEpsilon:  money.MustParse("0.0100"),
		Seed:             seed,
		BatchSize:        100,
		BaseTime:         baseTime,
	}
}

func TestGenerateExactAnomalyCounts(t *testing.T) {
	gen, err := datagen.New(testParams(1000, 42))
	require.NoError(t, err)

	sink := datagen.NewMemorySink()
	progress, err := gen.Run(sink)
	require.NoError(t, err)

	assert.Equal(t, 1000, progress.EmittedBilling)
	assert.Equal(t, 950, progress.EmittedLedger)
	assert.Equal(t, 50, progress.AppliedMissing)
	assert.Equal(t, 100, progress.AppliedMismatch)

	// Ground truth covers every pair and sums to n by class.
	counts := map[entity.Classification]int{}
	for _, class := range sink.GroundTruth {
		counts[class]++
	}
	assert.Equal(t, 50, counts[entity.MissingInLedger])
	assert.Equal(t, 100, counts[entity.AmountMismatch])
	assert.Equal(t, 850, counts[entity.PerfectMatch])
}

func TestGeneratedDataReconcilesToGroundTruth(t *testing.T) {
	gen, err := datagen.New(testParams(1000, 7))
	require.NoError(t, err)

	sink := datagen.NewMemorySink()
	_, err = gen.Run(sink)
	require.NoError(t, err)

	records, flags := reconciliation.Reconcile(sink.Billing, sink.Ledger)
	assert.Empty(t, flags)

	report := verify.Verify(sink.GroundTruth, records)
	assert.True(t, report.Matches, "discrepancies: %v", report.Discrepancies)

	summary := reconciliation.Summarize(records)
	assert.Equal(t, int64(50), summary.CountsByClassification[entity.MissingInLedger])
	assert.Equal(t, int64(100), summary.CountsByClassification[entity.AmountMismatch])
	assert.Equal(t, int64(850), summary.CountsByClassification[entity.PerfectMatch])
	assert.Equal(t, int64(0), summary.CountsByClassification[entity.MissingInBilling])
	assert.InDelta(t, 85.0, summary.IntegrityScore, 1e-9)
}

func TestUntouchedPairsAreBitExact(t *testing.T) {
	gen, err := datagen.New(testParams(500, 99))
	require.NoError(t, err)

	sink := datagen.NewMemorySink()
	_, err = gen.Run(sink)
	require.NoError(t, err)

	billingByID := map[string]entity.BillingRecord{}
	for _, b := range sink.Billing {
		billingByID[b.ID] = b
	}

	epsilon := money.MustParse("0.0100")
	for _, l := range sink.Ledger {
		b, ok := billingByID[l.ExternalID]
		require.True(t, ok)
		assert.Equal(t, entity.MemoPrefix+b.ID, l.Memo)
		assert.True(t, l.DebitAmount.IsZero())

		switch sink.GroundTruth[l.ExternalID] {
		case entity.PerfectMatch:
			assert.True(t, l.CreditAmount.Equal(b.Amount),
				"untouched pair %s drifted: %s vs %s", b.ID, l.CreditAmount, b.Amount)
		case entity.AmountMismatch:
			diff := b.Amount.Sub(l.CreditAmount).Abs()
			assert.True(t, diff.Equal(epsilon), "perturbation of %s is %s, want epsilon", b.ID, diff)
		}
	}
}

func TestGenerationIsSeedDeterministic(t *testing.T) {
	run := func() *datagen.MemorySink {
		gen, err := datagen.New(testParams(300, 1234))
		require.NoError(t, err)
		sink := datagen.NewMemorySink()
		_, err = gen.Run(sink)
		require.NoError(t, err)
		return sink
	}

	first := run()
	second := run()
	assert.Equal(t, first.Billing, second.Billing)
	assert.Equal(t, first.Ledger, second.Ledger)
	assert.Equal(t, first.GroundTruth, second.GroundTruth)
}

func TestPlanDisjointAndExact(t *testing.T) {
	plan, err := datagen.NewPlan(1000, 0.05, 0.10, 5)
	require.NoError(t, err)

	assert.Equal(t, 50, plan.MissingCount())
	assert.Equal(t, 100, plan.MismatchCount())
	assert.Equal(t, 850, plan.PerfectCount())

	counts := map[entity.Classification]int{}
	for i := 0; i < 1000; i++ {
		counts[plan.Classification(i)]++
	}
	assert.Equal(t, 50, counts[entity.MissingInLedger])
	assert.Equal(t, 100, counts[entity.AmountMismatch])
	assert.Equal(t, 850, counts[entity.PerfectMatch])
}

func TestPlanRejectsImpossibleFractions(t *testing.T) {
	_, err := datagen.NewPlan(100, 0.7, 0.7, 1)
	require.Error(t, err)
	var invErr *entity.GenerationInvariantError
	assert.ErrorAs(t, err, &invErr)

	_, err = datagen.NewPlan(-1, 0.1, 0.1, 1)
	assert.Error(t, err)

	_, err = datagen.NewPlan(100, -0.1, 0.1, 1)
	assert.Error(t, err)
}

func TestNewRejectsBadParams(t *testing.T) {
	params := testParams(100, 1)
	params.MismatchEpsilon = money.Zero()
	_, err := datagen.New(params)
	assert.Error(t, err)

	params = testParams(100, 1)
	params.BatchSize = 0
	_, err = datagen.New(params)
	assert.Error(t, err)
}

func TestBatchesMustRunInOrder(t *testing.T) {
	gen, err := datagen.New(testParams(300, 3))
	require.NoError(t, err)

	sink := datagen.NewMemorySink()
	progress := &datagen.Progress{}
	require.NoError(t, gen.GenerateBatch(0, progress, sink))

	err = gen.GenerateBatch(2, progress, sink)
	require.Error(t, err)
	var invErr *entity.GenerationInvariantError
	assert.ErrorAs(t, err, &invErr)
}

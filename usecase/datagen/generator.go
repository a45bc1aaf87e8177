package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/money"
)

const (
	chargeIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	chargeIDLength   = 24

	ledgerAccountCode = 4000

	// Amount range of generated charges, in 1/10^4 currency units:
	// 50.0000 up to and including 5000.0000.
	minAmountUnits = 500000
	maxAmountUnits = 50000000
)

// Params configures one generation call.
type Params struct {
	N                int
	MissingFraction  float64
	MismatchFraction float64
	MismatchEpsilon  money.Amount
	Seed             int64
	BatchSize        int
	// BaseTime anchors generated timestamps; charges are backdated 1-10 days
	// from it. Zero means time.Now().UTC, which makes output timestamps (and
	// only timestamps) vary between calls with the same seed.
	BaseTime time.Time
}

// Progress is the cross-batch counter state. It is the only mutable state the
// batched generator shares, owned by the caller and updated between batch
// calls; the final invariant check compares it against the plan.
type Progress struct {
	NextBatch       int `json:"next_batch"`
	EmittedBilling  int `json:"emitted_billing"`
	EmittedLedger   int `json:"emitted_ledger"`
	AppliedMissing  int `json:"applied_missing"`
	AppliedMismatch int `json:"applied_mismatch"`
}

// Sink receives generated records batch by batch.
type Sink interface {
	WriteBilling(rec entity.BillingRecord) error
	WriteLedger(rec entity.LedgerRecord) error
	WriteGroundTruth(chargeID string, class entity.Classification) error
	Flush() error
}

// Generator emits n billing/ledger pairs and mutates the planned subsets into
// missing and mismatched anomalies. Given equal Params (including BaseTime),
// output is bit-for-bit reproducible.
type Generator struct {
	params Params
	plan   *Plan
}

// New validates params and precomputes the global anomaly plan.
func New(params Params) (*Generator, error) {
	if params.BatchSize <= 0 {
		return nil, &entity.GenerationInvariantError{Detail: "batch size must be positive"}
	}
	if params.MismatchEpsilon.IsZero() || params.MismatchEpsilon.Sign() < 0 {
		return nil, &entity.GenerationInvariantError{Detail: "mismatch epsilon must be positive and nonzero"}
	}
	if params.BaseTime.IsZero() {
		params.BaseTime = time.Now().UTC()
	}

	plan, err := NewPlan(params.N, params.MissingFraction, params.MismatchFraction, params.Seed)
	if err != nil {
		return nil, err
	}
	return &Generator{params: params, plan: plan}, nil
}

// Plan exposes the anomaly plan, e.g. for verification against engine output.
func (g *Generator) Plan() *Plan {
	return g.plan
}

// Run generates all batches in order and performs the final invariant check.
// The returned progress reflects the completed generation.
func (g *Generator) Run(sink Sink) (*Progress, error) {
	numBatches := (g.params.N + g.params.BatchSize - 1) / g.params.BatchSize
	log.Infof("[DataGen] Generating %d pairs in %d batches (missing=%d, mismatch=%d)",
		g.params.N, numBatches, g.plan.MissingCount(), g.plan.MismatchCount())

	progress := &Progress{}
	for batch := 0; batch < numBatches; batch++ {
		if err := g.GenerateBatch(batch, progress, sink); err != nil {
			return nil, err
		}
		log.Infof("[DataGen] Batch %d of %d complete (%d billing rows emitted)",
			batch+1, numBatches, progress.EmittedBilling)
	}

	if err := g.checkInvariants(progress); err != nil {
		return nil, err
	}
	log.Infof("[DataGen] Generation complete: %d billing, %d ledger, %d missing, %d mismatched",
		progress.EmittedBilling, progress.EmittedLedger, progress.AppliedMissing, progress.AppliedMismatch)
	return progress, nil
}

// GenerateBatch emits the records of one fixed-size batch over the logical id
// space and advances the progress counters. Batches must be generated in
// order; a caller resuming after batch k passes the progress returned by
// batch k.
func (g *Generator) GenerateBatch(batchIndex int, progress *Progress, sink Sink) error {
	if batchIndex != progress.NextBatch {
		return &entity.GenerationInvariantError{
			Detail: fmt.Sprintf("batch %d generated out of order, expected %d", batchIndex, progress.NextBatch),
		}
	}

	start := batchIndex * g.params.BatchSize
	end := start + g.params.BatchSize
	if end > g.params.N {
		end = g.params.N
	}

	// Each batch derives its own seeded source, so resumption from a batch
	// index reproduces identical records without replaying earlier batches.
	rng := rand.New(rand.NewSource(g.params.Seed + int64(batchIndex) + 1))

	for i := start; i < end; i++ {
		billing := g.makeBillingRecord(rng, i)
		if err := sink.WriteBilling(billing); err != nil {
			return fmt.Errorf("failed to write billing record %d: %w", i, err)
		}
		progress.EmittedBilling++

		class := g.plan.Classification(i)
		if err := sink.WriteGroundTruth(billing.ID, class); err != nil {
			return fmt.Errorf("failed to write ground truth for %s: %w", billing.ID, err)
		}

		if class == entity.MissingInLedger {
			progress.AppliedMissing++
			continue
		}

		ledger := g.makeLedgerRecord(rng, i, billing)
		if class == entity.AmountMismatch {
			ledger.CreditAmount = perturb(rng, billing.Amount, g.params.MismatchEpsilon)
			progress.AppliedMismatch++
		}
		if err := sink.WriteLedger(ledger); err != nil {
			return fmt.Errorf("failed to write ledger record %d: %w", i, err)
		}
		progress.EmittedLedger++
	}

	progress.NextBatch = batchIndex + 1
	return sink.Flush()
}

func (g *Generator) makeBillingRecord(rng *rand.Rand, index int) entity.BillingRecord {
	id := make([]byte, chargeIDLength)
	for i := range id {
		id[i] = chargeIDAlphabet[rng.Intn(len(chargeIDAlphabet))]
	}

	units := minAmountUnits + rng.Int63n(maxAmountUnits-minAmountUnits+1)

	created := g.params.BaseTime.Add(-time.Duration(1+rng.Intn(10)) * 24 * time.Hour).
		Add(-time.Duration(rng.Intn(24)) * time.Hour).
		Add(-time.Duration(rng.Intn(60)) * time.Minute)

	return entity.BillingRecord{
		ID:         "ch_" + string(id),
		Amount:     money.FromUnits(units),
		Currency:   "USD",
		CreatedUTC: created,
	}
}

func (g *Generator) makeLedgerRecord(rng *rand.Rand, index int, billing entity.BillingRecord) entity.LedgerRecord {
	// ERP posting lags the charge by one to four hours.
	lag := time.Duration(1+rng.Intn(4))*time.Hour + time.Duration(rng.Intn(60))*time.Minute

	// Credit is copied from the billing amount, never re-derived: bit-exact
	// equality of the untouched subset is an invariant, not a statistic.
	return entity.LedgerRecord{
		ID:           fmt.Sprintf("ns_%010d", index),
		ExternalID:   billing.ID,
		AccountCode:  ledgerAccountCode,
		CreditAmount: billing.Amount,
		DebitAmount:  money.Zero(),
		Memo:         entity.MemoPrefix + billing.ID,
		CreatedUTC:   billing.CreatedUTC.Add(lag),
	}
}

// perturb shifts an amount by exactly +/- epsilon with a seeded random sign.
func perturb(rng *rand.Rand, amount, epsilon money.Amount) money.Amount {
	if rng.Intn(2) == 0 {
		return amount.Add(epsilon)
	}
	return amount.Sub(epsilon)
}

func (g *Generator) checkInvariants(progress *Progress) error {
	if progress.EmittedBilling != g.params.N {
		return &entity.GenerationInvariantError{
			Detail: fmt.Sprintf("emitted %d billing records, expected %d", progress.EmittedBilling, g.params.N),
		}
	}
	if progress.AppliedMissing != g.plan.MissingCount() {
		return &entity.GenerationInvariantError{
			Detail: fmt.Sprintf("applied %d missing anomalies, planned %d", progress.AppliedMissing, g.plan.MissingCount()),
		}
	}
	if progress.AppliedMismatch != g.plan.MismatchCount() {
		return &entity.GenerationInvariantError{
			Detail: fmt.Sprintf("applied %d mismatch anomalies, planned %d", progress.AppliedMismatch, g.plan.MismatchCount()),
		}
	}
	if progress.EmittedLedger != g.params.N-g.plan.MissingCount() {
		return &entity.GenerationInvariantError{
			Detail: fmt.Sprintf("emitted %d ledger records, expected %d", progress.EmittedLedger, g.params.N-g.plan.MissingCount()),
		}
	}
	return nil
}

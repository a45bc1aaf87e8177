package reconciliation

import (
	"encoding/json"
	"fmt"

	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/money"
)

// SummaryAccumulator folds reconciled records into KPI totals. Observe and
// Merge are associative and commutative (exact decimal sums, integer counts),
// so independent batches can be accumulated separately and combined without a
// re-scan.
type SummaryAccumulator struct {
	exposure money.Amount
	counts   map[entity.Classification]int64
	total    int64
}

// NewSummaryAccumulator returns an empty accumulator with every
// classification count present at zero.
func NewSummaryAccumulator() *SummaryAccumulator {
	counts := make(map[entity.Classification]int64, len(entity.AllClassifications()))
	for _, c := range entity.AllClassifications() {
		counts[c] = 0
	}
	return &SummaryAccumulator{exposure: money.Zero(), counts: counts}
}

// Observe folds one reconciled record into the totals.
func (a *SummaryAccumulator) Observe(rec entity.ReconciledRecord) {
	a.total++
	a.counts[rec.Classification]++
	if rec.Classification != entity.PerfectMatch {
		a.exposure = a.exposure.Add(rec.Variance.Abs())
	}
}

// ObserveAll folds a whole batch.
func (a *SummaryAccumulator) ObserveAll(recs []entity.ReconciledRecord) {
	for _, rec := range recs {
		a.Observe(rec)
	}
}

// Merge folds another accumulator into this one.
func (a *SummaryAccumulator) Merge(b *SummaryAccumulator) {
	a.total += b.total
	a.exposure = a.exposure.Add(b.exposure)
	for c, n := range b.counts {
		a.counts[c] += n
	}
}

// Summary materializes the KPI rollup. An empty input set scores 100%:
// vacuously perfect, by documented convention.
func (a *SummaryAccumulator) Summary() entity.ReconciliationSummary {
	score := 100.0
	if a.total > 0 {
		score = float64(a.counts[entity.PerfectMatch]) / float64(a.total) * 100.0
	}

	counts := make(map[entity.Classification]int64, len(a.counts))
	for c, n := range a.counts {
		counts[c] = n
	}
	return entity.ReconciliationSummary{
		TotalExposure:          a.exposure,
		IntegrityScore:         score,
		CountsByClassification: counts,
	}
}

// Summarize rolls up a full record set in one pass.
func Summarize(records []entity.ReconciledRecord) entity.ReconciliationSummary {
	acc := NewSummaryAccumulator()
	acc.ObserveAll(records)
	return acc.Summary()
}

// accumulatorState is the serialized snapshot persisted on the run log
// between batches, so an interrupted run never reports a half-folded summary
// as final.
type accumulatorState struct {
	Exposure string                          `json:"exposure"`
	Counts   map[entity.Classification]int64 `json:"counts"`
	Total    int64                           `json:"total"`
}

// MarshalState serializes the accumulator for run-log persistence.
func (a *SummaryAccumulator) MarshalState() (string, error) {
	state := accumulatorState{Exposure: a.exposure.String(), Counts: a.counts, Total: a.total}
	raw, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to marshal accumulator state: %w", err)
	}
	return string(raw), nil
}

// RestoreAccumulator rebuilds an accumulator from a persisted snapshot.
func RestoreAccumulator(serialized string) (*SummaryAccumulator, error) {
	var state accumulatorState
	if err := json.Unmarshal([]byte(serialized), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accumulator state: %w", err)
	}
	exposure, err := money.Parse(state.Exposure)
	if err != nil {
		return nil, fmt.Errorf("failed to restore exposure: %w", err)
	}

	acc := NewSummaryAccumulator()
	acc.exposure = exposure
	acc.total = state.Total
	for c, n := range state.Counts {
		acc.counts[c] = n
	}
	return acc, nil
}

// Package datagen produces paired synthetic billing/ledger datasets with
// exact, seeded anomaly injection. It exists to validate the reconciliation
// engine: every emitted pair has a known expected classification, and the
// injected anomaly counts are guaranteed, not statistical.
package datagen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/neoglobal/pnl-reconciliation/entity"
)

// Plan is the global anomaly assignment over the logical id space [0, n).
// It is computed once, before any batch is generated, so batch boundaries
// cannot bias which records receive anomalies.
type Plan struct {
	n           int
	missing     map[int]bool
	mismatch    map[int]bool
	numMissing  int
	numMismatch int
}

// NewPlan shuffles [0, n) with the seeded source and assigns the first
// round(n*missingFraction) indices to the missing set and the next
// round(n*mismatchFraction) to the mismatch set. The sets are disjoint by
// construction and exact in size; impossible fractions fail with
// *entity.GenerationInvariantError.
func NewPlan(n int, missingFraction, mismatchFraction float64, seed int64) (*Plan, error) {
	if n < 0 {
		return nil, &entity.GenerationInvariantError{Detail: fmt.Sprintf("n must be non-negative, got %d", n)}
	}
	if missingFraction < 0 || mismatchFraction < 0 {
		return nil, &entity.GenerationInvariantError{Detail: "anomaly fractions must be non-negative"}
	}

	numMissing := int(math.Round(float64(n) * missingFraction))
	numMismatch := int(math.Round(float64(n) * mismatchFraction))
	if numMissing+numMismatch > n {
		return nil, &entity.GenerationInvariantError{
			Detail: fmt.Sprintf("anomaly subsets exceed n: %d missing + %d mismatch > %d", numMissing, numMismatch, n),
		}
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	missing := make(map[int]bool, numMissing)
	for _, idx := range indices[:numMissing] {
		missing[idx] = true
	}
	mismatch := make(map[int]bool, numMismatch)
	for _, idx := range indices[numMissing : numMissing+numMismatch] {
		mismatch[idx] = true
	}

	return &Plan{
		n:           n,
		missing:     missing,
		mismatch:    mismatch,
		numMissing:  numMissing,
		numMismatch: numMismatch,
	}, nil
}

// Classification returns the expected engine classification for logical
// index i.
func (p *Plan) Classification(i int) entity.Classification {
	switch {
	case p.missing[i]:
		return entity.MissingInLedger
	case p.mismatch[i]:
		return entity.AmountMismatch
	default:
		return entity.PerfectMatch
	}
}

// MissingCount is the exact number of pairs whose ledger side is withheld.
func (p *Plan) MissingCount() int { return p.numMissing }

// MismatchCount is the exact number of pairs whose ledger amount is
// perturbed.
func (p *Plan) MismatchCount() int { return p.numMismatch }

// PerfectCount is the exact number of untouched pairs.
func (p *Plan) PerfectCount() int { return p.n - p.numMissing - p.numMismatch }

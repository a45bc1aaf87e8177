// Package verify checks engine output against the synthetic generator's
// ground truth. Any disagreement means a defect in either the generator or
// the engine; nothing is swallowed.
package verify

import (
	"sort"

	"github.com/neoglobal/pnl-reconciliation/entity"
)

// Verify compares, per id, the injected ground-truth classification against
// the engine's output classification. Ids present on only one side are
// discrepancies too. Discrepancies are sorted by id for stable reporting.
func Verify(groundTruth map[string]entity.Classification, reconciled []entity.ReconciledRecord) entity.VerificationReport {
	got := make(map[string]entity.Classification, len(reconciled))
	for _, rec := range reconciled {
		got[rec.ReconciliationID] = rec.Classification
	}

	var discrepancies []entity.Discrepancy
	for id, expected := range groundTruth {
		actual, found := got[id]
		if !found {
			discrepancies = append(discrepancies, entity.Discrepancy{ID: id, Expected: expected, Got: ""})
			continue
		}
		if actual != expected {
			discrepancies = append(discrepancies, entity.Discrepancy{ID: id, Expected: expected, Got: actual})
		}
	}
	for id, actual := range got {
		if _, found := groundTruth[id]; !found {
			discrepancies = append(discrepancies, entity.Discrepancy{ID: id, Expected: "", Got: actual})
		}
	}

	sort.Slice(discrepancies, func(i, j int) bool {
		return discrepancies[i].ID < discrepancies[j].ID
	})
	return entity.VerificationReport{
		Matches:       len(discrepancies) == 0,
		Discrepancies: discrepancies,
	}
}

package entity

import "fmt"

// DuplicateKeyError reports more than one ledger record claiming the same
// billing id. The first-seen record keeps the mapping slot; the collision is
// recorded as a data quality flag and the run continues.
type DuplicateKeyError struct {
	ExternalID string
	LedgerID   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate ledger key %q (ledger record %s)", e.ExternalID, e.LedgerID)
}

// SchemaError reports a required field that is absent or malformed at the
// ingestion boundary. Schema violations abort the run: correctness of the
// aggregate cannot be guaranteed past a silent coercion.
type SchemaError struct {
	Source string
	Row    int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in %s row %d, field %q: %s", e.Source, e.Row, e.Field, e.Reason)
}

// GenerationInvariantError reports synthetic subsets that are not disjoint or
// do not sum to n. It is fatal to the generator call; a mis-counted dataset
// must never be emitted.
type GenerationInvariantError struct {
	Detail string
}

func (e *GenerationInvariantError) Error() string {
	return "generation invariant violated: " + e.Detail
}

package entity

// ProcessReconciliationRequest is the payload that registers a new
// reconciliation run over two staged ledger files.
type ProcessReconciliationRequest struct {
	BillingCSVPath string `json:"billing_csv_path"`
	LedgerCSVPath  string `json:"ledger_csv_path"`
	Operator       string `json:"operator"`
}

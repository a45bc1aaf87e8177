package model

// FctReconciliation is one row of the reconciliation fact table consumed by
// the dashboard. Column names are stable across runs. Amounts are stored as
// fixed-scale decimal text; empty string means the side is absent. The three
// boolean flags are mutually exclusive and derived from the classification.
type FctReconciliation struct {
	ID                  int64  `gorm:"primary_key;auto_increment" json:"-"`
	ReconciliationRunID int64  `gorm:"not null;index" json:"-"`
	ReconciliationID    string `gorm:"size:64;not null;index" json:"reconciliation_id"`
	BillingAmount       string `gorm:"size:32" json:"billing_amount"`
	LedgerAmount        string `gorm:"size:32" json:"ledger_amount"`
	Variance            string `gorm:"size:32;not null" json:"variance"`
	Classification      string `gorm:"size:32;not null" json:"classification"`
	IsMissingInErp      bool   `gorm:"not null" json:"is_missing_in_erp"`
	IsAmountMismatch    bool   `gorm:"not null" json:"is_amount_mismatch"`
	IsPerfectMatch      bool   `gorm:"not null" json:"is_perfect_match"`
	Matched             bool   `gorm:"not null" json:"matched"`
}

// TableName keeps the warehouse-facing name the dashboard reads.
func (FctReconciliation) TableName() string {
	return "fct_reconciliation"
}

package model

// ReconciliationSummaryRow is the single KPI row written when a run finishes.
// It is replaced wholesale on each run; per-classification counts are stored
// as JSON keyed by classification name, zero counts included.
type ReconciliationSummaryRow struct {
	ID                  int64   `gorm:"primary_key;auto_increment" json:"-"`
	ReconciliationRunID int64   `gorm:"not null;unique_index" json:"reconciliation_run_id"`
	TotalExposure       string  `gorm:"size:32;not null" json:"total_exposure"`
	IntegrityScore      float64 `gorm:"not null" json:"integrity_score"`
	CountsJSON          string  `gorm:"type:text;not null" json:"counts_by_classification"`
	CreateTime          int64   `gorm:"not null" json:"create_time"`
}

// TableName keeps the warehouse-facing name.
func (ReconciliationSummaryRow) TableName() string {
	return "reconciliation_summary"
}

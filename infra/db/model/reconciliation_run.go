package model

// ReconciliationRun is the process log for one engine run over a staged
// billing/ledger file pair. Result carries the rolling summary-accumulator
// snapshot as JSON while the run is in flight and the final summary once
// finished; QualityFlags carries per-record duplicate/precision flags as JSON.
type ReconciliationRun struct {
	ID                 int64  `gorm:"primary_key;auto_increment" json:"id"`
	RunUUID            string `gorm:"size:36;unique_index;not null" json:"run_uuid"`
	ReconciliationType int64  `gorm:"not null" json:"reconciliation_type"`
	TotalMainRow       int64  `gorm:"not null" json:"total_main_row"`
	CurrentMainRow     int64  `gorm:"not null" json:"current_main_row"`
	Status             int    `gorm:"not null" json:"status"`
	Result             string `gorm:"type:text;not null" json:"result"`
	QualityFlags       string `gorm:"type:text;not null" json:"quality_flags"`
	CreateTime         int64  `gorm:"not null" json:"create_time"`
	CreateBy           string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime         int64  `gorm:"not null" json:"update_time"`
	UpdateBy           string `gorm:"size:100;not null" json:"update_by"`
}

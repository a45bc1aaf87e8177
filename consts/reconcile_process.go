package consts

const (
	// Reconciliation type billing vs enterprise ledger
	ReconciliationTypeBillingLedger = 1

	// Reconciliation run status codes
	StatusInit     = 1
	StatusRunning  = 2
	StatusFinished = 3
	StatusFailed   = 4

	// DataType constants for run assets
	DataTypeBillingFile = 1
	DataTypeLedgerFile  = 2

	// Default config
	DefaultBatchSize     = 150000
	DefaultWorkerNumber  = 1
	DefaultIntervalInSec = 2
)

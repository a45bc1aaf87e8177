package entity

import (
	"time"

	"github.com/neoglobal/pnl-reconciliation/money"
)

// MemoPrefix is the fixed textual prefix embedding the billing charge id in a
// ledger record memo, e.g. "Stripe: ch_ab12...".
const MemoPrefix = "Stripe: "

// BillingRecord is a transaction as sourced from the billing/payment system
// (system A). ID is globally unique and immutable; it is the join key the
// ledger side references through ExternalID.
type BillingRecord struct {
	ID         string       `json:"charge_id"`
	Amount     money.Amount `json:"amount"`
	Currency   string       `json:"currency"`
	CreatedUTC time.Time    `json:"created_utc"`
}

// LedgerRecord is a transaction as sourced from the enterprise ledger
// (system B). ExternalID is expected to equal some BillingRecord.ID; at most
// one ledger record may reference a given billing id.
type LedgerRecord struct {
	ID           string       `json:"id"`
	ExternalID   string       `json:"external_id"`
	AccountCode  int          `json:"account_code"`
	CreditAmount money.Amount `json:"credit_usd"`
	DebitAmount  money.Amount `json:"debit_usd"`
	Memo         string       `json:"memo"`
	CreatedUTC   time.Time    `json:"created_utc"`
}

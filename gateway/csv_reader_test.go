package gateway_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/gateway"
	"github.com/neoglobal/pnl-reconciliation/money"
)

var testTime = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBillingRoundTrip(t *testing.T) {
	dir := t.TempDir()
	billingPath := filepath.Join(dir, "billing.csv")
	ledgerPath := filepath.Join(dir, "ledger.csv")

	writer, err := gateway.NewLedgerPairWriter(billingPath, ledgerPath)
	require.NoError(t, err)

	records := []entity.BillingRecord{
		{ID: "ch_abc", Amount: money.MustParse("100.0000"), Currency: "USD", CreatedUTC: testTime},
		{ID: "ch_def", Amount: money.MustParse("9.9900"), Currency: "USD", CreatedUTC: testTime.Add(time.Hour)},
	}
	for _, rec := range records {
		require.NoError(t, writer.WriteBilling(rec))
	}
	require.NoError(t, writer.WriteLedger(entity.LedgerRecord{
		ID: "ns_1", ExternalID: "ch_abc", AccountCode: 4000,
		CreditAmount: money.MustParse("100.0000"), DebitAmount: money.Zero(),
		Memo: entity.MemoPrefix + "ch_abc", CreatedUTC: testTime.Add(2 * time.Hour),
	}))
	require.NoError(t, writer.Close())

	reader, err := gateway.OpenBillingFile(billingPath)
	require.NoError(t, err)
	defer reader.Close()

	got, flags, err := reader.ReadBatch(10)
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, flags)
	assert.Equal(t, records, got)

	ledger, ledgerFlags, err := gateway.ReadLedgerRecords(ledgerPath)
	require.NoError(t, err)
	assert.Empty(t, ledgerFlags)
	require.Len(t, ledger, 1)
	assert.Equal(t, "ch_abc", ledger[0].ExternalID)
	assert.Equal(t, 4000, ledger[0].AccountCode)
	assert.True(t, ledger[0].CreditAmount.Equal(money.MustParse("100")))
}

func TestBillingReadBatchHonorsSize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "billing.csv",
		"charge_id,amount,currency,created_utc\n"+
			"ch_1,10.0000,USD,2025-06-01T10:30:00Z\n"+
			"ch_2,20.0000,USD,2025-06-01T10:31:00Z\n"+
			"ch_3,30.0000,USD,2025-06-01T10:32:00Z\n")

	reader, err := gateway.OpenBillingFile(path)
	require.NoError(t, err)
	defer reader.Close()

	first, _, err := reader.ReadBatch(2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, _, err := reader.ReadBatch(2)
	assert.ErrorIs(t, err, io.EOF)
	require.Len(t, second, 1)
	assert.Equal(t, "ch_3", second[0].ID)
}

func TestBillingSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "wrong header",
			content: "id,amount,currency,created\nch_1,10,USD,2025-06-01T10:30:00Z\n",
		},
		{
			name:    "empty charge id",
			content: "charge_id,amount,currency,created_utc\n,10.0000,USD,2025-06-01T10:30:00Z\n",
		},
		{
			name:    "bad currency",
			content: "charge_id,amount,currency,created_utc\nch_1,10.0000,US,2025-06-01T10:30:00Z\n",
		},
		{
			name:    "bad timestamp",
			content: "charge_id,amount,currency,created_utc\nch_1,10.0000,USD,yesterday\n",
		},
		{
			name:    "unparseable amount",
			content: "charge_id,amount,currency,created_utc\nch_1,ten,USD,2025-06-01T10:30:00Z\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "billing.csv", tt.content)
			reader, err := gateway.OpenBillingFile(path)
			if err == nil {
				defer reader.Close()
				_, _, err = reader.ReadBatch(10)
			}
			require.Error(t, err)
			var schemaErr *entity.SchemaError
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestBillingPrecisionRejectIsFlaggedNotFatal(t *testing.T) {
	path := writeFile(t, t.TempDir(), "billing.csv",
		"charge_id,amount,currency,created_utc\n"+
			"ch_bad,10.00001,USD,2025-06-01T10:30:00Z\n"+
			"ch_ok,20.0000,USD,2025-06-01T10:31:00Z\n")

	reader, err := gateway.OpenBillingFile(path)
	require.NoError(t, err)
	defer reader.Close()

	records, flags, err := reader.ReadBatch(10)
	assert.ErrorIs(t, err, io.EOF)
	require.Len(t, records, 1)
	assert.Equal(t, "ch_ok", records[0].ID)
	require.Len(t, flags, 1)
	assert.Equal(t, entity.FlagPrecision, flags[0].Kind)
	assert.Equal(t, "ch_bad", flags[0].RecordID)
}

func TestLedgerEmptyExternalIDIsFatal(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ledger.csv",
		"id,external_id,account_code,credit_usd,debit_usd,memo,created_utc\n"+
			"ns_1,,4000,10.0000,0.0000,Stripe: ch_1,2025-06-01T10:30:00Z\n")

	_, _, err := gateway.ReadLedgerRecords(path)
	require.Error(t, err)
	var schemaErr *entity.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "external_id", schemaErr.Field)
}

func TestGroundTruthRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.csv")

	writer, err := gateway.NewGroundTruthWriter(path)
	require.NoError(t, err)
	require.NoError(t, writer.Write("ch_1", entity.PerfectMatch))
	require.NoError(t, writer.Write("ch_2", entity.MissingInLedger))
	require.NoError(t, writer.Close())

	truth, err := gateway.ReadGroundTruth(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]entity.Classification{
		"ch_1": entity.PerfectMatch,
		"ch_2": entity.MissingInLedger,
	}, truth)
}

func TestCountDataRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "billing.csv",
		"charge_id,amount,currency,created_utc\n"+
			"ch_1,10.0000,USD,2025-06-01T10:30:00Z\n"+
			"ch_2,20.0000,USD,2025-06-01T10:31:00Z\n")

	count, err := gateway.CountDataRows(path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	empty := writeFile(t, t.TempDir(), "empty.csv", "")
	count, err = gateway.CountDataRows(empty)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

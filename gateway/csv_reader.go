// Package gateway reads and writes the staged ledger files. It is the strict
// schema boundary: a malformed required field surfaces as *entity.SchemaError
// and aborts the run, while unrepresentable amounts are collected as
// per-record data quality flags.
package gateway

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/neoglobal/pnl-reconciliation/entity"
	"github.com/neoglobal/pnl-reconciliation/money"
)

// Column layouts of the staged files. The ingestion layer upstream produces
// these headers; anything else is a schema violation.
var (
	billingHeader     = []string{"charge_id", "amount", "currency", "created_utc"}
	ledgerHeader      = []string{"id", "external_id", "account_code", "credit_usd", "debit_usd", "memo", "created_utc"}
	groundTruthHeader = []string{"charge_id", "classification"}
)

// BillingFileReader streams billing records out of a staged CSV in batches so
// multi-million row files never have to be resident at once.
type BillingFileReader struct {
	path   string
	file   *os.File
	reader *csv.Reader
	row    int
}

// OpenBillingFile opens a staged billing CSV and validates its header.
func OpenBillingFile(path string) (*BillingFileReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open billing file %s: %w", path, err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(billingHeader)

	header, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, &entity.SchemaError{Source: path, Row: 0, Field: "header", Reason: "missing header row"}
	}
	if err := checkHeader(path, header, billingHeader); err != nil {
		file.Close()
		return nil, err
	}

	return &BillingFileReader{path: path, file: file, reader: reader}, nil
}

// ReadBatch returns up to size records. It returns io.EOF (possibly alongside
// a final short batch) once the file is exhausted. Amounts that cannot be
// represented at DECIMAL(19,4) are excluded and reported as flags.
func (r *BillingFileReader) ReadBatch(size int) ([]entity.BillingRecord, []entity.DataQualityFlag, error) {
	var records []entity.BillingRecord
	var flags []entity.DataQualityFlag

	for len(records) < size {
		row, err := r.reader.Read()
		if errors.Is(err, io.EOF) {
			return records, flags, io.EOF
		}
		if err != nil {
			return nil, nil, &entity.SchemaError{Source: r.path, Row: r.row + 1, Field: "row", Reason: err.Error()}
		}
		r.row++

		rec, flag, err := parseBillingRow(r.path, r.row, row)
		if err != nil {
			return nil, nil, err
		}
		if flag != nil {
			flags = append(flags, *flag)
			continue
		}
		records = append(records, rec)
	}
	return records, flags, nil
}

// Close releases the underlying file.
func (r *BillingFileReader) Close() error {
	return r.file.Close()
}

func parseBillingRow(source string, row int, record []string) (entity.BillingRecord, *entity.DataQualityFlag, error) {
	id := strings.TrimSpace(record[0])
	if id == "" {
		return entity.BillingRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "charge_id", Reason: "empty"}
	}

	currency := strings.TrimSpace(record[2])
	if len(currency) != 3 {
		return entity.BillingRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "currency", Reason: "not an ISO-4217 code"}
	}

	createdUTC, err := time.Parse(time.RFC3339, strings.TrimSpace(record[3]))
	if err != nil {
		return entity.BillingRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "created_utc", Reason: "not an RFC3339 timestamp"}
	}

	amount, err := money.Parse(strings.TrimSpace(record[1]))
	if err != nil {
		var precErr *money.PrecisionError
		if errors.As(err, &precErr) {
			flag := entity.DataQualityFlag{Kind: entity.FlagPrecision, RecordID: id, Detail: precErr.Error()}
			return entity.BillingRecord{}, &flag, nil
		}
		return entity.BillingRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "amount", Reason: err.Error()}
	}

	return entity.BillingRecord{
		ID:         id,
		Amount:     amount,
		Currency:   strings.ToUpper(currency),
		CreatedUTC: createdUTC,
	}, nil, nil
}

// ReadLedgerRecords loads a staged enterprise-ledger CSV in full. The engine
// needs the complete set to build its join index before any matching begins.
func ReadLedgerRecords(path string) ([]entity.LedgerRecord, []entity.DataQualityFlag, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(ledgerHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, &entity.SchemaError{Source: path, Row: 0, Field: "header", Reason: "missing header row"}
	}
	if err := checkHeader(path, header, ledgerHeader); err != nil {
		return nil, nil, err
	}

	var records []entity.LedgerRecord
	var flags []entity.DataQualityFlag
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, &entity.SchemaError{Source: path, Row: row + 1, Field: "row", Reason: err.Error()}
		}
		row++

		rec, flag, err := parseLedgerRow(path, row, record)
		if err != nil {
			return nil, nil, err
		}
		if flag != nil {
			flags = append(flags, *flag)
			continue
		}
		records = append(records, rec)
	}
	return records, flags, nil
}

func parseLedgerRow(source string, row int, record []string) (entity.LedgerRecord, *entity.DataQualityFlag, error) {
	id := strings.TrimSpace(record[0])
	if id == "" {
		return entity.LedgerRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "id", Reason: "empty"}
	}

	// An absent external id cannot be treated as a non-match; it means the
	// sync wrote a row we cannot attribute, so the run must not proceed.
	externalID := strings.TrimSpace(record[1])
	if externalID == "" {
		return entity.LedgerRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "external_id", Reason: "empty"}
	}

	accountCode, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return entity.LedgerRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "account_code", Reason: "not an integer"}
	}

	createdUTC, err := time.Parse(time.RFC3339, strings.TrimSpace(record[6]))
	if err != nil {
		return entity.LedgerRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "created_utc", Reason: "not an RFC3339 timestamp"}
	}

	credit, err := money.Parse(strings.TrimSpace(record[3]))
	if err != nil {
		var precErr *money.PrecisionError
		if errors.As(err, &precErr) {
			flag := entity.DataQualityFlag{Kind: entity.FlagPrecision, RecordID: id, Detail: precErr.Error()}
			return entity.LedgerRecord{}, &flag, nil
		}
		return entity.LedgerRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "credit_usd", Reason: err.Error()}
	}

	debit, err := money.Parse(strings.TrimSpace(record[4]))
	if err != nil {
		var precErr *money.PrecisionError
		if errors.As(err, &precErr) {
			flag := entity.DataQualityFlag{Kind: entity.FlagPrecision, RecordID: id, Detail: precErr.Error()}
			return entity.LedgerRecord{}, &flag, nil
		}
		return entity.LedgerRecord{}, nil, &entity.SchemaError{Source: source, Row: row, Field: "debit_usd", Reason: err.Error()}
	}

	return entity.LedgerRecord{
		ID:           id,
		ExternalID:   externalID,
		AccountCode:  accountCode,
		CreditAmount: credit,
		DebitAmount:  debit,
		Memo:         record[5],
		CreatedUTC:   createdUTC,
	}, nil, nil
}

// ReadGroundTruth loads the generator's expected classification per charge id.
func ReadGroundTruth(path string) (map[string]entity.Classification, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ground truth file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(groundTruthHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, &entity.SchemaError{Source: path, Row: 0, Field: "header", Reason: "missing header row"}
	}
	if err := checkHeader(path, header, groundTruthHeader); err != nil {
		return nil, err
	}

	truth := make(map[string]entity.Classification)
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &entity.SchemaError{Source: path, Row: row + 1, Field: "row", Reason: err.Error()}
		}
		row++
		truth[record[0]] = entity.Classification(record[1])
	}
	return truth, nil
}

// CountDataRows counts the data rows of a staged CSV (header excluded), so a
// run log can record the total before batching begins.
func CountDataRows(path string) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var count int64 = -1 // discount the header
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan file %s: %w", path, err)
	}
	if count < 0 {
		count = 0
	}
	return count, nil
}

func checkHeader(source string, got, want []string) error {
	if len(got) != len(want) {
		return &entity.SchemaError{Source: source, Row: 0, Field: "header", Reason: fmt.Sprintf("expected %d columns, got %d", len(want), len(got))}
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != want[i] {
			return &entity.SchemaError{Source: source, Row: 0, Field: "header", Reason: fmt.Sprintf("expected column %q, got %q", want[i], got[i])}
		}
	}
	return nil
}

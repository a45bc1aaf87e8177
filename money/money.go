// Package money provides the fixed-scale decimal amount type used for every
// monetary field in the platform. All amounts are DECIMAL(19,4); arithmetic is
// exact at that scale and native floating point is never involved.
package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every Amount carries.
const Scale = 4

// maxAbs is 10^19, the first magnitude that no longer fits DECIMAL(19,4).
var maxAbs = decimal.New(1, 19)

// PrecisionError reports an input that cannot be represented at DECIMAL(19,4)
// without losing information. The offending record is excluded from
// aggregation, not the whole run.
type PrecisionError struct {
	Input  string
	Reason string
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("precision error: %q cannot be represented as DECIMAL(19,4): %s", e.Input, e.Reason)
}

// Amount is an immutable monetary value with exactly four fractional digits.
// The zero value is 0.0000.
type Amount struct {
	d decimal.Decimal
}

// Parse builds an Amount from its decimal string form. Inputs carrying
// information beyond four fractional digits or nineteen integer digits are
// rejected with *PrecisionError.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, &PrecisionError{Input: s, Reason: "not a decimal number"}
	}
	return fromDecimal(s, d)
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromUnits builds an Amount from an integer count of 1/10^4 currency units,
// e.g. FromUnits(1000000) == 100.0000.
func FromUnits(units int64) Amount {
	return Amount{d: decimal.New(units, -Scale)}
}

// Zero returns the zero amount, 0.0000.
func Zero() Amount {
	return Amount{}
}

func fromDecimal(input string, d decimal.Decimal) (Amount, error) {
	if !d.Equal(d.Truncate(Scale)) {
		return Amount{}, &PrecisionError{Input: input, Reason: "more than 4 fractional digits"}
	}
	if d.Abs().Cmp(maxAbs) >= 0 {
		return Amount{}, &PrecisionError{Input: input, Reason: "more than 19 integer digits"}
	}
	return Amount{d: d}, nil
}

// Add returns a + b exactly.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns the signed difference a - b exactly.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Abs returns the magnitude of a.
func (a Amount) Abs() Amount {
	return Amount{d: a.d.Abs()}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Cmp returns -1, 0 or +1 comparing a against b at full precision.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// Equal reports whether a and b are exactly equal at scale 4.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsZero reports whether a is exactly 0.0000.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// Sign returns -1 for negative, 0 for zero, +1 for positive amounts.
func (a Amount) Sign() int {
	return a.d.Sign()
}

// String renders the amount with exactly four fractional digits.
func (a Amount) String() string {
	return a.d.StringFixed(Scale)
}

// MarshalJSON renders the amount as a quoted fixed-scale string so consumers
// never see a binary float.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON parses a quoted or bare decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer; amounts are stored as fixed-scale text.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for text and byte columns.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = Amount{}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into money.Amount", src)
	}
}

// Package row parses comma-separated numeric records.
package row

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Separator splits the fields of a record.
const Separator = ","

// ErrFieldCount is returned when a record does not have the expected number
// of fields.
var ErrFieldCount = errors.New("row: wrong number of fields")

// ErrNotFinite is the ParseError cause for a NaN or infinite field.
var ErrNotFinite = errors.New("row: value is not finite")

// ParseError records a token that could not be parsed as a number.
type ParseError struct {
	Column int    // 0-based index of the offending field
	Token  string // the field text as it appeared in the line
	Err    error  // error from strconv, or ErrNotFinite
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row: column %d: cannot parse %q: %v", e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse splits line on Separator and parses every field as a float64. Blanks
// surrounding a field are ignored. The first field that fails to parse is
// reported as a *ParseError. NaN and infinities are rejected.
func Parse(line string) ([]float64, error) {
	tokens := strings.Split(line, Separator)
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, &ParseError{Column: i, Token: tok, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Column: i, Token: tok, Err: ErrNotFinite}
		}
		values[i] = v
	}
	return values, nil
}

// ParseN is like Parse, but also requires the record to have exactly n
// fields.
func ParseN(line string, n int) ([]float64, error) {
	values, err := Parse(line)
	if err != nil {
		return nil, err
	}
	if err := CheckFieldCount(values, n); err != nil {
		return nil, err
	}
	return values, nil
}

// CheckFieldCount returns an error wrapping ErrFieldCount if len(values) != n.
func CheckFieldCount(values []float64, n int) error {
	if len(values) != n {
		return fmt.Errorf("%w: have %d, want %d", ErrFieldCount, len(values), n)
	}
	return nil
}

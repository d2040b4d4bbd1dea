// Package core holds the domain model of the tracker: transactions,
// diaries, money amounts and the period aggregation over them.
//
// This file contains parsing, formatting and JSON encoding of monetary
// amounts. Amounts are kept as integer cents internally; the persisted
// JSON layout and the text export use plain decimal numbers.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a non-negative amount in cents. Whether it counts as income
// or expense is decided by the owning transaction's Type.
type Money struct {
	Cents int64
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Both dot and comma separators are
// accepted. Zero is a valid result: the import codec must round-trip
// legacy zero-amount rows, and the submission path rejects zero
// separately via Money.Validate.
//
// Examples:
//
//	ParseDecimalToCents("23")     -> 2300, nil
//	ParseDecimalToCents("12,34")  -> 1234, nil
//	ParseDecimalToCents("12.346") -> 1235, nil (rounds up)
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only unsigned values; direction lives in the transaction type.
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// String renders the amount as a minimal decimal: 2300 -> "23",
// 2350 -> "23.5", 2345 -> "23.45". This is the form used by the text
// export format.
func (m Money) String() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := cents / 100
	rem := cents % 100
	s := strconv.FormatInt(whole, 10)
	switch {
	case rem == 0:
	case rem%10 == 0:
		s += "." + strconv.FormatInt(rem/10, 10)
	default:
		s += "."
		if rem < 10 {
			s += "0"
		}
		s += strconv.FormatInt(rem, 10)
	}
	if neg {
		return "-" + s
	}
	return s
}

// Yuan returns the amount as a float64 for display. Use cents for
// arithmetic.
func (m Money) Yuan() float64 {
	return float64(m.Cents) / 100.0
}

// MarshalJSON encodes the amount as a bare decimal number so the
// persisted collections keep the original array layout.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		m.Cents = 0
		return nil
	}
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return err
	}
	m.Cents = cents
	return nil
}

// Package model contains the persisted JSON document shapes of the ledger.
package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// isoMillis matches the timestamps written by earlier versions of the ledger.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

var timestampLayouts = []string{
	time.RFC3339Nano,
	isoMillis,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexNumber decodes a JSON number, a numeric string, or null.
// Valid is false when the value was absent, null, empty or not a finite number.
type FlexNumber struct {
	Value float64
	Valid bool
}

// Num returns a valid FlexNumber.
func Num(v float64) FlexNumber {
	return FlexNumber{Value: v, Valid: true}
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = FlexNumber{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	raw := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		// Unparseable amounts are treated as missing and recomputed later.
		return nil
	}

	n.Value = v
	n.Valid = true

	return nil
}

// MarshalJSON writes the value as a number, or null when invalid.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Or returns the value, or fallback when invalid.
func (n FlexNumber) Or(fallback float64) float64 {
	if !n.Valid {
		return fallback
	}

	return n.Value
}

// ParseTimestamp reads the timestamp formats found in stored records.
// Blank or unparseable input yields the zero time.
func ParseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}

// FormatTimestamp writes t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(isoMillis)
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

package types

import (
	"strconv"
	"strings"
)

// Value is the parsed value of one header entry.
//
// Header values come in exactly two shapes: a magnitude with a unit
// ("20.00 kV", "5.043e-009 A") or free text ("InLens", "SEM Image").
// Numeric is true for the first shape, in which case Magnitude and Unit
// are populated. Raw always holds the original text as it appeared in
// the header.
type Value struct {
	Raw       string
	Magnitude float64
	Unit      string
	Numeric   bool
}

// NewValue classifies a trimmed raw value string.
//
// If the string starts with a number it becomes a numeric Value,
// otherwise a text Value. Classification never fails; ParseValue is the
// strict variant for callers that require a number.
func NewValue(raw string) Value {
	if mag, unit, err := ParseValue(raw); err == nil {
		return Value{Raw: raw, Magnitude: mag, Unit: unit, Numeric: true}
	}
	return Value{Raw: raw}
}

// String returns the original header text of the value.
func (v Value) String() string {
	return v.Raw
}

// ParseValue converts a value string of the form "<number> <unit>" into a
// magnitude and a unit.
//
// The string is split at the first whitespace run: everything before must
// parse as a floating-point number, everything after (trimmed) becomes
// the unit verbatim. The unit may be empty ("5" yields 5 and "").
//
// Returns a *MalformedValueError if the leading segment is not numeric.
func ParseValue(s string) (float64, string, error) {
	s = strings.TrimSpace(s)

	num := s
	unit := ""
	if i := strings.IndexAny(s, " \t"); i != -1 {
		num = s[:i]
		unit = strings.TrimSpace(s[i:])
	}

	mag, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, "", &MalformedValueError{Raw: s}
	}
	return mag, unit, nil
}

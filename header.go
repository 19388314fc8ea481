package semmeta

import (
	"github.com/simonhull/semmeta/internal/types"
)

// Params is an alias to types.Params, the parsed header in the vendor's
// own section/name vocabulary.
type Params = types.Params

// Value is an alias to types.Value, the parsed value of one header
// entry: a magnitude with a unit, or free text.
type Value = types.Value

// GroupedView is an alias to types.GroupedView, the normalized
// category-grouped view of a header.
type GroupedView = types.GroupedView

// GroupedValue is an alias to types.GroupedValue.
type GroupedValue = types.GroupedValue

// ParseValue converts a value string of the form "<number> <unit>" into
// a magnitude and a unit. See types.ParseValue.
func ParseValue(s string) (float64, string, error) {
	return types.ParseValue(s)
}

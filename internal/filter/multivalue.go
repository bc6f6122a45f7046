package filter

import "strings"

// ValueDelimiter separates the selected option values of a multi-select clause.
// Option values must not contain it: a value holding "|" splits into two on decode.
const ValueDelimiter = "|"

// JoinValues encodes selected option values into a clause value
func JoinValues(values []string) string {
	return strings.Join(values, ValueDelimiter)
}

// SplitValues decodes a clause value into selected option values.
// The empty string decodes to no values.
func SplitValues(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ValueDelimiter)
}

// Package selection implements incremental-search pickers independent of any
// rendering: a candidate list narrowed by free text, a keyboard and mouse
// driven highlight, and commit semantics for single and multiple values.
//
// Usage:
//
//	ac := selection.NewAutocomplete([]selection.Option[string]{
//		{Label: "Apple", Value: "a"},
//		{Label: "Banana", Value: "b"},
//	})
//	ac.OnChange(func(v string) { ... })
//	ac.Focus()
//	ac.Input("an")
//	ac.HandleKey(selection.KeyEnter) // commits "b"
package selection

import "strings"

// Option is one candidate offered by a picker
type Option[T any] struct {
	Label string
	Value T
}

// MatchFunc reports whether option corresponds to a committed value.
// It lets values be compared by identity, structure or a domain key.
type MatchFunc[T any] func(option Option[T], value T) bool

// Equal matches by value identity
func Equal[T comparable](option Option[T], value T) bool {
	return option.Value == value
}

// Key is a keystroke the engine reacts to
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
)

// FilterOptions keeps the options whose label contains search, ignoring case.
// Order is preserved.
func FilterOptions[T any](options []Option[T], search string) []Option[T] {
	needle := strings.ToLower(search)
	out := make([]Option[T], 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			out = append(out, opt)
		}
	}
	return out
}

package selection

import "strings"

// MultiAutocomplete toggles any number of values in and out of a selection
type MultiAutocomplete[T any] struct {
	list[T]
	values   []T
	onChange func([]T)
}

// NewMultiAutocomplete creates a multi picker matching values by identity
func NewMultiAutocomplete[T comparable](options []Option[T]) *MultiAutocomplete[T] {
	return NewMultiAutocompleteFunc(options, Equal[T])
}

// NewMultiAutocompleteFunc creates a multi picker matching values with match
func NewMultiAutocompleteFunc[T any](options []Option[T], match MatchFunc[T]) *MultiAutocomplete[T] {
	return &MultiAutocomplete[T]{
		list: list[T]{options: options, match: match},
	}
}

// OnChange registers the callback fired after every toggle with the full selection
func (m *MultiAutocomplete[T]) OnChange(fn func([]T)) {
	m.onChange = fn
}

// SetOptions replaces the candidates
func (m *MultiAutocomplete[T]) SetOptions(options []Option[T]) {
	m.options = options
	m.index = 0
	m.offset = 0
}

// SetValues sets the selection without firing OnChange
func (m *MultiAutocomplete[T]) SetValues(values []T) {
	m.values = append([]T(nil), values...)
	if len(m.values) == 0 {
		m.search = ""
	}
	m.clamp(len(m.Candidates()))
}

// Values returns the selection
func (m *MultiAutocomplete[T]) Values() []T {
	return m.values
}

// Matches returns the selected candidates in option order
func (m *MultiAutocomplete[T]) Matches() []Option[T] {
	out := make([]Option[T], 0, len(m.values))
	for _, opt := range m.options {
		if m.IsSelected(opt) {
			out = append(out, opt)
		}
	}
	return out
}

// IsSelected reports whether opt is part of the selection
func (m *MultiAutocomplete[T]) IsSelected(opt Option[T]) bool {
	for _, v := range m.values {
		if m.match(opt, v) {
			return true
		}
	}
	return false
}

// Summary joins the selected labels for display outside the input
func (m *MultiAutocomplete[T]) Summary() string {
	matches := m.Matches()
	labels := make([]string, len(matches))
	for i, opt := range matches {
		labels[i] = opt.Label
	}
	return strings.Join(labels, ", ")
}

// Candidates returns the options to show in the popup
func (m *MultiAutocomplete[T]) Candidates() []Option[T] {
	matches := m.Matches()
	if len(matches) > 0 && m.search == matches[len(matches)-1].Label {
		return m.options
	}
	return FilterOptions(m.options, m.search)
}

// Display returns the text shown in the input: the search text while focused,
// otherwise the selection summary.
func (m *MultiAutocomplete[T]) Display() string {
	if m.focused {
		return m.search
	}
	return m.Summary()
}

// Input replaces the search text with the raw content of the input
func (m *MultiAutocomplete[T]) Input(text string) {
	m.setSearch(text)
}

// Blur closes the popup and clears the search text. A blur into the popup is
// ignored and reported as false.
func (m *MultiAutocomplete[T]) Blur(intoPopup bool) bool {
	if !m.blur(intoPopup) {
		return false
	}
	m.search = ""
	return true
}

// HandleKey reacts to navigation and toggle keys while focused. It reports
// whether the key was consumed.
func (m *MultiAutocomplete[T]) HandleKey(k Key) bool {
	if !m.focused {
		return false
	}
	candidates := m.Candidates()
	switch k {
	case KeyDown:
		m.moveDown(len(candidates))
		return true
	case KeyUp:
		m.moveUp()
		return true
	case KeyEnter:
		if m.index < 0 || m.index >= len(candidates) {
			return false
		}
		m.toggle(candidates[m.index])
		return true
	}
	return false
}

// Hover highlights the candidate under the mouse
func (m *MultiAutocomplete[T]) Hover(i int) {
	m.hover(i, len(m.Candidates()))
}

// Click toggles the candidate under the mouse, like Enter
func (m *MultiAutocomplete[T]) Click(i int) bool {
	candidates := m.Candidates()
	if !m.hover(i, len(candidates)) {
		return false
	}
	m.toggle(candidates[i])
	return true
}

// toggle adds opt to the selection or removes it when already present, then
// rebuilds the selection in option order.
func (m *MultiAutocomplete[T]) toggle(opt Option[T]) {
	selected := m.IsSelected(opt)

	next := make([]T, 0, len(m.options))
	for _, candidate := range m.options {
		isTarget := m.match(candidate, opt.Value)
		switch {
		case isTarget && selected:
		case isTarget:
			next = append(next, candidate.Value)
		case m.IsSelected(candidate):
			next = append(next, candidate.Value)
		}
	}

	m.values = next
	m.search = ""
	m.index = min(m.index, max(len(m.options)-1, 0))
	m.focused = true
	if m.onChange != nil {
		m.onChange(next)
	}
}

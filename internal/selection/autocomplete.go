package selection

// Autocomplete picks a single value from a searchable candidate list
type Autocomplete[T any] struct {
	list[T]
	value    T
	hasValue bool
	onChange func(T)
}

// NewAutocomplete creates a picker matching committed values by identity
func NewAutocomplete[T comparable](options []Option[T]) *Autocomplete[T] {
	return NewAutocompleteFunc(options, Equal[T])
}

// NewAutocompleteFunc creates a picker matching committed values with match
func NewAutocompleteFunc[T any](options []Option[T], match MatchFunc[T]) *Autocomplete[T] {
	return &Autocomplete[T]{
		list: list[T]{options: options, match: match},
	}
}

// OnChange registers the callback fired on every commit
func (a *Autocomplete[T]) OnChange(fn func(T)) {
	a.onChange = fn
}

// SetOptions replaces the candidates
func (a *Autocomplete[T]) SetOptions(options []Option[T]) {
	a.options = options
	a.index = 0
	a.offset = 0
	a.syncSearch()
}

// SetValue sets the committed value without firing OnChange
func (a *Autocomplete[T]) SetValue(v T) {
	a.value = v
	a.hasValue = true
	a.syncSearch()
	a.clamp(len(a.Candidates()))
}

// ClearValue removes the committed value without firing OnChange
func (a *Autocomplete[T]) ClearValue() {
	var zero T
	a.value = zero
	a.hasValue = false
	a.syncSearch()
	a.clamp(len(a.Candidates()))
}

// Value returns the committed value
func (a *Autocomplete[T]) Value() (T, bool) {
	return a.value, a.hasValue
}

// Match returns the candidate corresponding to the committed value
func (a *Autocomplete[T]) Match() (Option[T], bool) {
	if !a.hasValue {
		return Option[T]{}, false
	}
	for _, opt := range a.options {
		if a.match(opt, a.value) {
			return opt, true
		}
	}
	return Option[T]{}, false
}

// IsSelected reports whether opt is the committed candidate
func (a *Autocomplete[T]) IsSelected(opt Option[T]) bool {
	return a.hasValue && a.match(opt, a.value)
}

// Candidates returns the options to show in the popup. While the search text
// is still the committed label, every option is shown so the user can browse.
func (a *Autocomplete[T]) Candidates() []Option[T] {
	if m, ok := a.Match(); ok && a.search == m.Label {
		return a.options
	}
	return FilterOptions(a.options, a.search)
}

// Display returns the text shown in the input
func (a *Autocomplete[T]) Display() string {
	return a.search
}

// Input replaces the search text with the raw content of the input
func (a *Autocomplete[T]) Input(text string) {
	a.setSearch(text)
}

// Blur closes the popup and restores the committed label. A blur into the
// popup is ignored and reported as false.
func (a *Autocomplete[T]) Blur(intoPopup bool) bool {
	if !a.blur(intoPopup) {
		return false
	}
	a.search = a.committedLabel()
	return true
}

// HandleKey reacts to navigation and commit keys while focused. It reports
// whether the key was consumed, in which case default handling is suppressed.
func (a *Autocomplete[T]) HandleKey(k Key) bool {
	if !a.focused {
		return false
	}
	candidates := a.Candidates()
	switch k {
	case KeyDown:
		a.moveDown(len(candidates))
		return true
	case KeyUp:
		a.moveUp()
		return true
	case KeyEnter:
		if a.index < 0 || a.index >= len(candidates) {
			return false
		}
		a.commit(candidates[a.index])
		return true
	}
	return false
}

// Hover highlights the candidate under the mouse
func (a *Autocomplete[T]) Hover(i int) {
	a.hover(i, len(a.Candidates()))
}

// Click commits the candidate under the mouse, like Enter
func (a *Autocomplete[T]) Click(i int) bool {
	candidates := a.Candidates()
	if !a.hover(i, len(candidates)) {
		return false
	}
	a.commit(candidates[i])
	return true
}

func (a *Autocomplete[T]) commit(opt Option[T]) {
	a.value = opt.Value
	a.hasValue = true
	a.search = opt.Label
	a.focused = true
	if a.onChange != nil {
		a.onChange(opt.Value)
	}
}

func (a *Autocomplete[T]) committedLabel() string {
	if m, ok := a.Match(); ok {
		return m.Label
	}
	return ""
}

// syncSearch keeps the search text consistent with an externally set value:
// the committed label while closed, cleared when nothing matches.
func (a *Autocomplete[T]) syncSearch() {
	label := a.committedLabel()
	if !a.focused || label == "" {
		a.search = label
	}
}

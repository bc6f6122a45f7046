package selection

// list is the state shared by the single and multi pickers
type list[T any] struct {
	options       []Option[T]
	match         MatchFunc[T]
	search        string
	index         int
	focused       bool
	pointerInside bool
	offset        int
	pageSize      int
}

func (l *list[T]) Options() []Option[T] {
	return l.options
}

// Search returns the free text typed by the user
func (l *list[T]) Search() string {
	return l.search
}

// Index returns the highlighted position within the candidates
func (l *list[T]) Index() int {
	return l.index
}

// Focused reports whether the input has focus and the popup is open
func (l *list[T]) Focused() bool {
	return l.focused
}

// Focus opens the popup with the first candidate highlighted
func (l *list[T]) Focus() {
	l.focused = true
	l.index = 0
	l.offset = 0
}

// PointerEnter records that the mouse is over the popup. While it is,
// the viewport no longer follows the highlight.
func (l *list[T]) PointerEnter() {
	l.pointerInside = true
}

// PointerLeave records that the mouse left the popup
func (l *list[T]) PointerLeave() {
	l.pointerInside = false
}

// PointerInside reports whether the mouse is over the popup
func (l *list[T]) PointerInside() bool {
	return l.pointerInside
}

// SetPageSize sets how many candidates the popup shows at once.
// Zero or less shows them all.
func (l *list[T]) SetPageSize(n int) {
	l.pageSize = n
}

// Viewport returns the [start, end) range of candidates to render
func (l *list[T]) Viewport(count int) (int, int) {
	if l.pageSize <= 0 || count <= l.pageSize {
		return 0, count
	}
	offset := min(max(l.offset, 0), count-l.pageSize)
	return offset, offset + l.pageSize
}

// Scroll moves the viewport by delta rows without touching the highlight.
// The offset stays within the last full page of count candidates.
func (l *list[T]) Scroll(delta, count int) {
	l.offset = min(max(l.offset+delta, 0), l.maxOffset(count))
}

func (l *list[T]) maxOffset(count int) int {
	if l.pageSize <= 0 {
		return 0
	}
	return max(count-l.pageSize, 0)
}

// clamp keeps the highlight and the viewport inside a candidate list of count
// entries after it changed underneath them.
func (l *list[T]) clamp(count int) {
	l.index = min(max(l.index, 0), max(count-1, 0))
	l.offset = min(max(l.offset, 0), l.maxOffset(count))
	l.follow()
}

func (l *list[T]) setSearch(text string) {
	if text != l.search {
		l.index = 0
		l.offset = 0
	}
	l.search = text
}

func (l *list[T]) moveDown(count int) {
	l.index = max(min(l.index+1, count-1), 0)
	l.follow()
}

func (l *list[T]) moveUp() {
	l.index = max(l.index-1, 0)
	l.follow()
}

func (l *list[T]) hover(i, count int) bool {
	if i < 0 || i >= count {
		return false
	}
	l.index = i
	return true
}

// follow scrolls the viewport to keep the highlight visible, unless the mouse
// is inside the popup and owns the scroll position.
func (l *list[T]) follow() {
	if l.pointerInside || l.pageSize <= 0 {
		return
	}
	if l.index < l.offset {
		l.offset = l.index
	}
	if l.index >= l.offset+l.pageSize {
		l.offset = l.index - l.pageSize + 1
	}
}

// blur closes the popup. It reports false when focus moved into the popup
// itself, which is not treated as a blur.
func (l *list[T]) blur(intoPopup bool) bool {
	if intoPopup {
		return false
	}
	l.index = 0
	l.offset = 0
	l.focused = false
	return true
}

package state

// Step moves the cursor by delta rows, wrapping past either end.
func (l *Level) Step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return l.Cursor != old
}

// Jump moves the cursor to index, clamped to the item range. Negative
// indexes count from the end, so Jump(-1) selects the last row.
func (l *Level) Jump(index int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	if index < 0 {
		index += n
	}
	old := l.Cursor
	l.Cursor = min(max(index, 0), n-1)
	return l.Cursor != old
}

// Page moves the cursor by pages of visible rows without wrapping. A
// non-positive visible count treats the whole list as one page.
func (l *Level) Page(pages, visible int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	if visible <= 0 || visible > n {
		visible = n
	}
	old := l.Cursor
	l.Cursor = min(max(max(l.Cursor, 0)+pages*visible, 0), n-1)
	return l.Cursor != old
}

// Focus puts the cursor on the row with id and reports whether it exists.
func (l *Level) Focus(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

// Scroll clamps the cursor and moves the viewport the least distance that
// keeps the cursor inside a window of visible rows.
func (l *Level) Scroll(visible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = min(max(l.Cursor, 0), n-1)
	if visible <= 0 {
		l.ViewportOffset = 0
		return
	}
	offset := min(max(l.ViewportOffset, 0), max(n-visible, 0))
	switch {
	case l.Cursor < offset:
		offset = l.Cursor
	case l.Cursor >= offset+visible:
		offset = l.Cursor - visible + 1
	}
	l.ViewportOffset = offset
}

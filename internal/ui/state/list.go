package state

// List holds the visible basket rows with cursor, filter and viewport.
type List struct {
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

func NewList(items []Item) *List {
	l := &List{Cursor: 0, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the visible index of a basket name.
func (l *List) IndexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// CursorTo moves the cursor onto name if it is visible.
func (l *List) CursorTo(name string) bool {
	idx := l.IndexOf(name)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

// UpdateItems replaces the rows, keeping the cursor on the same basket when
// it is still visible.
func (l *List) UpdateItems(items []Item) {
	prev, hadPrev := l.Current()
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if hadPrev {
		l.CursorTo(prev.Name)
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

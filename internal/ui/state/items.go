package state

// Item is one row of the basket list.
type Item struct {
	Name     string
	Selected bool
}

// ItemsFromNames builds list rows, marking the selected basket.
func ItemsFromNames(names []string, selected string) []Item {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Selected: name == selected}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

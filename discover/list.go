// Package discover — ordered list with deduplication.
// Maintains a seen set so a path is reported at most once while keeping
// discovery order.
package discover

// List is an insertion-ordered path list with deduplication.
type List struct {
	items []string
	seen  map[string]bool
}

// NewList creates an empty List.
func NewList() *List {
	return &List{seen: make(map[string]bool)}
}

// Add appends a path if it hasn't been seen before.
func (l *List) Add(path string) {
	if l.seen[path] {
		return
	}
	l.seen[path] = true
	l.items = append(l.items, path)
}

// Len returns the number of unique paths added.
func (l *List) Len() int {
	return len(l.items)
}

// All returns all paths in insertion order.
func (l *List) All() []string {
	return l.items
}

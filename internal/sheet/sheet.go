// Package sheet holds the open/closed state of detail overlays (bottom sheets)
// and of inline FAQ-style expanders inside them.
package sheet

// Sheet is a single overlay of one kind. Opening a new selection while open
// replaces the old one; sheets never stack.
type Sheet[T any] struct {
	selection T
	has       bool
	open      bool
}

// Open shows sel, replacing whatever was shown.
func (s *Sheet[T]) Open(sel T) {
	s.selection = sel
	s.has = true
	s.open = true
}

// Close hides the sheet. The last selection is kept but not reported by Selection.
func (s *Sheet[T]) Close() {
	s.open = false
}

// IsOpen reports whether the sheet is shown.
func (s *Sheet[T]) IsOpen() bool { return s.open }

// Selection returns the displayed selection; ok is false when closed.
func (s *Sheet[T]) Selection() (sel T, ok bool) {
	if !s.open {
		return sel, false
	}
	return s.selection, true
}

// Last returns the most recent selection, open or not.
func (s *Sheet[T]) Last() (sel T, ok bool) {
	return s.selection, s.has
}

// Expander tracks independently toggled items. There is no accordion
// exclusivity: toggling one item leaves the others as they were.
type Expander struct {
	open map[string]bool
}

// Toggle flips item id and returns its new state.
func (e *Expander) Toggle(id string) bool {
	if e.open == nil {
		e.open = make(map[string]bool)
	}
	e.open[id] = !e.open[id]
	return e.open[id]
}

// IsOpen reports whether item id is expanded.
func (e *Expander) IsOpen(id string) bool {
	return e.open[id]
}

// Reset collapses every item.
func (e *Expander) Reset() {
	clear(e.open)
}

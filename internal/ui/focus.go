package ui

import "slices"

// Page sections that can hold focus.
const (
	SectionCarousel = "carousel"
	SectionTeam     = "team"
)

// FocusManager tracks and rotates focus across page sections.
type FocusManager struct {
	Current  string   // focused section
	Order    []string // tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first of order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus forward, wrapping at the end.
func (f *FocusManager) Next() string { return f.rotate(1) }

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string { return f.rotate(-1) }

func (f *FocusManager) rotate(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool { return f.Current == id }

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

package carousel

// SwipeThreshold is the horizontal displacement, in cells, a drag must exceed.
const SwipeThreshold = 50

// Classify maps a net horizontal displacement to a direction. Dragging left
// (negative dx) means next, dragging right means previous.
func Classify(dx int) (Direction, bool) {
	switch {
	case dx < -SwipeThreshold:
		return Next, true
	case dx > SwipeThreshold:
		return Prev, true
	default:
		return 0, false
	}
}

// Tracker follows one drag gesture from press to release.
type Tracker struct {
	startX   int
	dragging bool
}

// Press records where a drag starts.
func (t *Tracker) Press(x int) {
	t.startX = x
	t.dragging = true
}

// Dragging reports whether a press has been seen without a release.
func (t *Tracker) Dragging() bool { return t.dragging }

// Release ends the drag at x and classifies it.
func (t *Tracker) Release(x int) (Direction, bool) {
	if !t.dragging {
		return 0, false
	}
	t.dragging = false
	return Classify(x - t.startX)
}

// Abort forgets a drag in progress.
func (t *Tracker) Abort() {
	t.dragging = false
}

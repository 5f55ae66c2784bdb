package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		dx     int
		want   Direction
		wantOK bool
	}{
		{0, 0, false},
		{50, 0, false},
		{-50, 0, false},
		{49, 0, false},
		{-51, Next, true},
		{-200, Next, true},
		{51, Prev, true},
		{120, Prev, true},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.dx)
		assert.Equal(t, tt.wantOK, ok, "dx=%d", tt.dx)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "dx=%d", tt.dx)
		}
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker

	_, ok := tr.Release(10)
	assert.False(t, ok, "release without press")

	tr.Press(100)
	assert.True(t, tr.Dragging())
	dir, ok := tr.Release(20)
	assert.True(t, ok)
	assert.Equal(t, Next, dir)
	assert.False(t, tr.Dragging())

	tr.Press(10)
	dir, ok = tr.Release(70)
	assert.True(t, ok)
	assert.Equal(t, Prev, dir)

	tr.Press(10)
	_, ok = tr.Release(40)
	assert.False(t, ok)

	tr.Press(10)
	tr.Abort()
	_, ok = tr.Release(100)
	assert.False(t, ok)
}

func TestSwipe_AdvancesExactlyOnce(t *testing.T) {
	c := New(3)
	var tr Tracker

	tr.Press(80)
	dir, ok := tr.Release(10)
	assert.True(t, ok)
	tok, ok := c.Advance(dir)
	assert.True(t, ok)
	assert.True(t, c.Settle(tok))
	assert.Equal(t, 1, c.Index())

	tr.Press(10)
	dir, ok = tr.Release(80)
	assert.True(t, ok)
	tok, _ = c.Advance(dir)
	c.Settle(tok)
	assert.Equal(t, 0, c.Index())
}

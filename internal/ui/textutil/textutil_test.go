package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Neuroavaliação", Truncate("Neuroavaliação", 20))
	assert.Equal(t, "Neuro…", Truncate("Neuroavaliação", 6))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.LessOrEqual(t, VisualWidth(Truncate("Psicologia Clínica", 7)), 7)
}

func TestPadVisual(t *testing.T) {
	assert.Equal(t, "CVV  ", PadRightVisual("CVV", 5))
	assert.Equal(t, "  188", PadLeftVisual("188", 5))
	assert.Equal(t, "SAM…", PadRightVisual("SAMU 192", 4))
}

func TestWrap(t *testing.T) {
	lines := Wrap("Equilíbrio emocional para todas as idades.", 16)
	assert.Equal(t, []string{"Equilíbrio", "emocional para", "todas as idades."}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, VisualWidth(l), 16)
	}

	assert.Nil(t, Wrap("x", 0))
	assert.Empty(t, Wrap("   ", 10))
	assert.Equal(t, []string{"abc…"}, Wrap("abcdefgh", 4))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "MM", Initials("Dra. Mara Magalhães"))
	assert.Equal(t, "BA", Initials("BEM ALI"))
	assert.Equal(t, "B", Initials("Dra. Bárbara"))
	assert.Equal(t, "", Initials(""))
}

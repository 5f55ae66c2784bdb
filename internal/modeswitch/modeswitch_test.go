package modeswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_Completes(t *testing.T) {
	c := New(Institutional)

	req, ok := c.Toggle()
	require.True(t, ok)
	assert.Equal(t, Personal, req.Target)
	assert.False(t, req.ScrollTop)
	assert.True(t, c.Switching())
	assert.Equal(t, Institutional, c.Mode(), "mode flips only after the delay")

	m, ok := c.Complete(req.Token)
	require.True(t, ok)
	assert.Equal(t, Personal, m)
	assert.False(t, c.Switching())
}

func TestToggle_ToInstitutionalScrollsTop(t *testing.T) {
	c := New(Personal)
	req, ok := c.Toggle()
	require.True(t, ok)
	assert.Equal(t, Institutional, req.Target)
	assert.True(t, req.ScrollTop)
}

func TestToggle_RapidRequestsFlipOnce(t *testing.T) {
	c := New(Institutional)

	first, ok := c.Toggle()
	require.True(t, ok)
	_, ok = c.Toggle()
	assert.False(t, ok, "toggle during switch is dropped")

	_, ok = c.Complete(first.Token)
	require.True(t, ok)
	_, ok = c.Complete(first.Token)
	assert.False(t, ok)

	assert.Equal(t, Personal, c.Mode())
}

func TestStop(t *testing.T) {
	c := New(Institutional)
	req, _ := c.Toggle()
	c.Stop()

	_, ok := c.Complete(req.Token)
	assert.False(t, ok)
	assert.Equal(t, Institutional, c.Mode())
	assert.False(t, c.Switching())
	assert.False(t, c.Slot().Armed())
}

func TestParse(t *testing.T) {
	m, err := Parse("Personal")
	require.NoError(t, err)
	assert.Equal(t, Personal, m)

	m, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, Institutional, m)

	_, err = Parse("both")
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "institutional", Institutional.String())
	assert.Equal(t, "personal", Personal.String())
	assert.Equal(t, Institutional, Personal.Other())
}

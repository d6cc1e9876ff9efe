package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAssignsDistinctIDs(t *testing.T) {
	a, b := New("Buy milk"), New("Buy milk")
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, "Buy milk", a.Label())
	require.False(t, a.Done)
}

func TestStats(t *testing.T) {
	done, pending := Stats([]Item{{Done: true}, {}, {}})
	require.Equal(t, 1, done)
	require.Equal(t, 2, pending)

	done, pending = Stats(nil)
	require.Zero(t, done)
	require.Zero(t, pending)
}

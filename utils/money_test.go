package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCents(t *testing.T) {
	require.EqualValues(t, 25000, Cents(250.00))
	require.EqualValues(t, 25000, Cents(250.004)) // rounds to the cent
	require.EqualValues(t, 25001, Cents(250.006))
	require.EqualValues(t, 0, Cents(0))
}

func TestSameAmount(t *testing.T) {
	require.True(t, SameAmount(250.00, 250.00))
	require.True(t, SameAmount(250.00, 250.001))
	require.False(t, SameAmount(250.00, 250.01))
	require.False(t, SameAmount(250.00, 200.00))
	// Classic float trap: 0.1+0.2 still equals 0.3 at cent precision.
	require.True(t, SameAmount(0.1+0.2, 0.3))
}

package trainer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPartitions(t *testing.T) {
	train, test, err := Split(10, 0.2, 42)
	require.NoError(t, err)
	assert.Len(t, train, 8)
	assert.Len(t, test, 2)

	all := append(append([]int(nil), train...), test...)
	sort.Ints(all)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, all)
}

func TestSplitDeterministic(t *testing.T) {
	train1, test1, err := Split(100, 0.2, 42)
	require.NoError(t, err)
	train2, test2, err := Split(100, 0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)

	_, test3, err := Split(100, 0.2, 7)
	require.NoError(t, err)
	assert.NotEqual(t, test1, test3)
}

func TestSplitRoundsTestUp(t *testing.T) {
	train, test, err := Split(11, 0.2, 1)
	require.NoError(t, err)
	assert.Len(t, test, 3)
	assert.Len(t, train, 8)
}

func TestSplitInvalid(t *testing.T) {
	for _, frac := range []float64{0, 1, -0.1, 1.5} {
		_, _, err := Split(10, frac, 42)
		assert.Error(t, err, "fraction %v", frac)
	}

	_, _, err := Split(1, 0.2, 42)
	assert.Error(t, err)
}

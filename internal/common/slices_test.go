package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairs(t *testing.T) {
	t.Run("even", func(t *testing.T) {
		pairs, ok := Pairs([]uint64{79, 14, 55, 13})
		assert.True(t, ok)
		assert.Equal(t, [][2]uint64{{79, 14}, {55, 13}}, pairs)
	})

	t.Run("empty", func(t *testing.T) {
		pairs, ok := Pairs([]int{})
		assert.True(t, ok)
		assert.Empty(t, pairs)
	})

	t.Run("odd", func(t *testing.T) {
		pairs, ok := Pairs([]int{1, 2, 3})
		assert.False(t, ok)
		assert.Nil(t, pairs)
	})
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"seed", "soil"})
	assert.True(t, ok)
	assert.Equal(t, "seed", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.True(t, IsEmpty([]string(nil)))
}

func TestIsInHalfOpen(t *testing.T) {
	tests := []struct {
		lo, v, hi uint64
		expected  bool
	}{
		{98, 97, 100, false},
		{98, 98, 100, true},
		{98, 99, 100, true},
		{98, 100, 100, false},
		{5, 5, 5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsInHalfOpen(tt.lo, tt.v, tt.hi), "%d <= %d < %d", tt.lo, tt.v, tt.hi)
	}
}

func TestAddChecked(t *testing.T) {
	sum, ok := AddChecked(uint64(98), uint64(2))
	assert.True(t, ok)
	assert.Equal(t, uint64(100), sum)

	_, ok = AddChecked(uint64(math.MaxUint64), uint64(1))
	assert.False(t, ok)

	sum, ok = AddChecked(uint64(math.MaxUint64), uint64(0))
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), sum)
}

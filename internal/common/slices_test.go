package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStablePartition(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	out := StablePartition(in, func(v int) bool { return v%2 == 0 })

	assert.Equal(t, []int{2, 4, 6, 1, 3, 5}, out)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, in, "input must not be reordered")
	assert.Nil(t, StablePartition([]int(nil), func(int) bool { return true }))
}

func TestClone(t *testing.T) {
	in := []string{"a", "b"}
	out := Clone(in)
	out[0] = "z"

	assert.Equal(t, "a", in[0])
	assert.Nil(t, Clone([]string{}))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Dedupe([]string{"b", "a", "", "b", "c", "a"}))
	assert.Nil(t, Dedupe(nil))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = First([]string{})
	assert.False(t, ok)
}

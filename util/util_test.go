package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[int]string{9: "c", 2: "a", 5: "b"}
	assert.Equal(t, []int{2, 5, 9}, SortedKeys(m))
}

func TestMinMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Min(3, 7))
	assert.Equal(7, Max(3, 7))
	assert.Equal(2, MinOf([]int{5, 2, 9}))
	assert.Equal(9, MaxOf([]int{5, 2, 9}))
}

package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapKeys(t *testing.T) {
	m := map[string]bool{"key1": true, "key2": true}
	assert.ElementsMatch(t, MapKeys(m), []string{"key1", "key2"})
}

func TestSortedKeys(t *testing.T) {
	m := map[string]bool{"b": true, "c": true, "a": true}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestSortSlice(t *testing.T) {
	arr := []int{3, 1, 2}
	SortSlice(arr)
	assert.Equal(t, []int{1, 2, 3}, arr)
}

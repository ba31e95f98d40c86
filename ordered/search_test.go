package ordered_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerus/ordered"
)

func identity(s string) string { return s }

func TestBinarySearchByKey_NilItems(t *testing.T) {
	var items []string
	_, err := ordered.BinarySearchByKey(items, identity, "x")
	assert.ErrorIs(t, err, ordered.ErrInvalidArgument)
}

func TestBinarySearchByKey_NilKey(t *testing.T) {
	_, err := ordered.BinarySearchByKey[string, string]([]string{}, nil, "")
	assert.ErrorIs(t, err, ordered.ErrInvalidArgument)
}

func TestBinarySearchByKey_Empty(t *testing.T) {
	_, err := ordered.BinarySearchByKey([]string{}, identity, "")
	assert.ErrorIs(t, err, ordered.ErrEmptyCollection)
}

func TestBinarySearchByKey_NotFound(t *testing.T) {
	_, err := ordered.BinarySearchByKey([]string{"TestItem"}, identity, "doesNotExist")
	assert.ErrorIs(t, err, ordered.ErrNotFound)

	_, err = ordered.BinarySearchByKey([]string{"Item", "OtherItem", "ZItem"}, identity, "missing")
	assert.ErrorIs(t, err, ordered.ErrNotFound)
}

func TestBinarySearchByKey_Positions(t *testing.T) {
	cases := []struct {
		name   string
		items  []string
		target string
	}{
		{"single", []string{"TestItem"}, "TestItem"},
		{"first of even", []string{"Item", "OtherItem"}, "Item"},
		{"last of even", []string{"Item", "OtherItem"}, "OtherItem"},
		{"first of odd", []string{"Item", "OtherItem", "ZItem"}, "Item"},
		{"middle of odd", []string{"Item", "OtherItem", "ZItem"}, "OtherItem"},
		{"last of odd", []string{"Item", "OtherItem", "ZItem"}, "ZItem"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ordered.BinarySearchByKey(c.items, identity, c.target)
			require.NoError(t, err)
			assert.Equal(t, c.target, got)
		})
	}
}

type record struct {
	ID   int
	Name string
}

func TestBinarySearchByKey_Projection(t *testing.T) {
	items := make([]record, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, record{ID: i * 3, Name: "r" + strconv.Itoa(i)})
	}
	byID := func(r record) int { return r.ID }

	for i := 0; i < 100; i++ {
		got, err := ordered.BinarySearchByKey(items, byID, i*3)
		require.NoError(t, err)
		assert.Equal(t, items[i], got)
	}
	for _, miss := range []int{-1, 1, 2, 298, 1000} {
		_, err := ordered.BinarySearchByKey(items, byID, miss)
		assert.ErrorIs(t, err, ordered.ErrNotFound, "key %d", miss)
	}
}

func TestBinarySearchByKey_DuplicateKeys(t *testing.T) {
	items := []record{{1, "a"}, {2, "b"}, {2, "c"}, {2, "d"}, {3, "e"}}
	got, err := ordered.BinarySearchByKey(items, func(r record) int { return r.ID }, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)
	assert.Contains(t, []string{"b", "c", "d"}, got.Name)
}

func TestBinarySearchByKey_CountsKeyCalls(t *testing.T) {
	items := make([]int, 1024)
	for i := range items {
		items[i] = i
	}
	calls := 0
	key := func(v int) int { calls++; return v }

	_, err := ordered.BinarySearchByKey(items, key, 1023)
	require.NoError(t, err)
	assert.LessOrEqual(t, calls, 11, "search must be logarithmic")
}

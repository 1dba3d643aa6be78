// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ranktree/avl"
	"github.com/bitmark-inc/ranktree/fault"
)

func TestListInsertByRank(t *testing.T) {
	tree := avl.New()

	steps := []struct {
		rank  int
		key   int32
		value string
	}{
		{1, 5, "a"},
		{2, 6, "b"},
		{1, 4, "c"},
		{4, 8, "d"},
		{4, 7, "e"},
	}
	for _, s := range steps {
		_, err := tree.ListInsert(s.rank, s.key, s.value)
		require.NoError(t, err, "list insert: %d", s.rank)
		require.NoError(t, tree.Check(), "after list insert: %d", s.rank)
	}

	assert.Equal(t, []int32{4, 5, 6, 7, 8}, tree.Keys(), "keys")
	assert.Equal(t, []interface{}{"c", "a", "b", "e", "d"}, tree.Values(), "values")

	v, _ := tree.Min()
	assert.Equal(t, "c", v, "minimum")
	v, _ = tree.Max()
	assert.Equal(t, "d", v, "maximum")
}

func TestListInsertInvalidRank(t *testing.T) {
	tree := avl.New()

	for _, rank := range []int{-1, 0, 2} {
		_, err := tree.ListInsert(rank, 1, nil)
		assert.Equal(t, fault.ErrInvalidRank, err, "rank: %d", rank)
	}
	assert.True(t, tree.IsEmpty(), "unchanged")

	_, err := tree.ListInsert(1, 1, nil)
	require.NoError(t, err, "first")
	_, err = tree.ListInsert(3, 2, nil)
	assert.Equal(t, fault.ErrInvalidRank, err, "beyond end")
	assert.Equal(t, 1, tree.Count(), "count")
}

func TestListDeleteByRank(t *testing.T) {
	tree := avl.New()
	for i := int32(1); i <= 7; i += 1 {
		_, err := tree.ListInsert(int(i), i, i*100)
		require.NoError(t, err, "append: %d", i)
	}

	_, err := tree.ListDelete(0)
	assert.Equal(t, fault.ErrInvalidRank, err, "rank 0")
	_, err = tree.ListDelete(8)
	assert.Equal(t, fault.ErrInvalidRank, err, "rank 8")

	_, err = tree.ListDelete(4)
	require.NoError(t, err, "middle")
	assert.Equal(t, []int32{1, 2, 3, 5, 6, 7}, tree.Keys(), "after middle")

	_, err = tree.ListDelete(1)
	require.NoError(t, err, "first")
	_, err = tree.ListDelete(tree.Count())
	require.NoError(t, err, "last")

	assert.Equal(t, []int32{2, 3, 5, 6}, tree.Keys(), "keys")
	assert.NoError(t, tree.Check(), "consistency")

	v, _ := tree.Min()
	assert.Equal(t, int32(200), v, "minimum")
	v, _ = tree.Max()
	assert.Equal(t, int32(600), v, "maximum")
}

// positional operations against a plain slice, keys carry no order
func TestListRandomAgainstSlice(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := avl.New()
	model := []interface{}{}

	for i := 0; i < 3000; i += 1 {
		if len(model) > 0 && 0 == r.Intn(3) {
			position := r.Intn(len(model))
			_, err := tree.ListDelete(position + 1)
			require.NoError(t, err, "delete at: %d", position)
			model = append(model[:position], model[position+1:]...)
		} else {
			position := r.Intn(len(model) + 1)
			value := i
			_, err := tree.ListInsert(position+1, int32(r.Intn(100)), value)
			require.NoError(t, err, "insert at: %d", position)
			model = append(model, nil)
			copy(model[position+1:], model[position:])
			model[position] = value
		}
		require.NoError(t, tree.CheckStructure(), "iteration: %d", i)
		require.Equal(t, len(model), tree.Count(), "iteration: %d", i)
	}

	assert.Equal(t, model, tree.Values(), "values")

	for i, value := range model {
		n, err := tree.Select(i + 1)
		require.NoError(t, err, "select: %d", i+1)
		assert.Equal(t, value, n.Value(), "select: %d", i+1)
		assert.Equal(t, i+1, n.Rank(), "rank: %d", i+1)
	}
}

func TestListRotationsAppending(t *testing.T) {
	tree := avl.New()

	total := 0
	for i := int32(1); i <= 7; i += 1 {
		n, err := tree.ListInsert(tree.Count()+1, i, nil)
		require.NoError(t, err, "append: %d", i)
		total += n
	}

	// same shape as ascending keyed inserts
	assert.Equal(t, 4, total, "rotations")
	assert.Equal(t, 2, tree.Height(), "height")
	assert.Equal(t, int32(4), tree.Root().Key(), "root")
}

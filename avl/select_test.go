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

func TestSelectEmpty(t *testing.T) {
	tree := avl.New()

	for _, rank := range []int{-1, 0, 1, 2} {
		n, err := tree.Select(rank)
		assert.Nil(t, n, "rank: %d", rank)
		assert.Equal(t, fault.ErrInvalidRank, err, "rank: %d", rank)
	}
	assert.Equal(t, 0, tree.Rank(nil), "rank of nil")
}

func TestSelectAndRank(t *testing.T) {
	tree := avl.New()
	for _, key := range []int32{50, 20, 80, 10, 30, 70, 90, 60} {
		_, err := tree.Insert(key, nil)
		require.NoError(t, err, "insert: %d", key)
	}

	keys := tree.Keys()
	require.Len(t, keys, tree.Count(), "keys")

	for i, key := range keys {
		n, err := tree.Select(i + 1)
		require.NoError(t, err, "select: %d", i+1)
		assert.Equal(t, key, n.Key(), "select: %d", i+1)
		assert.Equal(t, i+1, tree.Rank(n), "rank: %d", key)

		p, r := tree.Locate(key)
		assert.Equal(t, n, p, "locate: %d", key)
		assert.Equal(t, i+1, r, "locate rank: %d", key)
	}

	_, err := tree.Select(tree.Count() + 1)
	assert.Equal(t, fault.ErrInvalidRank, err, "beyond last")

	n, r := tree.Locate(55)
	assert.Nil(t, n, "missing key")
	assert.Equal(t, 0, r, "missing key rank")
}

func TestSelectExtremes(t *testing.T) {
	tree := avl.New()
	for _, key := range []int32{5, 3, 9, 1} {
		tree.Insert(key, key)
	}

	first, err := tree.Select(1)
	require.NoError(t, err, "select first")
	assert.Equal(t, tree.First(), first, "first")

	last, err := tree.Select(tree.Count())
	require.NoError(t, err, "select last")
	assert.Equal(t, tree.Last(), last, "last")

	v, ok := tree.Min()
	assert.True(t, ok, "min")
	assert.Equal(t, int32(1), v, "min value")
	v, ok = tree.Max()
	assert.True(t, ok, "max")
	assert.Equal(t, int32(9), v, "max value")
}

func TestRankRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := avl.New()

	for i := 0; i < 1000; i += 1 {
		key := int32(r.Intn(5000)) - 2500
		if 0 == r.Intn(3) {
			tree.Delete(key)
		} else {
			tree.Insert(key, nil)
		}
	}
	require.NoError(t, tree.Check(), "consistency")

	for rank := 1; rank <= tree.Count(); rank += 1 {
		n, err := tree.Select(rank)
		require.NoError(t, err, "select: %d", rank)
		require.Equal(t, rank, n.Rank(), "round trip: %d", rank)
	}
}

func TestWalk(t *testing.T) {
	tree := avl.New()
	for _, key := range []int32{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(key, nil)
	}

	visited := []int32{}
	tree.Walk(func(p *avl.Node) bool {
		visited = append(visited, p.Key())
		return true
	})
	assert.Equal(t, tree.Keys(), visited, "full walk")

	visited = visited[:0]
	tree.Walk(func(p *avl.Node) bool {
		visited = append(visited, p.Key())
		return p.Key() < 3
	})
	assert.Equal(t, []int32{1, 2, 3}, visited, "stopped walk")

	avl.New().Walk(func(p *avl.Node) bool {
		t.Fatal("walk called on empty tree")
		return false
	})
}

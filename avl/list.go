// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ranktree/fault"
)

// ListInsert - insert a new node so that it has a specific rank,
// ignoring key order
//
// rank must be in [1, Count()+1].  The key is not checked against
// its neighbours (see package documentation).  Returns the number of
// rotations needed to rebalance the tree.
func (tree *Tree) ListInsert(rank int, key int32, value interface{}) (int, error) {
	if rank < 1 || rank > tree.count+1 {
		return 0, fault.ErrInvalidRank
	}

	z := newNode(key, value)
	tree.count += 1

	if nil == tree.root {
		tree.root = z
		tree.minimum = z
		tree.maximum = z
		return 0, nil
	}

	var parent *Node
	switch {
	case rank == tree.count: // after the current last
		parent = tree.maximum
		parent.right = z
		tree.maximum = z

	case 1 == rank: // before the current first
		parent = tree.minimum
		parent.left = z
		tree.minimum = z

	default: // between the current holder of rank and its predecessor
		s := selectRank(tree.root, rank)
		if nil == s.left {
			parent = s
			parent.left = z
		} else {
			parent = s.left.last()
			parent.right = z
		}
	}
	z.up = parent

	return tree.recomputeAndRebalanceFrom(parent), nil
}

// ListDelete - remove the node with a specific rank
//
// rank must be in [1, Count()].  Returns the number of rotations
// needed to rebalance the tree.
func (tree *Tree) ListDelete(rank int) (int, error) {
	q, err := tree.Select(rank)
	if nil != err {
		return 0, err
	}
	return tree.remove(q), nil
}

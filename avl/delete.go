// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ranktree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the number of rotations needed to rebalance the tree, or
// fault.ErrKeyNotFound if the key is not present
func (tree *Tree) Delete(key int32) (int, error) {
	q := tree.find(key)
	if nil == q {
		return 0, fault.ErrKeyNotFound
	}
	return tree.remove(q), nil
}

// internal: unlink a node that is known to be in the tree
func (tree *Tree) remove(q *Node) int {
	tree.count -= 1

	// neighbours must be found while q is still linked
	if q == tree.minimum {
		tree.minimum = q.Next()
	}
	if q == tree.maximum {
		tree.maximum = q.Prev()
	}

	// lowest node whose cached height/size may be stale
	var anchor *Node

	switch {
	case nil == q.left && nil == q.right:
		anchor = q.up
		tree.replaceChild(q.up, q, nil)

	case nil == q.right: // only a left sub-tree
		anchor = q.left
		tree.replaceChild(q.up, q, q.left)

	case nil == q.left: // only a right sub-tree
		anchor = q.up
		tree.replaceChild(q.up, q, q.right)

	default: // successor is the lowest node of the right sub-tree
		s := q.right.first()
		if s != q.right {
			anchor = s.up
			tree.replaceChild(s.up, s, s.right)
			s.right = q.right
			s.right.up = s
		} else {
			anchor = s
		}
		s.left = q.left
		s.left.up = s
		tree.replaceChild(q.up, q, s)
	}

	q.isolate()

	return tree.recomputeAndRebalanceFrom(anchor)
}

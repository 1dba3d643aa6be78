// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ranktree/fault"
)

// Insert - insert a new node into the tree
//
// returns the number of rotations needed to rebalance the tree, or
// fault.ErrDuplicateKey (with the tree unchanged) if the key is
// already present
func (tree *Tree) Insert(key int32, value interface{}) (int, error) {
	var parent *Node
	p := tree.root
	for nil != p {
		parent = p
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return 0, fault.ErrDuplicateKey
		}
	}

	z := newNode(key, value)
	z.up = parent
	tree.count += 1

	if nil == parent {
		tree.root = z
		tree.minimum = z
		tree.maximum = z
		return 0, nil
	}

	if key < parent.key {
		parent.left = z
	} else {
		parent.right = z
	}

	if key < tree.minimum.key {
		tree.minimum = z
	} else if key > tree.maximum.key {
		tree.maximum = z
	}

	return tree.recomputeAndRebalanceFrom(parent), nil
}

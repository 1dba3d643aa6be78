// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ranktree/fault"
)

// Search - find the value stored with a specific key
func (tree *Tree) Search(key int32) (interface{}, error) {
	p := tree.find(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Locate - find the node with a specific key and its rank
// returns nil, 0 if the key is not in the tree
func (tree *Tree) Locate(key int32) (*Node, int) {
	return locate(key, tree.root, 0)
}

// rank accumulates the nodes known to be below the current sub-tree
func locate(key int32, tree *Node, rank int) (*Node, int) {
	if nil == tree {
		return nil, 0
	}

	switch {
	case key < tree.key:
		return locate(key, tree.left, rank)
	case key > tree.key:
		return locate(key, tree.right, rank+size(tree.left)+1)
	default:
		return tree, rank + size(tree.left) + 1
	}
}

// internal: regular BST walk
func (tree *Tree) find(key int32) *Node {
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

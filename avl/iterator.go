// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.minimum
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.maximum
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	up := tree.up
	for up != nil && tree == up.right {
		tree = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	up := tree.up
	for up != nil && tree == up.left {
		tree = up
		up = up.up
	}
	return up
}

// Walk - call fn for each node in ascending key order
// stops early if fn returns false
func (tree *Tree) Walk(fn func(*Node) bool) {
	for p := tree.minimum; nil != p; p = p.Next() {
		if !fn(p) {
			return
		}
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root    *Node
	count   int
	minimum *Node // lowest key, nil when empty
	maximum *Node // highest key, nil when empty

	leftRotations  uint64
	rightRotations uint64
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:    nil,
		count:   0,
		minimum: nil,
		maximum: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, -1 when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Min - value of the lowest key
func (tree *Tree) Min() (interface{}, bool) {
	if nil == tree.minimum {
		return nil, false
	}
	return tree.minimum.value, true
}

// Max - value of the highest key
func (tree *Tree) Max() (interface{}, bool) {
	if nil == tree.maximum {
		return nil, false
	}
	return tree.maximum.value, true
}

// Rotations - cumulative number of single left and right rotations
// a double rotation counts as one of each
func (tree *Tree) Rotations() (left uint64, right uint64) {
	return tree.leftRotations, tree.rightRotations
}

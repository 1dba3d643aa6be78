// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ranktree/fault"
)

// recomputeAndRebalanceFrom - walk from p up to the root refreshing
// the cached size and height of every node and rotating wherever the
// balance factor has reached ±2
//
// returns the total number of rotations applied
func (tree *Tree) recomputeAndRebalanceFrom(p *Node) int {
	rotations := 0
	for nil != p {
		p.update()
		bf := balanceFactor(p)
		if bf > 1 || bf < -1 {
			rotations += tree.rebalance(p, bf)
		}
		// after a rotation p has moved down one level and its
		// parent is the new root of the sub-tree, which is
		// already up to date, so revisiting it is harmless
		p = p.up
	}
	return rotations
}

// select and apply the rotation for a node with balance factor ±2
// returns the number of single rotations performed (1 or 2)
func (tree *Tree) rebalance(x *Node, bf int) int {
	switch {
	case 2 == bf && balanceFactor(x.left) >= 0: // LL
		tree.rightRotate(x)
		return 1

	case -2 == bf && balanceFactor(x.right) <= 0: // RR
		tree.leftRotate(x)
		return 1

	case 2 == bf && -1 == balanceFactor(x.left): // LR
		tree.leftRotate(x.left)
		tree.rightRotate(x)
		return 2

	case -2 == bf && 1 == balanceFactor(x.right): // RL
		tree.rightRotate(x.right)
		tree.leftRotate(x)
		return 2
	}

	fault.Panicf("avl: node: %d has impossible balance: %d  left: %d  right: %d",
		x.key, bf, balanceFactor(x.left), balanceFactor(x.right))
	return 0
}

// x's right child y takes the place of x
//
//      x                y
//     / \              / \
//    a   y     →      x   c
//       / \          / \
//      b   c        a   b
func (tree *Tree) leftRotate(x *Node) {
	y := x.right

	x.right = y.left
	if nil != y.left {
		y.left.up = x
	}

	tree.replaceChild(x.up, x, y)

	y.left = x
	x.up = y

	// x is now below y so must be refreshed first
	x.update()
	y.update()

	tree.leftRotations += 1
}

// x's left child y takes the place of x
//
//        x            y
//       / \          / \
//      y   c   →    a   x
//     / \              / \
//    a   b            b   c
func (tree *Tree) rightRotate(x *Node) {
	y := x.left

	x.left = y.right
	if nil != y.right {
		y.right.up = x
	}

	tree.replaceChild(x.up, x, y)

	y.right = x
	x.up = y

	x.update()
	y.update()

	tree.rightRotations += 1
}

// make newChild occupy oldChild's position under parent
// a nil parent means oldChild was the root
func (tree *Tree) replaceChild(parent *Node, oldChild *Node, newChild *Node) {
	if nil != newChild {
		newChild.up = parent
	}
	switch {
	case nil == parent:
		tree.root = newChild
	case oldChild == parent.left:
		parent.left = newChild
	default:
		parent.right = newChild
	}
}

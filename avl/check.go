// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ranktree/fault"
)

// Check - verify every invariant, returning the first violation
func (tree *Tree) Check() error {
	if err := tree.CheckStructure(); nil != err {
		return err
	}
	if !tree.CheckOrder() {
		return fault.ErrTreeOrder
	}
	return nil
}

// CheckStructure - verify every invariant except key order, which
// does not hold for a tree built by rank with arbitrary keys
func (tree *Tree) CheckStructure() error {
	if !tree.CheckUp() {
		return fault.ErrTreeLinks
	}
	if !tree.CheckCounts() {
		return fault.ErrTreeCounts
	}
	if !tree.CheckHeights() {
		return fault.ErrTreeHeights
	}
	if !tree.CheckBalance() {
		return fault.ErrTreeBalance
	}
	if !tree.CheckExtremes() {
		return fault.ErrTreeExtremes
	}
	return nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	return checkup(p.left, p) && checkup(p.right, p)
}

// CheckCounts - check the cached sub-tree sizes and the node count
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	return ok && n == tree.count
}

// returns the actual size of the sub-tree
func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, okl := checkCounts(p.left)
	nr, okr := checkCounts(p.right)
	n := 1 + nl + nr
	return n, okl && okr && n == p.size
}

// CheckHeights - check the cached heights
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// returns the actual height of the sub-tree
func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, okl := checkHeights(p.left)
	hr, okr := checkHeights(p.right)
	h := hl
	if hr > h {
		h = hr
	}
	h += 1
	return h, okl && okr && h == p.height
}

// CheckBalance - every balance factor must be in {-1, 0, +1}
// relies on the cached heights so run CheckHeights first
func (tree *Tree) CheckBalance() bool {
	return checkBalance(tree.root)
}

func checkBalance(p *Node) bool {
	if nil == p {
		return true
	}
	bf := balanceFactor(p)
	if bf < -1 || bf > 1 {
		return false
	}
	return checkBalance(p.left) && checkBalance(p.right)
}

// CheckOrder - keys must be strictly ascending in order
func (tree *Tree) CheckOrder() bool {
	ok := true
	first := true
	previous := int32(0)
	inOrder(tree.root, func(p *Node) {
		if !first && p.key <= previous {
			ok = false
		}
		first = false
		previous = p.key
	})
	return ok
}

// CheckExtremes - the cached minimum and maximum must be the first
// and last nodes of the tree
func (tree *Tree) CheckExtremes() bool {
	return tree.minimum == tree.root.first() && tree.maximum == tree.root.last()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/ranktree/fault"
)

// Select - the node with a specific rank, the lowest key has rank 1
func (tree *Tree) Select(rank int) (*Node, error) {
	if rank < 1 || rank > tree.count {
		return nil, fault.ErrInvalidRank
	}
	switch rank {
	case 1:
		return tree.minimum, nil
	case tree.count:
		return tree.maximum, nil
	}
	return selectRank(tree.root, rank), nil
}

// rank must be within the sub-tree
func selectRank(p *Node, rank int) *Node {
	for nil != p {
		r := size(p.left) + 1
		switch {
		case rank == r:
			return p
		case rank < r:
			p = p.left
		default:
			rank -= r
			p = p.right
		}
	}
	return nil
}

// Rank - rank of a node in its tree, 0 for nil
func (tree *Tree) Rank(p *Node) int {
	return p.Rank()
}

// Rank - the position of this node in the ascending sequence of
// its tree, counting from 1
func (p *Node) Rank() int {
	if nil == p {
		return 0
	}
	r := size(p.left) + 1
	for y := p; nil != y.up; y = y.up {
		if y == y.up.right {
			r += size(y.up.left) + 1
		}
	}
	return r
}

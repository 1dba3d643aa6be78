// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node       // left sub-tree
	right  *Node       // right sub-tree
	up     *Node       // points to parent node
	key    int32       // key part for ordering
	value  interface{} // value part for data storage
	height int         // 0 for a leaf
	size   int         // nodes in this sub-tree including this one
}

// a fresh leaf
func newNode(key int32, value interface{}) *Node {
	return &Node{
		key:    key,
		value:  value,
		height: 0,
		size:   1,
	}
}

// Key - read the key from a node item
func (p *Node) Key() int32 {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Size - number of nodes in the sub-tree rooted at this node
func (p *Node) Size() int {
	return p.size
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// absent sub-trees have height -1
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// absent sub-trees have size 0
func size(p *Node) int {
	if nil == p {
		return 0
	}
	return p.size
}

// height(left) - height(right), zero for an absent node
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// refresh the cached height and size from the children
func (p *Node) update() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.size = 1 + size(p.left) + size(p.right)
}

// sever all links
func (p *Node) isolate() {
	p.left = nil
	p.right = nil
	p.up = nil
}

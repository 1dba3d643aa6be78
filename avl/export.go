// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int32 {
	keys := make([]int32, 0, tree.count)
	inOrder(tree.root, func(p *Node) {
		keys = append(keys, p.key)
	})
	return keys
}

// Values - all values, in the same order as Keys
func (tree *Tree) Values() []interface{} {
	values := make([]interface{}, 0, tree.count)
	inOrder(tree.root, func(p *Node) {
		values = append(values, p.value)
	})
	return values
}

// internal: left, self, right
func inOrder(p *Node, visit func(*Node)) {
	if nil == p {
		return
	}
	inOrder(p.left, visit)
	visit(p)
	inOrder(p.right, visit)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes and sub-tree sizes
// to allow order-statistics access
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique int32 values, the value part is opaque.  Every node
// caches its height and the size of its sub-tree, so the node at any
// rank can be found (Select) and the rank of any node computed (Rank)
// in O(log n).  The tree also caches its lowest and highest nodes.
//
// Insert and Delete return the number of rotations needed to restore
// balance.  Delete does not copy data between nodes, the in-order
// successor is relinked instead, so a node obtained before a delete
// keeps its key and value.
//
// ListInsert and ListDelete splice nodes in by rank instead of by key;
// these are the basis of the treelist package.  Keys supplied to them
// are not checked against the ordering, so a tree built this way
// should only be accessed by rank.
package avl

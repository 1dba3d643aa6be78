// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treelist - a positional list stored in a balanced tree
//
// Positions count from zero and map onto tree ranks by adding one.
// Retrieval, insertion and deletion at any position are O(log n).
// The list does no balancing of its own, all of that is delegated to
// the underlying sequence, normally an *avl.Tree.
//
// A List is not safe for concurrent use.
package treelist

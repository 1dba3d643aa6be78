// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-workload - drive an AVL tree through a configured random
// workload
//
// Keyed inserts and deletes run first on one tree, then positional
// inserts and deletes run on a list backed by a second tree.  Every
// operation can optionally be followed by a full consistency check.
// Progress is logged at a fixed interval and a JSON summary is
// printed at the end.
//
// The configuration is a Lua file, see avl-workload.conf.sample
package main

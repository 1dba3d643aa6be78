// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - exercise an order statistics tree from the command line
//
// Scripts contain one operation per line, blank lines and anything
// after a "#" are ignored:
//
//   insert KEY VALUE      list-insert POSITION KEY VALUE
//   delete KEY            list-delete POSITION
//   search KEY            retrieve POSITION
//   select RANK           items
//   rank KEY
//   min | max | count | height | rotations
//   keys | values | print | check
//
// Keyed operations and positional operations work on two separate
// trees.  A failing operation is reported and the script continues.
package main

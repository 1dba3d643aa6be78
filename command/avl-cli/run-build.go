// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ranktree/avl"
)

type buildResult struct {
	Keys           []int32 `json:"keys"`
	Count          int     `json:"count"`
	Height         int     `json:"height"`
	LeftRotations  uint64  `json:"left_rotations"`
	RightRotations uint64  `json:"right_rotations"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree := avl.New()
	for _, s := range c.Args() {
		key, err := parseKey(s)
		if nil != err {
			return fmt.Errorf("key: %q  error: %s", s, err)
		}
		n, err := tree.Insert(key, s)
		if nil != err {
			fmt.Fprintf(m.e, "key: %d  error: %s\n", key, err)
			continue
		}
		if m.verbose {
			fmt.Fprintf(m.e, "key: %d  rotations: %d\n", key, n)
		}
	}

	if m.json {
		left, right := tree.Rotations()
		return printJson(m.w, buildResult{
			Keys:           tree.Keys(),
			Count:          tree.Count(),
			Height:         tree.Height(),
			LeftRotations:  left,
			RightRotations: right,
		})
	}

	tree.Fprint(m.w, m.verbose)
	return nil
}

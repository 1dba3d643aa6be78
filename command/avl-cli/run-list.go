// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ranktree/treelist"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	l := treelist.New()
	for i, value := range c.Args() {
		if err := l.Append(int32(i), value); nil != err {
			return err
		}
	}

	if m.json {
		return printJson(m.w, l.Items())
	}

	for position, item := range l.Items() {
		fmt.Fprintf(m.w, "%d: %d %v\n", position, item.Key, item.Value)
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("script")
	if "" == fileName {
		return ErrRequiredScript
	}

	var r io.Reader
	if "-" == fileName {
		r = os.Stdin
	} else {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		r = f
	}

	if m.verbose {
		fmt.Fprintf(m.e, "script: %q\n", fileName)
	}

	s := newSession()
	failures, err := runScript(s, r, m.w, m.json)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "failed operations: %d\n", failures)
	}
	return nil
}

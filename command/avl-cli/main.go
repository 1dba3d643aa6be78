// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	json    bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "exercise an order statistics tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " output results as JSON",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute a script of tree operations",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "script, s",
					Value: "",
					Usage: "*script `FILE` to execute, - for stdin",
				},
			},
			Action: runRun,
		},
		{
			Name:      "build",
			Usage:     "insert keys into an empty tree and display it",
			ArgsUsage: "KEY...",
			Action:    runBuild,
		},
		{
			Name:      "list",
			Usage:     "append values to an empty positional list and display it",
			ArgsUsage: "VALUE...",
			Action:    runList,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				verbose: c.GlobalBool("verbose"),
				json:    c.GlobalBool("json"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}

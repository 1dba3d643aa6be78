// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that cannot access the configuration file
// returns the command and true if nothing more needs to be done
func processSetupCommand(program string, arguments []string) (string, bool) {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return "run", false // continue processing

	case "verify-config", "check":
		return "verify-config", false // needs configuration

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--define=NAME=VALUE...] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")
		fmt.Printf("  verify-config              (check)  - read the configuration and display the result\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return command, true
}

// commands that only need the configuration
// returns true if nothing more needs to be done
func processConfigCommand(command string, masterConfiguration *Configuration) bool {
	switch command {
	case "verify-config":
		printJson("configuration", masterConfiguration)
		return true
	default:
		return false
	}
}

// convert NAME=VALUE items into Lua globals
func parseDefines(defines []string) (map[string]string, error) {
	globals := make(map[string]string, len(defines))
	for _, d := range defines {
		s := strings.SplitN(d, "=", 2)
		name := strings.TrimSpace(s[0])
		if 2 != len(s) || "" == name {
			return nil, fmt.Errorf("define: %q is not NAME=VALUE", d)
		}
		globals[name] = s[1]
	}
	return globals, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"time"
)

// the shutdown and completed channels for a background process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a set of running processes
type T struct {
	s []shutdown
}

// Process - a background process
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		s: make([]shutdown, len(processes)),
	}

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.s[i].shutdown = shutdown
		register.s[i].finished = finished
		go func(p Process) {
			p.Run(args, shutdown)
			close(finished)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for all of
// them to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, s := range t.s {
		close(s.shutdown)
	}

	// wait for finished
	for _, s := range t.s {
		<-s.finished
	}
}

// Ticker - a process that calls Tick at a fixed interval until
// shutdown, with one final call on the way out
type Ticker struct {
	Interval time.Duration
	Tick     func(args interface{})
}

// Run - implements Process
func (tk *Ticker) Run(args interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(tk.Interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			tk.Tick(args)
		}
	}
	tk.Tick(args)
}

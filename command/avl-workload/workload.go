// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ranktree/avl"
	"github.com/bitmark-inc/ranktree/background"
	"github.com/bitmark-inc/ranktree/counter"
	"github.com/bitmark-inc/ranktree/fault"
	"github.com/bitmark-inc/ranktree/ratelimit"
	"github.com/bitmark-inc/ranktree/treelist"
)

// counters shared with the reporter
type statistics struct {
	inserts     counter.Counter
	duplicates  counter.Counter
	deletes     counter.Counter
	missing     counter.Counter
	listInserts counter.Counter
	listDeletes counter.Counter
	rotations   counter.Counter
	checks      counter.Counter
}

type treeSummary struct {
	Count          int         `json:"count"`
	Height         int         `json:"height"`
	LeftRotations  uint64      `json:"left_rotations"`
	RightRotations uint64      `json:"right_rotations"`
	Minimum        interface{} `json:"minimum,omitempty"`
	Maximum        interface{} `json:"maximum,omitempty"`
}

type summary struct {
	Seed        int64       `json:"seed"`
	Elapsed     string      `json:"elapsed"`
	Interrupted bool        `json:"interrupted"`
	Inserts     uint64      `json:"inserts"`
	Duplicates  uint64      `json:"duplicates"`
	Deletes     uint64      `json:"deletes"`
	Missing     uint64      `json:"missing"`
	ListInserts uint64      `json:"list_inserts"`
	ListDeletes uint64      `json:"list_deletes"`
	Rotations   uint64      `json:"rotations"`
	Checks      uint64      `json:"checks"`
	Tree        treeSummary `json:"tree"`
	List        treeSummary `json:"list"`
}

type workload struct {
	config   WorkloadType
	log      *logger.L
	limiter  *rate.Limiter
	random   *rand.Rand
	tree     *avl.Tree
	listTree *avl.Tree
	list     *treelist.List
	keys     []int32 // candidates for deletion
	stats    statistics
}

type phase struct {
	name      string
	count     int
	operation func() error
}

func newWorkload(config WorkloadType, log *logger.L) *workload {
	listTree := avl.New()
	return &workload{
		config:   config,
		log:      log,
		limiter:  ratelimit.New(config.OperationsPerSecond, config.Burst),
		random:   rand.New(rand.NewSource(config.Seed)),
		tree:     avl.New(),
		listTree: listTree,
		list:     treelist.NewFromSequence(listTree),
		keys:     make([]int32, 0, config.Inserts),
	}
}

// run all phases in order, stopping early if stop is closed
func (w *workload) run(stop <-chan struct{}) (*summary, error) {

	start := time.Now()

	reporter := &background.Ticker{
		Interval: time.Duration(w.config.ReportInterval) * time.Second,
		Tick:     w.report,
	}
	processes := background.Start(background.Processes{reporter}, nil)
	defer processes.Stop()

	phases := []phase{
		{name: "insert", count: w.config.Inserts, operation: w.insertOne},
		{name: "delete", count: w.config.Deletes, operation: w.deleteOne},
		{name: "list-insert", count: w.config.ListInserts, operation: w.listInsertOne},
		{name: "list-delete", count: w.config.ListDeletes, operation: w.listDeleteOne},
	}

	interrupted := false

run_phases:
	for _, p := range phases {
		w.log.Infof("phase: %s  operations: %d", p.name, p.count)
		for i := 0; i < p.count; i += 1 {
			select {
			case <-stop:
				w.log.Warnf("phase: %s  interrupted after: %d operations", p.name, i)
				interrupted = true
				break run_phases
			default:
			}
			if err := ratelimit.Limit(w.limiter); nil != err {
				return nil, err
			}
			if err := p.operation(); nil != err {
				w.log.Errorf("phase: %s  operation: %d  error: %s", p.name, i, err)
				return nil, err
			}
		}
	}

	s := &summary{
		Seed:        w.config.Seed,
		Elapsed:     time.Since(start).String(),
		Interrupted: interrupted,
		Inserts:     w.stats.inserts.Uint64(),
		Duplicates:  w.stats.duplicates.Uint64(),
		Deletes:     w.stats.deletes.Uint64(),
		Missing:     w.stats.missing.Uint64(),
		ListInserts: w.stats.listInserts.Uint64(),
		ListDeletes: w.stats.listDeletes.Uint64(),
		Rotations:   w.stats.rotations.Uint64(),
		Checks:      w.stats.checks.Uint64(),
		Tree:        summariseTree(w.tree),
		List:        summariseTree(w.listTree),
	}
	return s, nil
}

func summariseTree(tree *avl.Tree) treeSummary {
	left, right := tree.Rotations()
	s := treeSummary{
		Count:          tree.Count(),
		Height:         tree.Height(),
		LeftRotations:  left,
		RightRotations: right,
	}
	if p := tree.First(); nil != p {
		s.Minimum = p.Key()
	}
	if p := tree.Last(); nil != p {
		s.Maximum = p.Key()
	}
	return s
}

// called from the reporter goroutine so only counters may be read
func (w *workload) report(args interface{}) {
	w.log.Infof("inserts: %d  duplicates: %d  deletes: %d  missing: %d  list inserts: %d  list deletes: %d  rotations: %d  checks: %d",
		w.stats.inserts.Uint64(),
		w.stats.duplicates.Uint64(),
		w.stats.deletes.Uint64(),
		w.stats.missing.Uint64(),
		w.stats.listInserts.Uint64(),
		w.stats.listDeletes.Uint64(),
		w.stats.rotations.Uint64(),
		w.stats.checks.Uint64(),
	)
}

func (w *workload) randomKey() int32 {
	return int32(w.random.Intn(w.config.KeyRange))
}

func (w *workload) insertOne() error {
	key := w.randomKey()
	n, err := w.tree.Insert(key, w.stats.inserts.Uint64())
	switch {
	case fault.ErrDuplicateKey == err:
		w.stats.duplicates.Increment()
		return nil
	case nil != err:
		return err
	}
	w.stats.inserts.Increment()
	w.stats.rotations.Add(uint64(n))
	w.keys = append(w.keys, key)
	return w.verify(w.tree.Check)
}

// half of the deletes target a previously inserted key
func (w *workload) deleteOne() error {
	key := w.randomKey()
	if len(w.keys) > 0 && 0 == w.random.Intn(2) {
		i := w.random.Intn(len(w.keys))
		key = w.keys[i]
		w.keys[i] = w.keys[len(w.keys)-1]
		w.keys = w.keys[:len(w.keys)-1]
	}
	n, err := w.tree.Delete(key)
	switch {
	case fault.ErrKeyNotFound == err:
		w.stats.missing.Increment()
		return nil
	case nil != err:
		return err
	}
	w.stats.deletes.Increment()
	w.stats.rotations.Add(uint64(n))
	return w.verify(w.tree.Check)
}

// positional keys carry no order, only structure can be checked
func (w *workload) listInsertOne() error {
	position := w.random.Intn(w.list.Len() + 1)
	if err := w.list.InsertAt(position, w.randomKey(), position); nil != err {
		return err
	}
	w.stats.listInserts.Increment()
	return w.verify(w.listTree.CheckStructure)
}

func (w *workload) listDeleteOne() error {
	if w.list.IsEmpty() {
		w.stats.missing.Increment()
		return nil
	}
	position := w.random.Intn(w.list.Len())
	if err := w.list.DeleteAt(position); nil != err {
		return err
	}
	w.stats.listDeletes.Increment()
	return w.verify(w.listTree.CheckStructure)
}

func (w *workload) verify(check func() error) error {
	if !w.config.Verify {
		return nil
	}
	w.stats.checks.Increment()
	if err := check(); nil != err {
		w.log.Criticalf("consistency check failed: %s", err)
		return err
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ranktree/fault"
)

const testScript = `# keyed operations
insert 10 a

insert 20 b
insert 30 c   # rotates
search 20
select 1
rank 30
delete 99
min
max
count
keys
check
list-insert 0 5 a
list-insert 1 6 b
list-insert 0 4 c
retrieve 0
retrieve 1
retrieve 2
bogus
`

func TestRunScript(t *testing.T) {
	w := &bytes.Buffer{}
	failures, err := runScript(newSession(), strings.NewReader(testScript), w, false)
	require.Nil(t, err, "run")

	expected := []string{
		"2: insert 10 a → rotations: 0",
		"4: insert 20 b → rotations: 0",
		"5: insert 30 c → rotations: 1",
		"6: search 20 → key: 20  value: b",
		"7: select 1 → rank: 1  key: 10  value: a",
		"8: rank 30 → rank: 3  key: 30  value: c",
		"9: delete 99 → error: key not found",
		"10: min → key: 10  value: a",
		"11: max → key: 30  value: c",
		"12: count → 3",
		"13: keys → [10 20 30]",
		"14: check → ok",
		"15: list-insert 0 5 a → 1",
		"16: list-insert 1 6 b → 2",
		"17: list-insert 0 4 c → 3",
		"18: retrieve 0 → key: 4  value: c",
		"19: retrieve 1 → key: 5  value: a",
		"20: retrieve 2 → key: 6  value: b",
		"21: bogus → error: unknown operation",
	}
	assert.Equal(t, strings.Join(expected, "\n")+"\n", w.String(), "output")
	assert.Equal(t, 2, failures, "failures")
}

func TestRunScriptJson(t *testing.T) {
	w := &bytes.Buffer{}
	failures, err := runScript(newSession(), strings.NewReader("insert 1 x y\ndelete 2\n"), w, true)
	require.Nil(t, err, "run")

	expected := `{"line":1,"operation":"insert 1 x y","result":{"rotations":0}}` + "\n" +
		`{"line":2,"operation":"delete 2","error":"key not found"}` + "\n"
	assert.Equal(t, expected, w.String(), "output")
	assert.Equal(t, 1, failures, "failures")
}

func TestExecuteErrors(t *testing.T) {
	s := newSession()

	tests := []struct {
		operation string
		arguments []string
		err       error
	}{
		{"insert", []string{"1"}, ErrInvalidArgumentCount},
		{"insert", []string{"abc", "x"}, ErrInvalidNumber},
		{"insert", []string{"4294967296", "x"}, ErrInvalidNumber},
		{"delete", []string{}, ErrInvalidArgumentCount},
		{"search", []string{"1"}, fault.ErrKeyNotFound},
		{"rank", []string{"1"}, fault.ErrKeyNotFound},
		{"select", []string{"0"}, fault.ErrInvalidRank},
		{"select", []string{"x"}, ErrInvalidNumber},
		{"min", []string{}, ErrEmptyTree},
		{"max", []string{"1"}, ErrInvalidArgumentCount},
		{"count", []string{"1"}, ErrInvalidArgumentCount},
		{"list-insert", []string{"1", "1", "x"}, fault.ErrInvalidPosition},
		{"list-insert", []string{"0", "1"}, ErrInvalidArgumentCount},
		{"list-delete", []string{"0"}, fault.ErrInvalidPosition},
		{"retrieve", []string{"-1"}, fault.ErrInvalidPosition},
		{"frobnicate", []string{}, ErrUnknownOperation},
	}

	for _, test := range tests {
		result, err := s.execute(test.operation, test.arguments)
		assert.Nil(t, result, "%s %v", test.operation, test.arguments)
		assert.Equal(t, test.err, err, "%s %v", test.operation, test.arguments)
	}

	_, err := s.execute("insert", []string{"1", "one"})
	require.Nil(t, err, "insert")
	_, err = s.execute("insert", []string{"1", "again"})
	assert.Equal(t, fault.ErrDuplicateKey, err, "duplicate")
}

func TestQueries(t *testing.T) {
	s := newSession()
	for _, k := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		_, err := s.execute("insert", []string{k, "v" + k})
		require.Nil(t, err, "insert: %s", k)
	}

	result, err := s.execute("height", nil)
	require.Nil(t, err, "height")
	assert.Equal(t, 2, result, "height")

	result, err = s.execute("rotations", nil)
	require.Nil(t, err, "rotations")
	assert.Equal(t, map[string]uint64{"left": 4, "right": 0}, result, "rotations")

	result, err = s.execute("values", nil)
	require.Nil(t, err, "values")
	assert.Equal(t, []interface{}{"v1", "v2", "v3", "v4", "v5", "v6", "v7"}, result, "values")

	result, err = s.execute("print", nil)
	require.Nil(t, err, "print")
	assert.Contains(t, result, "|------+ 4 → v4 ^- h:2 bf:+0 n:7", "print")

	_, err = s.execute("list-insert", []string{"0", "9", "first", "item"})
	require.Nil(t, err, "list insert")
	result, err = s.execute("items", nil)
	require.Nil(t, err, "items")
	assert.Len(t, result, 1, "items")

	result, err = s.execute("list-delete", []string{"0"})
	require.Nil(t, err, "list delete")
	assert.Equal(t, 0, result, "list length")
}

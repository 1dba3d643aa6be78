// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), e.String(), err
}

func TestBuild(t *testing.T) {
	out, _, err := runApp(t, "build", "10", "20", "30")
	require.Nil(t, err, "build")

	expected := "       /------+ 30 ^20\n" +
		"|------+ 20 ^-\n" +
		"       \\------+ 10 ^20\n"
	assert.Equal(t, expected, out, "tree")
}

func TestBuildJson(t *testing.T) {
	out, errors, err := runApp(t, "--json", "build", "3", "1", "2", "2")
	require.Nil(t, err, "build")

	assert.Contains(t, errors, "key: 2  error: duplicate key", "duplicate reported")

	result := buildResult{}
	require.Nil(t, json.Unmarshal([]byte(out), &result), "decode")
	assert.Equal(t, []int32{1, 2, 3}, result.Keys, "keys")
	assert.Equal(t, 3, result.Count, "count")
	assert.Equal(t, 1, result.Height, "height")
	assert.Equal(t, uint64(2), result.LeftRotations+result.RightRotations, "rotations")
}

func TestBuildInvalidKey(t *testing.T) {
	_, _, err := runApp(t, "build", "1", "x")
	assert.NotNil(t, err, "invalid key")
}

func TestList(t *testing.T) {
	out, _, err := runApp(t, "list", "a", "b", "c")
	require.Nil(t, err, "list")
	assert.Equal(t, "0: 0 a\n1: 1 b\n2: 2 c\n", out, "items")
}

func TestRunCommand(t *testing.T) {
	_, _, err := runApp(t, "run")
	assert.Equal(t, ErrRequiredScript, err, "missing script")

	f, err := ioutil.TempFile("", "avl-cli-")
	require.Nil(t, err, "temp file")
	defer os.Remove(f.Name())

	_, err = f.WriteString("insert 2 two\ninsert 1 one\nkeys\n")
	require.Nil(t, err, "write")
	f.Close()

	out, errors, err := runApp(t, "--verbose", "run", "--script", f.Name())
	require.Nil(t, err, "run")
	assert.Equal(t, "1: insert 2 two → rotations: 0\n2: insert 1 one → rotations: 0\n3: keys → [1 2]\n", out, "output")
	assert.Contains(t, errors, "failed operations: 0", "verbose summary")

	_, _, err = runApp(t, "run", "--script", "/nonexistent/script")
	assert.NotNil(t, err, "missing file")
}

func TestVersion(t *testing.T) {
	out, _, err := runApp(t, "version")
	require.Nil(t, err, "version")
	assert.Equal(t, version+"\n", out, "version")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ranktree/avl"
	"github.com/bitmark-inc/ranktree/fault"
	"github.com/bitmark-inc/ranktree/treelist"
)

// the two structures a script works on
type session struct {
	tree     *avl.Tree
	listTree *avl.Tree
	list     *treelist.List
}

type rotationsResult struct {
	Rotations int `json:"rotations"`
}

func (r rotationsResult) String() string {
	return fmt.Sprintf("rotations: %d", r.Rotations)
}

type itemResult struct {
	Key   int32       `json:"key"`
	Value interface{} `json:"value"`
	Rank  int         `json:"rank,omitempty"`
}

func (r itemResult) String() string {
	if 0 == r.Rank {
		return fmt.Sprintf("key: %d  value: %v", r.Key, r.Value)
	}
	return fmt.Sprintf("rank: %d  key: %d  value: %v", r.Rank, r.Key, r.Value)
}

// one line of JSON output
type lineResult struct {
	Line      int         `json:"line"`
	Operation string      `json:"operation"`
	Result    interface{} `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
}

func newSession() *session {
	listTree := avl.New()
	return &session{
		tree:     avl.New(),
		listTree: listTree,
		list:     treelist.NewFromSequence(listTree),
	}
}

// runScript - execute every line of a script
// returns the number of failed operations
func runScript(s *session, r io.Reader, w io.Writer, asJson bool) (int, error) {

	failures := 0
	lineNumber := 0
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineNumber += 1

		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}

		result, err := s.execute(fields[0], fields[1:])
		if nil != err {
			failures += 1
		}

		operation := strings.Join(fields, " ")
		if asJson {
			lr := lineResult{
				Line:      lineNumber,
				Operation: operation,
				Result:    result,
			}
			if nil != err {
				lr.Error = err.Error()
			}
			b, err := json.Marshal(lr)
			if nil != err {
				return failures, err
			}
			fmt.Fprintf(w, "%s\n", b)
		} else if nil != err {
			fmt.Fprintf(w, "%d: %s → error: %s\n", lineNumber, operation, err)
		} else {
			fmt.Fprintf(w, "%d: %s → %v\n", lineNumber, operation, result)
		}
	}
	return failures, scanner.Err()
}

// execute a single operation
func (s *session) execute(operation string, arguments []string) (interface{}, error) {

	switch operation {

	case "insert":
		if len(arguments) < 2 {
			return nil, ErrInvalidArgumentCount
		}
		key, err := parseKey(arguments[0])
		if nil != err {
			return nil, err
		}
		n, err := s.tree.Insert(key, strings.Join(arguments[1:], " "))
		if nil != err {
			return nil, err
		}
		return rotationsResult{Rotations: n}, nil

	case "delete":
		key, err := oneKey(arguments)
		if nil != err {
			return nil, err
		}
		n, err := s.tree.Delete(key)
		if nil != err {
			return nil, err
		}
		return rotationsResult{Rotations: n}, nil

	case "search":
		key, err := oneKey(arguments)
		if nil != err {
			return nil, err
		}
		value, err := s.tree.Search(key)
		if nil != err {
			return nil, err
		}
		return itemResult{Key: key, Value: value}, nil

	case "select":
		rank, err := oneNumber(arguments)
		if nil != err {
			return nil, err
		}
		p, err := s.tree.Select(rank)
		if nil != err {
			return nil, err
		}
		return itemResult{Key: p.Key(), Value: p.Value(), Rank: rank}, nil

	case "rank":
		key, err := oneKey(arguments)
		if nil != err {
			return nil, err
		}
		p, rank := s.tree.Locate(key)
		if nil == p {
			return nil, fault.ErrKeyNotFound
		}
		return itemResult{Key: key, Value: p.Value(), Rank: rank}, nil

	case "min", "max":
		if 0 != len(arguments) {
			return nil, ErrInvalidArgumentCount
		}
		p := s.tree.First()
		if "max" == operation {
			p = s.tree.Last()
		}
		if nil == p {
			return nil, ErrEmptyTree
		}
		return itemResult{Key: p.Key(), Value: p.Value()}, nil

	case "count", "height", "rotations", "keys", "values", "print", "check", "items":
		if 0 != len(arguments) {
			return nil, ErrInvalidArgumentCount
		}
		return s.query(operation)

	case "list-insert":
		if len(arguments) < 3 {
			return nil, ErrInvalidArgumentCount
		}
		position, err := parseNumber(arguments[0])
		if nil != err {
			return nil, err
		}
		key, err := parseKey(arguments[1])
		if nil != err {
			return nil, err
		}
		err = s.list.InsertAt(position, key, strings.Join(arguments[2:], " "))
		if nil != err {
			return nil, err
		}
		return s.list.Len(), nil

	case "list-delete":
		position, err := oneNumber(arguments)
		if nil != err {
			return nil, err
		}
		if err := s.list.DeleteAt(position); nil != err {
			return nil, err
		}
		return s.list.Len(), nil

	case "retrieve":
		position, err := oneNumber(arguments)
		if nil != err {
			return nil, err
		}
		item, err := s.list.Retrieve(position)
		if nil != err {
			return nil, err
		}
		return itemResult{Key: item.Key, Value: item.Value}, nil
	}

	return nil, ErrUnknownOperation
}

// operations without arguments
func (s *session) query(operation string) (interface{}, error) {
	switch operation {
	case "count":
		return s.tree.Count(), nil
	case "height":
		return s.tree.Height(), nil
	case "rotations":
		left, right := s.tree.Rotations()
		return map[string]uint64{"left": left, "right": right}, nil
	case "keys":
		return s.tree.Keys(), nil
	case "values":
		return s.tree.Values(), nil
	case "items":
		return s.list.Items(), nil
	case "check":
		if err := s.tree.Check(); nil != err {
			return nil, err
		}
		if err := s.listTree.CheckStructure(); nil != err {
			return nil, err
		}
		return "ok", nil
	case "print":
		buffer := &bytes.Buffer{}
		s.tree.Fprint(buffer, true)
		return "\n" + strings.TrimRight(buffer.String(), "\n"), nil
	}
	return nil, ErrUnknownOperation
}

func oneKey(arguments []string) (int32, error) {
	if 1 != len(arguments) {
		return 0, ErrInvalidArgumentCount
	}
	return parseKey(arguments[0])
}

func oneNumber(arguments []string) (int, error) {
	if 1 != len(arguments) {
		return 0, ErrInvalidArgumentCount
	}
	return parseNumber(arguments[0])
}

func parseKey(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if nil != err {
		return 0, ErrInvalidNumber
	}
	return int32(n), nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

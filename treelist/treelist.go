// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treelist

import (
	"github.com/bitmark-inc/ranktree/avl"
	"github.com/bitmark-inc/ranktree/fault"
)

//go:generate mockgen -source=treelist.go -destination=mocks/sequence.go -package=mocks

// Sequence - the rank based operations a list needs
type Sequence interface {
	Count() int
	Select(rank int) (*avl.Node, error)
	ListInsert(rank int, key int32, value interface{}) (int, error)
	ListDelete(rank int) (int, error)
	Keys() []int32
	Values() []interface{}
}

// Item - one element of the list
type Item struct {
	Key   int32       `json:"key"`
	Value interface{} `json:"value"`
}

// List - position indexed list
type List struct {
	seq Sequence
}

// New - create an empty list backed by an AVL tree
func New() *List {
	return &List{
		seq: avl.New(),
	}
}

// NewFromSequence - create a list over an existing sequence
func NewFromSequence(seq Sequence) *List {
	return &List{
		seq: seq,
	}
}

// Len - number of items
func (l *List) Len() int {
	return l.seq.Count()
}

// IsEmpty - true if the list has no items
func (l *List) IsEmpty() bool {
	return 0 == l.seq.Count()
}

// Retrieve - the item at a position in [0, Len()-1]
func (l *List) Retrieve(position int) (Item, error) {
	if position < 0 || position >= l.seq.Count() {
		return Item{}, fault.ErrInvalidPosition
	}
	node, err := l.seq.Select(position + 1)
	if nil != err {
		return Item{}, err
	}
	return Item{
		Key:   node.Key(),
		Value: node.Value(),
	}, nil
}

// InsertAt - insert a new item so that it occupies a position in
// [0, Len()], items at or after that position move up by one
func (l *List) InsertAt(position int, key int32, value interface{}) error {
	if position < 0 || position > l.seq.Count() {
		return fault.ErrInvalidPosition
	}
	_, err := l.seq.ListInsert(position+1, key, value)
	return err
}

// Append - insert after the last item
func (l *List) Append(key int32, value interface{}) error {
	return l.InsertAt(l.seq.Count(), key, value)
}

// DeleteAt - remove the item at a position in [0, Len()-1]
func (l *List) DeleteAt(position int) error {
	if position < 0 || position >= l.seq.Count() {
		return fault.ErrInvalidPosition
	}
	_, err := l.seq.ListDelete(position + 1)
	return err
}

// Items - all items in position order
func (l *List) Items() []Item {
	keys := l.seq.Keys()
	values := l.seq.Values()
	items := make([]Item, len(keys))
	for i, key := range keys {
		items[i] = Item{
			Key:   key,
			Value: values[i],
		}
	}
	return items
}

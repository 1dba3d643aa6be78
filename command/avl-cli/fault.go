// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/ranktree/fault"
)

var (
	ErrEmptyTree            = fault.NotFoundError("tree is empty")
	ErrInvalidArgumentCount = fault.InvalidError("invalid argument count")
	ErrInvalidNumber        = fault.InvalidError("invalid number")
	ErrRequiredScript       = fault.InvalidError("script file is required")
	ErrUnknownOperation     = fault.InvalidError("unknown operation")
)

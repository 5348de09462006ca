// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package fuzz defines the data types shared between the invariant fuzzer's
// search process and the failure replay engine.
package fuzz

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Call is one generated call of an invariant run. Immutable once produced.
type Call struct {
	Sender common.Address `json:"sender"`
	Target common.Address `json:"target"`
	Input  hexutil.Bytes  `json:"input"`
}

// Clone returns a copy whose input does not alias the original.
func (c Call) Clone() Call {
	c.Input = slices.Clone(c.Input)
	return c
}

// CallSequence is an ordered list of calls. Order encodes state dependencies
// and must never be changed by the replay engine.
type CallSequence []Call

// Clone returns a deep copy of the sequence.
func (s CallSequence) Clone() CallSequence {
	if s == nil {
		return nil
	}
	res := make(CallSequence, len(s))
	for i, call := range s {
		res[i] = call.Clone()
	}
	return res
}

// Equal reports whether both sequences contain identical calls in the same
// order.
func (s CallSequence) Equal(other CallSequence) bool {
	return slices.EqualFunc(s, other, func(a, b Call) bool {
		return a.Sender == b.Sender && a.Target == b.Target && slices.Equal(a.Input, b.Input)
	})
}

// InnerSequence records the sub-calls produced by the nested call generator
// during execution of an outer call. A nil entry marks a slot for which the
// generator produced no call.
type InnerSequence []*Call

// Clone returns a deep copy of the inner sequence, preserving nil slots.
func (s InnerSequence) Clone() InnerSequence {
	if s == nil {
		return nil
	}
	res := make(InnerSequence, len(s))
	for i, call := range s {
		if call == nil {
			continue
		}
		cp := call.Clone()
		res[i] = &cp
	}
	return res
}

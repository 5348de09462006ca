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

// Package trace holds the call trace trees recorded by the execution engine
// and the contract identification built on top of them.
package trace

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// CallTrace is one frame of a recorded call tree. A frame that deployed new
// code carries the created address and the hash of the deployed code so the
// contract can be identified against known artifacts.
type CallTrace struct {
	Caller  common.Address
	Target  common.Address
	Input   []byte
	Output  []byte
	Value   *uint256.Int
	Success bool

	CreatedContract *common.Address
	CreatedCodeHash common.Hash

	Children []*CallTrace
}

// Walk visits the trace tree in preorder. The visitor returns false to stop
// descending into the current frame's children.
func (t *CallTrace) Walk(visit func(*CallTrace) bool) {
	if t == nil {
		return
	}
	if !visit(t) {
		return
	}
	for _, child := range t.Children {
		child.Walk(visit)
	}
}

// TraceKind tags a recorded trace with the phase that produced it.
type TraceKind int

const (
	TraceKindDeployment TraceKind = iota
	TraceKindSetup
	TraceKindExecution
)

func (k TraceKind) String() string {
	switch k {
	case TraceKindDeployment:
		return "deployment"
	case TraceKindSetup:
		return "setup"
	case TraceKindExecution:
		return "execution"
	default:
		return "unknown"
	}
}

// TraceWithKind pairs a trace tree with its phase tag.
type TraceWithKind struct {
	Kind  TraceKind
	Trace *CallTrace
}

// Traces accumulates tagged traces over a replay, in execution order.
type Traces []TraceWithKind

// Push appends a trace under the given kind. Nil traces are ignored so
// callers need not guard engines that report no trace for a call.
func (ts *Traces) Push(kind TraceKind, t *CallTrace) {
	if t == nil {
		return
	}
	*ts = append(*ts, TraceWithKind{Kind: kind, Trace: t})
}

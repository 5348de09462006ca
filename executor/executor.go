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

// Package executor defines the boundary to the call-execution engine the
// replay engine drives. Concrete engines live outside this repository; tests
// use the generated mock.
package executor

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/0xsoniclabs/aida-fuzz/coverage"
	"github.com/0xsoniclabs/aida-fuzz/trace"
)

//go:generate mockgen -source executor.go -destination executor_mock.go -package executor

// DefaultCaller is the fixed system-level identity used for invariant check
// calls. It is distinct from any sequence sender by construction.
var DefaultCaller = common.HexToAddress("0x1804c8AB1F12E6bbf3894d4083f33e07309d1f38")

// Context carries auxiliary metadata recorded while executing a single call,
// forwarded untouched to downstream contract discovery. The replay engine
// only accumulates it.
type Context struct {
	Kind string
	Data []byte
}

// ExecutionResult is the evidence produced by executing one call.
type ExecutionResult struct {
	Logs     []*types.Log
	Trace    *trace.CallTrace
	Contexts []Context
	Coverage coverage.HitMaps
}

// ExecutionError reports that the engine could not run a call at all. It is
// always fatal to the replay it occurs in.
type ExecutionError struct {
	Sender common.Address
	Target common.Address
	Reason error
}

func NewExecutionError(sender, target common.Address, reason error) *ExecutionError {
	return &ExecutionError{Sender: sender, Target: target, Reason: reason}
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("cannot execute call from %s to %s: %v", e.Sender, e.Target, e.Reason)
}

func (e *ExecutionError) Unwrap() error {
	return e.Reason
}

// ExecutionEngine executes single calls against program state. One engine
// instance backs exactly one replay; independent replays hold independent
// engines, so the replay engine never synchronizes across instances.
type ExecutionEngine interface {
	// EnableTracing turns on trace collection for all subsequent calls.
	EnableTracing()

	// CallCommitting executes a call whose state effects persist into
	// subsequent calls on the same engine.
	CallCommitting(sender, target common.Address, input []byte, value *uint256.Int) (*ExecutionResult, error)

	// CallReadOnly executes a call without committing its state effects.
	CallReadOnly(caller, target common.Address, input []byte, value *uint256.Int) (*ExecutionResult, error)

	// CallGenerator exposes the engine's nested call generator state, or
	// nil when the engine performs no nested generation.
	CallGenerator() *CallGenerator
}

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

package replay

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/0xsoniclabs/aida-fuzz/coverage"
	"github.com/0xsoniclabs/aida-fuzz/executor"
	"github.com/0xsoniclabs/aida-fuzz/fuzz"
	"github.com/0xsoniclabs/aida-fuzz/trace"
)

// Evidence accumulates the diagnostic output of one replay. It starts empty
// and is handed to the reporting layer when the replay completes.
type Evidence struct {
	Logs     []*types.Log
	Traces   trace.Traces
	Contexts []executor.Context
	Coverage coverage.HitMaps
}

func (e *Evidence) absorb(res *executor.ExecutionResult) {
	e.Logs = append(e.Logs, res.Logs...)
	e.Traces.Push(trace.TraceKindExecution, res.Trace)
	e.Contexts = append(e.Contexts, res.Contexts...)
}

// Run replays a call sequence for collecting logs, traces and coverage.
// Returns the counterexample to be used when the call sequence is a failed
// scenario, or nil for an empty sequence.
//
// Calls execute strictly in sequence order; after each committed call the
// invariant is checked via a read-only call from the configured system
// caller. The invariant check's logs, traces and contexts are folded into
// the evidence, but it contributes neither coverage nor a counterexample
// entry. Any engine-level failure aborts the replay and is propagated as is.
func (c *Coordinator) Run(
	ctx context.Context,
	invariant *fuzz.InvariantContract,
	engine executor.ExecutionEngine,
	knownContracts trace.ContractsByArtifact,
	idedContracts trace.ContractsByAddress,
	evidence *Evidence,
	inputs fuzz.CallSequence,
) (*fuzz.CounterExample, error) {
	// We want traces for a failed case.
	engine.EnableTracing()

	var sequence []fuzz.BaseCounterExample

	for _, call := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := engine.CallCommitting(call.Sender, call.Target, call.Input, uint256.NewInt(0))
		if err != nil {
			return nil, err
		}
		evidence.absorb(res)
		coverage.MergeInto(&evidence.Coverage, res.Coverage)

		// Identify newly created contracts, if they exist.
		idedContracts.Extend(trace.LoadContracts(
			trace.Traces{{Kind: trace.TraceKindExecution, Trace: res.Trace}},
			knownContracts,
		))

		sequence = append(sequence, fuzz.NewBaseCounterExample(
			call.Sender, call.Target, call.Input, idedContracts,
		))

		// Replay the invariant check to collect its logs and traces.
		checkRes, err := engine.CallReadOnly(c.caller(), invariant.Target, invariant.CallData(), uint256.NewInt(0))
		if err != nil {
			return nil, err
		}
		evidence.absorb(checkRes)
	}

	if len(sequence) == 0 {
		return nil, nil
	}
	return fuzz.NewSequenceCounterExample(sequence), nil
}

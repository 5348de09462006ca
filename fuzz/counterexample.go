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

package fuzz

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/0xsoniclabs/aida-fuzz/trace"
)

// BaseCounterExample describes a single call of a failing sequence in enough
// detail for a human to re-issue it manually. Arguments are decoded when the
// target's ABI is known at the time the descriptor is built; otherwise the
// raw calldata stands on its own.
type BaseCounterExample struct {
	Sender       common.Address `json:"sender"`
	Target       common.Address `json:"target"`
	Calldata     hexutil.Bytes  `json:"calldata"`
	ContractName string         `json:"contract_name,omitempty"`
	Signature    string         `json:"signature,omitempty"`
	Args         []string       `json:"args,omitempty"`
}

// NewBaseCounterExample builds the descriptor for one call, resolving the
// target against the contracts identified so far. Decoding is best-effort: an
// unknown target or selector leaves signature and args empty.
func NewBaseCounterExample(
	sender common.Address,
	target common.Address,
	calldata []byte,
	idedContracts trace.ContractsByAddress,
) BaseCounterExample {
	example := BaseCounterExample{
		Sender:   sender,
		Target:   target,
		Calldata: calldata,
	}

	identity, found := idedContracts.Resolve(target)
	if !found {
		return example
	}
	example.ContractName = identity.Name

	if identity.ABI == nil || len(calldata) < 4 {
		return example
	}
	method, err := identity.ABI.MethodById(calldata[:4])
	if err != nil {
		return example
	}
	example.Signature = method.Sig

	values, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		// Selector matched but the payload does not decode; keep the
		// signature and fall back to raw calldata for the arguments.
		return example
	}
	args := make([]string, len(values))
	for i, value := range values {
		args[i] = fmt.Sprintf("%v", value)
	}
	example.Args = args
	return example
}

func (e BaseCounterExample) String() string {
	if e.Signature == "" {
		return fmt.Sprintf("sender=%s addr=%s calldata=%s", e.Sender, e.Target, e.Calldata)
	}
	return fmt.Sprintf("sender=%s addr=%s call=%s args=[%s]", e.Sender, e.Target, e.Signature, joinArgs(e.Args))
}

// CounterExample is the structured record of the calls reproducing an
// invariant failure, in replay order.
type CounterExample struct {
	Sequence []BaseCounterExample `json:"sequence"`
}

// NewSequenceCounterExample wraps the descriptors of a non-empty sequence.
func NewSequenceCounterExample(sequence []BaseCounterExample) *CounterExample {
	return &CounterExample{Sequence: sequence}
}

// Len returns the number of calls in the counterexample.
func (c *CounterExample) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Sequence)
}

// String renders the counterexample as a human-readable table.
func (c *CounterExample) String() string {
	if c == nil || len(c.Sequence) == 0 {
		return "empty counterexample"
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Sender", "Target", "Contract", "Call"})
	for i, example := range c.Sequence {
		call := example.Calldata.String()
		if example.Signature != "" {
			call = fmt.Sprintf("%s [%s]", example.Signature, joinArgs(example.Args))
		}
		t.AppendRow(table.Row{i + 1, example.Sender, example.Target, example.ContractName, call})
	}
	return t.Render()
}

func joinArgs(args []string) string {
	res := ""
	for i, arg := range args {
		if i > 0 {
			res += ", "
		}
		res += arg
	}
	return res
}

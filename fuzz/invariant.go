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
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// InvariantContract identifies the contract and the zero-argument function
// checked after every call of a sequence.
type InvariantContract struct {
	Target        common.Address
	InvariantName string
	ABI           *abi.ABI
}

// CallData encodes the invariant check call. The invariant function takes no
// arguments; when no ABI is known the check is issued with empty input.
func (c *InvariantContract) CallData() []byte {
	if c.ABI == nil {
		return nil
	}
	data, err := c.ABI.Pack(c.InvariantName)
	if err != nil {
		return nil
	}
	return data
}

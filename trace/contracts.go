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

package trace

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractArtifact describes a compiled contract known before the run.
type ContractArtifact struct {
	Name             string
	DeployedCodeHash common.Hash
	ABI              *abi.ABI
}

// ContractsByArtifact maps artifact names to their compiled contracts.
type ContractsByArtifact map[string]*ContractArtifact

// FindByCodeHash returns the artifact whose deployed code matches the given
// hash, or nil when the code is unknown.
func (c ContractsByArtifact) FindByCodeHash(hash common.Hash) *ContractArtifact {
	if hash == (common.Hash{}) {
		return nil
	}
	for _, artifact := range c {
		if artifact.DeployedCodeHash == hash {
			return artifact
		}
	}
	return nil
}

// ContractIdentity is the resolved identity of a deployed contract.
type ContractIdentity struct {
	Name string
	ABI  *abi.ABI
}

// ContractsByAddress maps deployed addresses to their resolved identities.
// The registry grows monotonically over a replay as calls deploy new code;
// entries are never removed or overwritten.
type ContractsByAddress map[common.Address]ContractIdentity

// Resolve returns the identity recorded for the address, if any.
func (c ContractsByAddress) Resolve(addr common.Address) (ContractIdentity, bool) {
	id, found := c[addr]
	return id, found
}

// Extend inserts all entries of other that are not yet present.
func (c ContractsByAddress) Extend(other ContractsByAddress) {
	for addr, id := range other {
		if _, found := c[addr]; !found {
			c[addr] = id
		}
	}
}

// LoadContracts scans the given traces for contract creations and resolves
// the created addresses against the known artifacts. Creations whose code is
// not among the known artifacts are left unresolved; that is not an error.
func LoadContracts(traces Traces, known ContractsByArtifact) ContractsByAddress {
	found := make(ContractsByAddress)
	for _, tagged := range traces {
		tagged.Trace.Walk(func(frame *CallTrace) bool {
			if frame.CreatedContract == nil {
				return true
			}
			artifact := known.FindByCodeHash(frame.CreatedCodeHash)
			if artifact == nil {
				return true
			}
			if _, present := found[*frame.CreatedContract]; !present {
				found[*frame.CreatedContract] = ContractIdentity{
					Name: artifact.Name,
					ABI:  artifact.ABI,
				}
			}
			return true
		})
	}
	return found
}

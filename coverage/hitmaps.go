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

// Package coverage accumulates execution-hit counters keyed by code location.
package coverage

import (
	"github.com/ethereum/go-ethereum/common"
)

// HitMap counts how often each program counter of a single contract was hit.
type HitMap map[uint64]uint64

// HitMaps groups hit maps by the address of the executed code. A nil HitMaps
// is the identity element of Merge, so accumulators need no special first-call
// handling.
type HitMaps map[common.Address]HitMap

// Hit records a single hit of the given program counter.
func (m HitMap) Hit(pc uint64) {
	m[pc] += 1
}

// Merge folds other into m, summing hit counts per location. The receiver is
// modified in place; other is left untouched.
func (m HitMaps) Merge(other HitMaps) {
	for addr, hits := range other {
		existing, found := m[addr]
		if !found {
			existing = make(HitMap, len(hits))
			m[addr] = existing
		}
		for pc, count := range hits {
			existing[pc] += count
		}
	}
}

// MergeInto merges src into the accumulator pointed to by dst, initializing
// the accumulator from src on first use. A nil src is a no-op.
func MergeInto(dst *HitMaps, src HitMaps) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(HitMaps, len(src))
	}
	(*dst).Merge(src)
}

// Clone returns a deep copy of the hit maps.
func (m HitMaps) Clone() HitMaps {
	if m == nil {
		return nil
	}
	res := make(HitMaps, len(m))
	for addr, hits := range m {
		cp := make(HitMap, len(hits))
		for pc, count := range hits {
			cp[pc] = count
		}
		res[addr] = cp
	}
	return res
}

// Covers reports whether every location hit in other is also hit in m.
func (m HitMaps) Covers(other HitMaps) bool {
	for addr, hits := range other {
		existing, found := m[addr]
		if !found {
			return false
		}
		for pc := range hits {
			if existing[pc] == 0 {
				return false
			}
		}
	}
	return true
}

// TotalHits sums all hit counters across all contracts.
func (m HitMaps) TotalHits() uint64 {
	var total uint64
	for _, hits := range m {
		for _, count := range hits {
			total += count
		}
	}
	return total
}

// Equal reports whether both hit maps record identical counts.
func (m HitMaps) Equal(other HitMaps) bool {
	if len(m) != len(other) {
		return false
	}
	for addr, hits := range m {
		otherHits, found := other[addr]
		if !found || len(hits) != len(otherHits) {
			return false
		}
		for pc, count := range hits {
			if otherHits[pc] != count {
				return false
			}
		}
	}
	return true
}

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

package coverage

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addrA = common.HexToAddress("0xA1")
	addrB = common.HexToAddress("0xB2")
)

func TestHitMaps_MergeSumsCounts(t *testing.T) {
	a := HitMaps{addrA: {1: 2, 2: 1}}
	b := HitMaps{addrA: {1: 1, 3: 4}, addrB: {7: 1}}

	a.Merge(b)

	assert.Equal(t, uint64(3), a[addrA][1])
	assert.Equal(t, uint64(1), a[addrA][2])
	assert.Equal(t, uint64(4), a[addrA][3])
	assert.Equal(t, uint64(1), a[addrB][7])
}

func TestHitMaps_MergeIsCommutativeOnHitSets(t *testing.T) {
	a := HitMaps{addrA: {1: 1}}
	b := HitMaps{addrB: {2: 2}}

	left := a.Clone()
	left.Merge(b)
	right := b.Clone()
	right.Merge(a)

	assert.True(t, left.Equal(right))
}

func TestHitMaps_MergeIsAssociative(t *testing.T) {
	a := HitMaps{addrA: {1: 1}}
	b := HitMaps{addrA: {2: 1}}
	c := HitMaps{addrB: {3: 5}}

	ab := a.Clone()
	ab.Merge(b)
	ab.Merge(c)

	bc := b.Clone()
	bc.Merge(c)
	acc := a.Clone()
	acc.Merge(bc)

	assert.True(t, ab.Equal(acc))
}

func TestHitMaps_MergeNeverDropsHits(t *testing.T) {
	acc := HitMaps{addrA: {1: 1, 2: 1}}
	update := HitMaps{addrB: {9: 3}}

	before := acc.Clone()
	acc.Merge(update)

	assert.True(t, acc.Covers(before))
	assert.True(t, acc.Covers(update))
}

func TestMergeInto_InitializesNilAccumulator(t *testing.T) {
	var acc HitMaps
	MergeInto(&acc, HitMaps{addrA: {5: 1}})

	require.NotNil(t, acc)
	assert.Equal(t, uint64(1), acc[addrA][5])
}

func TestMergeInto_NilSourceKeepsAccumulatorAbsent(t *testing.T) {
	var acc HitMaps
	MergeInto(&acc, nil)
	assert.Nil(t, acc)
}

func TestMergeInto_DoesNotAliasSource(t *testing.T) {
	src := HitMaps{addrA: {1: 1}}
	var acc HitMaps
	MergeInto(&acc, src)
	acc[addrA][1] = 100

	assert.Equal(t, uint64(1), src[addrA][1])
}

func TestHitMaps_TotalHits(t *testing.T) {
	m := HitMaps{addrA: {1: 2, 2: 3}, addrB: {1: 1}}
	assert.Equal(t, uint64(6), m.TotalHits())
	assert.Equal(t, uint64(0), HitMaps(nil).TotalHits())
}

func TestHitMap_Hit(t *testing.T) {
	m := HitMap{}
	m.Hit(42)
	m.Hit(42)
	assert.Equal(t, uint64(2), m[42])
}

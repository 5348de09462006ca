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

package executor

import (
	"sync"

	"github.com/0xsoniclabs/aida-fuzz/fuzz"
)

// CallGenerator is the shared state of the engine's nested call generator.
// During replay the coordinator pins the previously recorded inner sequence
// here before the first call; the engine then consumes the recorded slots
// instead of sampling fresh randomness.
//
// Discipline: the coordinator writes once before execution starts, the
// engine reads from within deeply nested call machinery afterwards. The
// pin must be complete before any call executes.
type CallGenerator struct {
	mu           sync.RWMutex
	lastSequence fuzz.InnerSequence
	replay       bool
	next         int
}

func NewCallGenerator() *CallGenerator {
	return &CallGenerator{}
}

// PinSequence installs the recorded inner sequence and resets the read
// cursor. The sequence is copied so later mutation of the failed case cannot
// leak into a running replay.
func (g *CallGenerator) PinSequence(sequence fuzz.InnerSequence) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastSequence = sequence.Clone()
	g.next = 0
}

// SetReplay switches the generator between sampling and replay mode.
func (g *CallGenerator) SetReplay(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replay = active
}

// ReplayActive reports whether the generator serves pinned calls.
func (g *CallGenerator) ReplayActive() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.replay
}

// NextPinned returns the next recorded slot of the pinned sequence. The
// second result is false once the sequence is exhausted or replay mode is
// off; a true result with a nil call is a recorded empty slot.
func (g *CallGenerator) NextPinned() (*fuzz.Call, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.replay || g.next >= len(g.lastSequence) {
		return nil, false
	}
	call := g.lastSequence[g.next]
	g.next++
	return call, true
}

// PinnedLen returns the number of slots in the pinned sequence.
func (g *CallGenerator) PinnedLen() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.lastSequence)
}

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

// Package replay re-executes call sequences previously found to violate an
// invariant, producing diagnostic evidence and a counterexample.
package replay

import (
	"github.com/cockroachdb/errors"

	"github.com/0xsoniclabs/aida-fuzz/fuzz"
)

// FailureKind discriminates how the original search process ended.
type FailureKind uint8

const (
	// FailureKindAbort marks a search that aborted before producing a
	// concrete failing sequence. Abort cases cannot be replayed.
	FailureKindAbort FailureKind = iota
	// FailureKindFail marks a search that found a failing call sequence.
	FailureKindFail
)

// ErrUnknownFailureKind is reported when decoding a failed case with a kind
// this engine does not know.
var ErrUnknownFailureKind = errors.New("unknown failure kind")

func (k FailureKind) String() string {
	switch k {
	case FailureKindAbort:
		return "abort"
	case FailureKindFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind for the JSON hand-off from the search process.
func (k FailureKind) MarshalText() ([]byte, error) {
	switch k {
	case FailureKindAbort, FailureKindFail:
		return []byte(k.String()), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFailureKind, "%d", uint8(k))
	}
}

func (k *FailureKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "abort":
		*k = FailureKindAbort
	case "fail":
		*k = FailureKindFail
	default:
		return errors.Wrapf(ErrUnknownFailureKind, "%q", string(text))
	}
	return nil
}

// FailedCase is the record of a failure produced once by the search process
// and consumed exactly once by the replay coordinator. It is read-only for
// the duration of a replay.
type FailedCase struct {
	Kind          FailureKind        `json:"kind"`
	Reason        string             `json:"reason,omitempty"`
	Sequence      fuzz.CallSequence  `json:"sequence,omitempty"`
	ShrinkEnabled bool               `json:"shrink_enabled"`
	InnerSequence fuzz.InnerSequence `json:"inner_sequence,omitempty"`
}

// NewAbortedCase records a search abort. The reason is kept for logging only.
func NewAbortedCase(reason string) *FailedCase {
	return &FailedCase{Kind: FailureKindAbort, Reason: reason}
}

// NewFailedCase records a concrete failing sequence together with the inner
// sequence of nested calls generated during the original run.
func NewFailedCase(reason string, sequence fuzz.CallSequence, inner fuzz.InnerSequence, shrink bool) *FailedCase {
	return &FailedCase{
		Kind:          FailureKindFail,
		Reason:        reason,
		Sequence:      sequence,
		ShrinkEnabled: shrink,
		InnerSequence: inner,
	}
}

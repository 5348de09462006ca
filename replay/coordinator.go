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

	"github.com/ethereum/go-ethereum/common"

	"github.com/0xsoniclabs/aida-fuzz/executor"
	"github.com/0xsoniclabs/aida-fuzz/fuzz"
	"github.com/0xsoniclabs/aida-fuzz/logger"
	"github.com/0xsoniclabs/aida-fuzz/trace"
)

// Shrinker minimizes a failing call sequence. Implementations guarantee the
// returned sequence still reproduces the original failure; the coordinator
// does not re-verify that contract.
type Shrinker interface {
	Shrink(ctx context.Context, failedCase *FailedCase, sequence fuzz.CallSequence, engine executor.ExecutionEngine) (fuzz.CallSequence, error)
}

// Config customizes a replay coordinator.
type Config struct {
	// LogLevel for the coordinator's diagnostics, defaults to INFO.
	LogLevel string
	// InvariantCaller overrides the system identity used for invariant
	// check calls. The zero address selects executor.DefaultCaller.
	InvariantCaller common.Address
}

// Coordinator turns recorded failed cases into evidence and counterexamples.
type Coordinator struct {
	cfg      Config
	log      logger.Logger
	shrinker Shrinker
}

// NewCoordinator creates a coordinator. The shrinker may be nil, in which
// case sequences are replayed unshrunk even when the case asks for it.
func NewCoordinator(cfg Config, shrinker Shrinker) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		log:      logger.NewLogger(cfg.LogLevel, "Replay"),
		shrinker: shrinker,
	}
}

func (c *Coordinator) caller() common.Address {
	if c.cfg.InvariantCaller != (common.Address{}) {
		return c.cfg.InvariantCaller
	}
	return executor.DefaultCaller
}

// ReplayFailure replays the error case, shrinks the failing sequence if
// requested and collects all necessary traces.
//
// Abort-kind cases are not replayable and yield a nil counterexample without
// touching the engine. For fail-kind cases the recorded inner sequence is
// pinned into the engine's call generator before the first call, so nested
// call generation reproduces the original run's choices.
func (c *Coordinator) ReplayFailure(
	ctx context.Context,
	failedCase *FailedCase,
	invariant *fuzz.InvariantContract,
	engine executor.ExecutionEngine,
	knownContracts trace.ContractsByArtifact,
	idedContracts trace.ContractsByAddress,
	evidence *Evidence,
) (*fuzz.CounterExample, error) {
	switch failedCase.Kind {
	case FailureKindAbort:
		// Not supported for replay.
		c.log.Debugf("abort-kind failure is not replayable: %s", failedCase.Reason)
		return nil, nil
	case FailureKindFail:
		calls := failedCase.Sequence
		if failedCase.ShrinkEnabled && c.shrinker != nil {
			shrunk, err := c.shrinker.Shrink(ctx, failedCase, calls, engine)
			if err != nil {
				return nil, err
			}
			c.log.Infof("shrunk failing sequence from %d to %d calls", len(calls), len(shrunk))
			calls = shrunk
		} else {
			c.log.Debug("shrinking disabled")
		}

		setUpInnerReplay(engine, failedCase.InnerSequence)
		return c.Run(ctx, invariant, engine, knownContracts, idedContracts, evidence, calls)
	default:
		return nil, ErrUnknownFailureKind
	}
}

// setUpInnerReplay pins the calls generated by the internal fuzzer, if they
// exist. The pin completes before any call executes, so no engine-side
// reader can observe a half-initialized state.
func setUpInnerReplay(engine executor.ExecutionEngine, inner fuzz.InnerSequence) {
	if gen := engine.CallGenerator(); gen != nil {
		gen.PinSequence(inner)
		gen.SetReplay(true)
	}
}

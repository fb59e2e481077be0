// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jefelino/leximatch"
)

// Progress reports how far a Run has gotten, for a host that wants to
// show a spinner or a step counter.
type Progress struct {
	RunID    string
	Steps    int64
	Finished bool
}

// Run drives state to completion (or until ctx is done, the step
// limit is reached, or the deadline passes), calling onProgress every
// cfg.BatchSize steps. onProgress may be nil.
func Run(ctx context.Context, cfg Config, state leximatch.State, onProgress func(Progress)) (leximatch.Result, error) {
	cfg = cfg.WithDefaults()
	runID := uuid.New().String()
	logger := log.Default().With("run_id", runID)

	deadline := time.Time{}
	if cfg.Deadline > 0 {
		deadline = time.Now().Add(cfg.Deadline)
	}

	logger.Info("starting search", "batch_size", cfg.BatchSize, "step_limit", cfg.StepLimit)

	var steps int64
	for !state.Finished() {
		select {
		case <-ctx.Done():
			logger.Warn("search cancelled", "steps", steps)
			return state.Result(), fmt.Errorf("runner: %w", ctx.Err())
		default:
		}

		for i := 0; i < cfg.BatchSize && !state.Finished(); i++ {
			state = state.Step()
			steps++
			if cfg.StepLimit > 0 && steps >= cfg.StepLimit {
				logger.Warn("step limit reached", "steps", steps)
				if onProgress != nil {
					onProgress(Progress{RunID: runID, Steps: steps, Finished: state.Finished()})
				}
				return state.Result(), nil
			}
		}

		if onProgress != nil {
			onProgress(Progress{RunID: runID, Steps: steps, Finished: state.Finished()})
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			logger.Warn("deadline exceeded", "steps", steps)
			return state.Result(), fmt.Errorf("runner: deadline of %s exceeded after %d steps", cfg.Deadline, steps)
		}
	}

	result := state.Result()
	if result.Present {
		logger.Info("search finished", "steps", steps, "distribution_size", len(result.Distribution), "tied_assignments", len(result.Assignments))
	} else {
		logger.Warn("search finished with no feasible assignment", "steps", steps)
	}
	return result, nil
}

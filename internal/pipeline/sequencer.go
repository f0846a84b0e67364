/*
Copyright 2026 The Kubeflow authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"
)

// StageRunner runs a single stage to completion.
type StageRunner interface {
	RunStage(ctx context.Context, stage Stage) StageResult
}

// Validator performs post-run data checks. Validation problems are advisory and
// never change the outcome of a run.
type Validator interface {
	Validate(ctx context.Context) error
}

// RunSummary aggregates the results of a pipeline run.
type RunSummary struct {
	RunID   string
	Results []StageResult
	Total   time.Duration
}

// Succeeded returns whether every executed stage succeeded.
func (s RunSummary) Succeeded() bool {
	if len(s.Results) == 0 {
		return false
	}
	for _, result := range s.Results {
		if !result.Succeeded() {
			return false
		}
	}
	return true
}

// Sequencer runs stages in order, aborting on the first stage that does not
// succeed.
type Sequencer struct {
	runner    StageRunner
	validator Validator
	clock     clock.PassiveClock
}

// NewSequencer creates a Sequencer. The validator may be nil, in which case the
// post-run validation step is skipped.
func NewSequencer(runner StageRunner, validator Validator, clk clock.PassiveClock) *Sequencer {
	return &Sequencer{
		runner:    runner,
		validator: validator,
		clock:     clk,
	}
}

// Run executes the given stages in order. The first stage that does not succeed
// aborts the run; later stages are never submitted. After a fully successful run
// the validator, if any, is invoked, with failures reported as warnings only.
func (s *Sequencer) Run(ctx context.Context, stages []Stage) RunSummary {
	summary := RunSummary{RunID: uuid.New().String()}
	start := s.clock.Now()

	logger.Info("Starting pipeline run", "runID", summary.RunID, "stages", len(stages))
	for _, stage := range stages {
		logger.Info("Running stage", "runID", summary.RunID, "stage", stage.Name)
		result := s.runner.RunStage(ctx, stage)
		summary.Results = append(summary.Results, result)
		if !result.Succeeded() {
			logger.Info("Aborting pipeline", "runID", summary.RunID, "stage", stage.Name, "outcome", result.Outcome)
			break
		}
	}
	summary.Total = s.clock.Since(start)

	if summary.Succeeded() && s.validator != nil {
		if err := s.validator.Validate(ctx); err != nil {
			logger.Info("Validation reported problems", "runID", summary.RunID, "error", err.Error())
		}
	}

	return summary
}

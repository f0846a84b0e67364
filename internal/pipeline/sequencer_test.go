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

package pipeline_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/kubeflow/medallion-bench/internal/pipeline"
)

// scriptedRunner returns canned results and records which stages were run. Each
// stage advances the fake clock by step.
type scriptedRunner struct {
	clk      *clocktesting.FakePassiveClock
	step     time.Duration
	outcomes map[string]pipeline.Outcome
	ran      []string
}

func (r *scriptedRunner) RunStage(_ context.Context, stage pipeline.Stage) pipeline.StageResult {
	r.ran = append(r.ran, stage.Name)
	r.clk.SetTime(r.clk.Now().Add(r.step))
	outcome, ok := r.outcomes[stage.Name]
	if !ok {
		outcome = pipeline.OutcomeSucceeded
	}
	return pipeline.StageResult{
		Stage:    stage,
		Outcome:  outcome,
		Duration: r.step,
	}
}

type recordingValidator struct {
	called int
	err    error
}

func (v *recordingValidator) Validate(_ context.Context) error {
	v.called++
	return v.err
}

var _ = Describe("Sequencer", func() {
	ctx := context.Background()

	var clk *clocktesting.FakePassiveClock

	BeforeEach(func() {
		clk = clocktesting.NewFakePassiveClock(time.Now())
	})

	Context("when every stage succeeds", func() {
		It("should run all stages in order and validate once", func() {
			runner := &scriptedRunner{clk: clk, step: 90 * time.Second}
			validator := &recordingValidator{}
			sequencer := pipeline.NewSequencer(runner, validator, clk)

			summary := sequencer.Run(ctx, pipeline.ProcessingStages())
			Expect(summary.Succeeded()).To(BeTrue())
			Expect(runner.ran).To(Equal([]string{
				pipeline.StageSmoke,
				pipeline.StageBronze,
				pipeline.StageSilver,
				pipeline.StageGold,
			}))
			Expect(validator.called).To(Equal(1))
			Expect(summary.RunID).NotTo(BeEmpty())
		})

		It("should total the per-stage elapsed time", func() {
			runner := &scriptedRunner{clk: clk, step: 90 * time.Second}
			sequencer := pipeline.NewSequencer(runner, nil, clk)

			summary := sequencer.Run(ctx, pipeline.ProcessingStages())
			Expect(summary.Total).To(Equal(6 * time.Minute))
		})
	})

	Context("when a stage fails", func() {
		It("should abort without submitting later stages", func() {
			runner := &scriptedRunner{
				clk:      clk,
				step:     time.Minute,
				outcomes: map[string]pipeline.Outcome{pipeline.StageBronze: pipeline.OutcomeFailed},
			}
			validator := &recordingValidator{}
			sequencer := pipeline.NewSequencer(runner, validator, clk)

			summary := sequencer.Run(ctx, pipeline.ProcessingStages())
			Expect(summary.Succeeded()).To(BeFalse())
			Expect(runner.ran).To(Equal([]string{pipeline.StageSmoke, pipeline.StageBronze}))
			Expect(summary.Results).To(HaveLen(2))
			Expect(validator.called).To(BeZero())
		})

		It("should treat a timed out stage like a failed one", func() {
			runner := &scriptedRunner{
				clk:      clk,
				step:     time.Minute,
				outcomes: map[string]pipeline.Outcome{pipeline.StageSmoke: pipeline.OutcomeTimedOut},
			}
			sequencer := pipeline.NewSequencer(runner, nil, clk)

			summary := sequencer.Run(ctx, pipeline.ProcessingStages())
			Expect(summary.Succeeded()).To(BeFalse())
			Expect(runner.ran).To(Equal([]string{pipeline.StageSmoke}))
		})
	})

	Context("when validation reports problems", func() {
		It("should not change the run outcome", func() {
			runner := &scriptedRunner{clk: clk, step: time.Minute}
			validator := &recordingValidator{err: errors.New("row count mismatch")}
			sequencer := pipeline.NewSequencer(runner, validator, clk)

			summary := sequencer.Run(ctx, pipeline.ProcessingStages())
			Expect(summary.Succeeded()).To(BeTrue())
			Expect(validator.called).To(Equal(1))
		})
	})

	Context("with no stages", func() {
		It("should report an unsuccessful empty run", func() {
			runner := &scriptedRunner{clk: clk, step: time.Minute}
			sequencer := pipeline.NewSequencer(runner, nil, clk)

			summary := sequencer.Run(ctx, nil)
			Expect(summary.Succeeded()).To(BeFalse())
			Expect(summary.Results).To(BeEmpty())
		})
	})
})

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
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubeflow/medallion-bench/api/v1beta2"
	"github.com/kubeflow/medallion-bench/internal/pipeline"
)

var _ = Describe("WriteSummary", func() {
	It("should render one row per executed stage", func() {
		summary := pipeline.RunSummary{
			RunID: "test-run",
			Results: []pipeline.StageResult{
				{
					Stage:    pipeline.Stage{Name: pipeline.StageSmoke, AppName: "mdp-smoke"},
					Outcome:  pipeline.OutcomeSucceeded,
					State:    v1beta2.ApplicationStateCompleted,
					Duration: 42 * time.Second,
				},
				{
					Stage:    pipeline.Stage{Name: pipeline.StageBronze, AppName: "mdp-bronze-ingest", DatasetGiB: 1024},
					Outcome:  pipeline.OutcomeFailed,
					State:    v1beta2.ApplicationStateFailed,
					Duration: 10 * time.Minute,
				},
			},
			Total: 11 * time.Minute,
		}

		var buf bytes.Buffer
		pipeline.WriteSummary(&buf, summary)
		out := buf.String()
		Expect(out).To(ContainSubstring("mdp-smoke"))
		Expect(out).To(ContainSubstring("mdp-bronze-ingest"))
		Expect(out).To(ContainSubstring("COMPLETED"))
		Expect(out).To(ContainSubstring("Total elapsed: 11m0s"))
	})

	It("should report the ingest rate for successful sized stages", func() {
		summary := pipeline.RunSummary{
			Results: []pipeline.StageResult{
				{
					Stage:    pipeline.Stage{Name: pipeline.StageBronze, AppName: "mdp-bronze-ingest", DatasetGiB: 1024},
					Outcome:  pipeline.OutcomeSucceeded,
					State:    v1beta2.ApplicationStateCompleted,
					Duration: 8 * time.Minute,
				},
			},
			Total: 8 * time.Minute,
		}

		var buf bytes.Buffer
		pipeline.WriteSummary(&buf, summary)
		out := buf.String()
		Expect(out).To(ContainSubstring("bronze ingest rate: 128.0 GiB/min"))
		Expect(out).To(ContainSubstring("Pipeline rate: 128.0 GiB/min"))
	})

	It("should not report a rate for a failed sized stage", func() {
		summary := pipeline.RunSummary{
			Results: []pipeline.StageResult{
				{
					Stage:    pipeline.Stage{Name: pipeline.StageBronze, AppName: "mdp-bronze-ingest", DatasetGiB: 1024},
					Outcome:  pipeline.OutcomeTimedOut,
					Duration: 3 * time.Hour,
				},
			},
			Total: 3 * time.Hour,
		}

		var buf bytes.Buffer
		pipeline.WriteSummary(&buf, summary)
		out := buf.String()
		Expect(out).NotTo(ContainSubstring("GiB/min"))
		Expect(out).To(ContainSubstring("N.A."))
	})
})

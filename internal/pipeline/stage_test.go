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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubeflow/medallion-bench/internal/pipeline"
)

var _ = Describe("ProcessingStages", func() {
	It("should list the stages in pipeline order", func() {
		stages := pipeline.ProcessingStages()
		names := make([]string, 0, len(stages))
		for _, stage := range stages {
			names = append(names, stage.Name)
		}
		Expect(names).To(Equal([]string{
			pipeline.StageSmoke,
			pipeline.StageBronze,
			pipeline.StageSilver,
			pipeline.StageGold,
		}))
	})

	It("should only warm up executors for the bronze ingest", func() {
		for _, stage := range pipeline.ProcessingStages() {
			Expect(stage.WaitForExecutors).To(Equal(stage.Name == pipeline.StageBronze), "stage %s", stage.Name)
		}
	})

	It("should give every stage a manifest and a positive timeout", func() {
		for _, stage := range pipeline.ProcessingStages() {
			Expect(stage.Manifest).NotTo(BeEmpty(), "stage %s", stage.Name)
			Expect(stage.Timeout).To(BeNumerically(">", 0), "stage %s", stage.Name)
		}
	})
})

var _ = Describe("StageByName", func() {
	It("should find a stage by its selector", func() {
		stage, ok := pipeline.StageByName(pipeline.StageBronze)
		Expect(ok).To(BeTrue())
		Expect(stage.AppName).To(Equal("mdp-bronze-ingest"))
	})

	It("should not find unknown names", func() {
		_, ok := pipeline.StageByName("platinum")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ResolveAppName", func() {
	It("should map stage selectors to application names", func() {
		Expect(pipeline.ResolveAppName(pipeline.StageSilver)).To(Equal("mdp-silver-build"))
	})

	It("should pass through anything else unchanged", func() {
		Expect(pipeline.ResolveAppName("mdp-bronze-ingest")).To(Equal("mdp-bronze-ingest"))
	})
})

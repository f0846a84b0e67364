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
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/kubeflow/medallion-bench/internal/pipeline"
)

var _ = Describe("LoadSparkApplication", func() {
	Context("with a manifest containing multiple documents", func() {
		It("should return the SparkApplication document", func() {
			app, err := pipeline.LoadSparkApplication("testdata/smoke.yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(app.GetKind()).To(Equal("SparkApplication"))
			Expect(app.GetName()).To(Equal("mdp-smoke"))
		})

		It("should preserve fields outside the typed schema", func() {
			app, err := pipeline.LoadSparkApplication("testdata/smoke.yaml")
			Expect(err).NotTo(HaveOccurred())
			jars, found, err := unstructured.NestedStringSlice(app.Object, "spec", "deps", "jars")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(jars).To(ConsistOf("local:///opt/spark/jars/iceberg-runtime.jar"))
		})
	})

	Context("with a manifest containing no SparkApplication", func() {
		It("should return an error", func() {
			_, err := pipeline.LoadSparkApplication("testdata/no-spark-application.yaml")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no SparkApplication document"))
		})
	})

	Context("with a missing file", func() {
		It("should return an error", func() {
			_, err := pipeline.LoadSparkApplication("testdata/does-not-exist.yaml")
			Expect(err).To(HaveOccurred())
		})
	})
})

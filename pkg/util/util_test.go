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

package util_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kubeflow/medallion-bench/pkg/util"
)

var _ = Describe("GetSinceTime", func() {
	Context("Zero timestamp", func() {
		It("Should return N.A.", func() {
			Expect(util.GetSinceTime(metav1.Time{})).To(Equal("N.A."))
		})
	})

	Context("Timestamp in the past", func() {
		timestamp := metav1.NewTime(time.Now().Add(-10 * time.Minute))

		It("Should return a short human readable duration", func() {
			Expect(util.GetSinceTime(timestamp)).To(Equal("10m"))
		})
	})
})

var _ = Describe("FormatNotAvailable", func() {
	Context("Empty string", func() {
		It("Should return N.A.", func() {
			Expect(util.FormatNotAvailable("")).To(Equal("N.A."))
		})
	})

	Context("Non-empty string", func() {
		It("Should return the string unchanged", func() {
			Expect(util.FormatNotAvailable("RUNNING")).To(Equal("RUNNING"))
		})
	})
})

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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/kubeflow/medallion-bench/api/v1beta2"
	"github.com/kubeflow/medallion-bench/pkg/common"
	"github.com/kubeflow/medallion-bench/pkg/util"
)

var _ = Describe("GetDriverPodName", func() {
	Context("SparkApplication without driver pod name field and driver pod name conf", func() {
		app := &v1beta2.SparkApplication{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "mdp-smoke",
				Namespace: "md-pipeline",
			},
		}

		It("Should return the default driver pod name", func() {
			Expect(util.GetDriverPodName(app)).To(Equal("mdp-smoke-driver"))
		})
	})

	Context("SparkApplication with only driver pod name field", func() {
		driverPodName := "mdp-smoke-driver-pod"
		app := &v1beta2.SparkApplication{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "mdp-smoke",
				Namespace: "md-pipeline",
			},
			Spec: v1beta2.SparkApplicationSpec{
				Driver: v1beta2.DriverSpec{
					PodName: &driverPodName,
				},
			},
		}

		It("Should return the driver pod name from driver spec", func() {
			Expect(util.GetDriverPodName(app)).To(Equal(driverPodName))
		})
	})

	Context("SparkApplication with only driver pod name conf", func() {
		driverPodName := "mdp-smoke-driver-pod"
		app := &v1beta2.SparkApplication{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "mdp-smoke",
				Namespace: "md-pipeline",
			},
			Spec: v1beta2.SparkApplicationSpec{
				SparkConf: map[string]string{
					common.SparkKubernetesDriverPodName: driverPodName,
				},
			},
		}

		It("Should return the driver pod name from spark conf", func() {
			Expect(util.GetDriverPodName(app)).To(Equal(driverPodName))
		})
	})
})

var _ = Describe("GetApplicationState", func() {
	Context("SparkApplication in running state", func() {
		app := &v1beta2.SparkApplication{
			Status: v1beta2.SparkApplicationStatus{
				AppState: v1beta2.ApplicationState{
					State: v1beta2.ApplicationStateRunning,
				},
			},
		}

		It("Should return the running state", func() {
			Expect(util.GetApplicationState(app)).To(Equal(v1beta2.ApplicationStateRunning))
		})
	})
})

var _ = Describe("IsTerminated", func() {
	Context("SparkApplication that has completed", func() {
		app := &v1beta2.SparkApplication{
			Status: v1beta2.SparkApplicationStatus{
				AppState: v1beta2.ApplicationState{
					State: v1beta2.ApplicationStateCompleted,
				},
			},
		}

		It("Should return true", func() {
			Expect(util.IsTerminated(app)).To(BeTrue())
		})
	})

	Context("SparkApplication that has failed", func() {
		app := &v1beta2.SparkApplication{
			Status: v1beta2.SparkApplicationStatus{
				AppState: v1beta2.ApplicationState{
					State: v1beta2.ApplicationStateFailed,
				},
			},
		}

		It("Should return true", func() {
			Expect(util.IsTerminated(app)).To(BeTrue())
		})
	})

	Context("SparkApplication that is still running", func() {
		app := &v1beta2.SparkApplication{
			Status: v1beta2.SparkApplicationStatus{
				AppState: v1beta2.ApplicationState{
					State: v1beta2.ApplicationStateRunning,
				},
			},
		}

		It("Should return false", func() {
			Expect(util.IsTerminated(app)).To(BeFalse())
		})
	})
})

var _ = Describe("GetInitialExecutorNumber", func() {
	Context("SparkApplication with static executor instances", func() {
		app := &v1beta2.SparkApplication{
			Spec: v1beta2.SparkApplicationSpec{
				Executor: v1beta2.ExecutorSpec{
					Instances: ptr.To(int32(48)),
				},
			},
		}

		It("Should return the configured instance count", func() {
			Expect(util.GetInitialExecutorNumber(app)).To(Equal(int32(48)))
		})
	})

	Context("SparkApplication without executor instances", func() {
		app := &v1beta2.SparkApplication{}

		It("Should return the Spark default of 2", func() {
			Expect(util.GetInitialExecutorNumber(app)).To(Equal(int32(2)))
		})
	})

	Context("SparkApplication with dynamic allocation", func() {
		app := &v1beta2.SparkApplication{
			Spec: v1beta2.SparkApplicationSpec{
				Executor: v1beta2.ExecutorSpec{
					Instances: ptr.To(int32(8)),
				},
				DynamicAllocation: &v1beta2.DynamicAllocation{
					Enabled:          true,
					InitialExecutors: ptr.To(int32(16)),
					MinExecutors:     ptr.To(int32(4)),
				},
			},
		}

		It("Should return the largest of the configured counts", func() {
			Expect(util.GetInitialExecutorNumber(app)).To(Equal(int32(16)))
		})
	})
})

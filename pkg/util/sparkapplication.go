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

package util

import (
	"fmt"

	"github.com/kubeflow/medallion-bench/api/v1beta2"
	"github.com/kubeflow/medallion-bench/pkg/common"
)

// GetDriverPodName returns name of the driver pod of the given spark application.
func GetDriverPodName(app *v1beta2.SparkApplication) string {
	name := app.Spec.Driver.PodName
	if name != nil && len(*name) > 0 {
		return *name
	}

	sparkConf := app.Spec.SparkConf
	if sparkConf[common.SparkKubernetesDriverPodName] != "" {
		return sparkConf[common.SparkKubernetesDriverPodName]
	}

	return fmt.Sprintf("%s-driver", app.Name)
}

// GetApplicationState returns the state of the given SparkApplication.
func GetApplicationState(app *v1beta2.SparkApplication) v1beta2.ApplicationStateType {
	return app.Status.AppState.State
}

// IsTerminated returns whether the given SparkApplication is terminated.
func IsTerminated(app *v1beta2.SparkApplication) bool {
	return app.Status.AppState.State == v1beta2.ApplicationStateCompleted ||
		app.Status.AppState.State == v1beta2.ApplicationStateFailed
}

// GetInitialExecutorNumber calculates the initial number of executor pods that will be
// requested by the driver on startup.
func GetInitialExecutorNumber(app *v1beta2.SparkApplication) int32 {
	// The reference for this implementation: https://github.com/apache/spark/blob/ba208b9ca99990fa329c36b28d0aa2a5f4d0a77e/core/src/main/scala/org/apache/spark/scheduler/cluster/SchedulerBackendUtils.scala#L31
	var initialNumExecutors int32

	dynamicAllocationEnabled := app.Spec.DynamicAllocation != nil && app.Spec.DynamicAllocation.Enabled
	if dynamicAllocationEnabled {
		if app.Spec.Executor.Instances != nil {
			initialNumExecutors = max(initialNumExecutors, *app.Spec.Executor.Instances)
		}
		if app.Spec.DynamicAllocation.InitialExecutors != nil {
			initialNumExecutors = max(initialNumExecutors, *app.Spec.DynamicAllocation.InitialExecutors)
		}
		if app.Spec.DynamicAllocation.MinExecutors != nil {
			initialNumExecutors = max(initialNumExecutors, *app.Spec.DynamicAllocation.MinExecutors)
		}
	} else {
		initialNumExecutors = 2
		if app.Spec.Executor.Instances != nil {
			initialNumExecutors = *app.Spec.Executor.Instances
		}
	}

	return initialNumExecutors
}

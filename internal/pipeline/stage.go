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
	"time"
)

// Stage selectors accepted on the command line.
const (
	StageSmoke    = "smoke"
	StageBronze   = "bronze"
	StageSilver   = "silver"
	StageGold     = "gold"
	StageValidate = "validate"
	StageFull     = "full"
)

// Stage describes one pipeline job: which SparkApplication it submits, where its
// manifest lives, and how long it may run. Stages are immutable.
type Stage struct {
	// Name is the stage selector, e.g. "bronze".
	Name string
	// AppName is the name of the SparkApplication the stage submits.
	AppName string
	// Manifest is the manifest file name, resolved against the manifest directory.
	Manifest string
	// Timeout bounds how long the stage may take to reach a terminal state.
	Timeout time.Duration
	// WaitForExecutors enables the advisory executor warmup wait after submission.
	WaitForExecutors bool
	// DatasetGiB is the size of the dataset the stage processes, used for
	// throughput reporting. Zero means no throughput figure is derived.
	DatasetGiB int
	// LogMarkers are substrings scanned for in the driver log tail after the
	// stage succeeds. Matching lines are reported as performance figures.
	LogMarkers []string
}

// ProcessingStages returns the pipeline stages in execution order.
func ProcessingStages() []Stage {
	return []Stage{
		{
			Name:     StageSmoke,
			AppName:  "mdp-smoke",
			Manifest: "49-smoke.yaml",
			Timeout:  10 * time.Minute,
		},
		{
			Name:             StageBronze,
			AppName:          "mdp-bronze-ingest",
			Manifest:         "42-bronze-ingest.yaml",
			Timeout:          180 * time.Minute,
			WaitForExecutors: true,
			DatasetGiB:       1024,
			LogMarkers:       []string{"Throughput:", "Est. Size:", "Rows:"},
		},
		{
			Name:     StageSilver,
			AppName:  "mdp-silver-build",
			Manifest: "43-silver-build.yaml",
			Timeout:  60 * time.Minute,
		},
		{
			Name:     StageGold,
			AppName:  "mdp-gold-finalize",
			Manifest: "44-gold-finalize.yaml",
			Timeout:  30 * time.Minute,
		},
	}
}

// StageByName returns the processing stage with the given selector name.
func StageByName(name string) (Stage, bool) {
	for _, stage := range ProcessingStages() {
		if stage.Name == name {
			return stage, true
		}
	}
	return Stage{}, false
}

// ResolveAppName maps a stage selector to its SparkApplication name. Values that
// are not stage selectors pass through unchanged as literal application names.
func ResolveAppName(nameOrStage string) string {
	if stage, ok := StageByName(nameOrStage); ok {
		return stage.AppName
	}
	return nameOrStage
}

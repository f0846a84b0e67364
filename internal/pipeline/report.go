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
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/kubeflow/medallion-bench/pkg/util"
)

// WriteSummary renders a per-stage table for the run followed by throughput and
// total elapsed time.
func WriteSummary(w io.Writer, summary RunSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Stage", "Application", "Outcome", "State", "Elapsed"})
	for _, result := range summary.Results {
		table.Append([]string{
			result.Stage.Name,
			result.Stage.AppName,
			string(result.Outcome),
			util.FormatNotAvailable(string(result.State)),
			result.Duration.Round(time.Second).String(),
		})
	}
	table.Render()

	var totalGiB int
	for _, result := range summary.Results {
		if result.Stage.DatasetGiB > 0 && result.Succeeded() {
			totalGiB += result.Stage.DatasetGiB
			if minutes := result.Duration.Minutes(); minutes > 0 {
				fmt.Fprintf(w, "%s ingest rate: %.1f GiB/min\n", result.Stage.Name, float64(result.Stage.DatasetGiB)/minutes)
			}
		}
	}
	if totalGiB > 0 {
		if minutes := summary.Total.Minutes(); minutes > 0 {
			fmt.Fprintf(w, "Pipeline rate: %.1f GiB/min\n", float64(totalGiB)/minutes)
		}
	}
	fmt.Fprintf(w, "Total elapsed: %s\n", summary.Total.Round(time.Second))
}

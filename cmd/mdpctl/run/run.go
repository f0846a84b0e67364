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

package run

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/utils/clock"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/kubeflow/medallion-bench/internal/cluster"
	"github.com/kubeflow/medallion-bench/internal/pipeline"
	"github.com/kubeflow/medallion-bench/internal/trino"
	"github.com/kubeflow/medallion-bench/pkg/util"
)

var logger = log.Log.WithName("")

var (
	manifestDir    string
	pollInterval   time.Duration
	checkResources bool
	trinoRelease   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [stage]",
		Short: "Run the pipeline or a single stage",
		Long: `Run the pipeline end to end or a single stage.

Stage is one of smoke, bronze, silver, gold, validate or full and defaults to
full. The command blocks until every submitted stage reaches a terminal state
and exits non zero when a stage fails or times out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			selector := pipeline.StageFull
			if len(args) == 1 {
				selector = args[0]
			}
			return doRun(selector)
		},
	}

	cmd.Flags().StringVar(&manifestDir, "manifest-dir", pipeline.DefaultManifestDir, "Directory containing the stage SparkApplication manifests.")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", pipeline.DefaultPollInterval, "Interval between application status polls.")
	cmd.Flags().BoolVar(&checkResources, "check-resources", false, "Only print the cluster node inventory and exit.")
	cmd.Flags().StringVar(&trinoRelease, "trino-release", trino.DefaultRelease, "Helm release name of the warehouse Trino chart.")

	return cmd
}

func doRun(selector string) error {
	namespace := viper.GetString("namespace")

	cfg, err := util.BuildConfig(viper.GetString("kubeconfig"))
	if err != nil {
		return fmt.Errorf("failed to get kube config: %v", err)
	}
	k8sClient, err := util.GetK8sClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create Kubernetes client: %v", err)
	}
	clientset, err := util.GetClientset(cfg)
	if err != nil {
		return fmt.Errorf("failed to create Kubernetes clientset: %v", err)
	}

	ctx := ctrl.SetupSignalHandler()

	if checkResources {
		cluster.Check(ctx, k8sClient, os.Stdout)
		return nil
	}

	runner := pipeline.NewRunner(k8sClient, clientset, clock.RealClock{}, pipeline.RunnerOptions{
		Namespace:    namespace,
		ManifestDir:  manifestDir,
		PollInterval: pollInterval,
	})
	validator := trino.NewValidator(k8sClient, trino.NewPodCommandRunner(clientset, cfg), namespace, trinoRelease)

	switch selector {
	case pipeline.StageValidate:
		return validator.Validate(ctx)
	case pipeline.StageFull:
		cluster.Check(ctx, k8sClient, os.Stdout)
		sequencer := pipeline.NewSequencer(runner, validator, clock.RealClock{})
		summary := sequencer.Run(ctx, pipeline.ProcessingStages())
		pipeline.WriteSummary(os.Stdout, summary)
		reportInterruption(ctx, namespace)
		if failed := firstFailure(summary); failed != nil {
			return fmt.Errorf("pipeline aborted at stage %s (%s)", failed.Stage.Name, failed.Outcome)
		}
		return nil
	default:
		stage, ok := pipeline.StageByName(selector)
		if !ok {
			return fmt.Errorf("unknown stage %q, expected one of smoke, bronze, silver, gold, validate or full", selector)
		}
		result := runner.RunStage(ctx, stage)
		summary := pipeline.RunSummary{Results: []pipeline.StageResult{result}, Total: result.Duration}
		pipeline.WriteSummary(os.Stdout, summary)
		reportInterruption(ctx, namespace)
		if !result.Succeeded() {
			if result.Message != "" {
				return fmt.Errorf("stage %s did not succeed: %s", stage.Name, result.Message)
			}
			return fmt.Errorf("stage %s did not succeed (%s)", stage.Name, result.Outcome)
		}
		return nil
	}
}

// reportInterruption tells the operator that a signal stopped the watch but not
// the Spark jobs already submitted to the cluster.
func reportInterruption(ctx context.Context, namespace string) {
	if ctx.Err() == nil {
		return
	}
	logger.Info("Pipeline orchestration interrupted")
	logger.Info("Spark jobs may continue running in the cluster", "hint", fmt.Sprintf("mdpctl list -n %s", namespace))
}

func firstFailure(summary pipeline.RunSummary) *pipeline.StageResult {
	for i := range summary.Results {
		if !summary.Results[i].Succeeded() {
			return &summary.Results[i]
		}
	}
	return nil
}

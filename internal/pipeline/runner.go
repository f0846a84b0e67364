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
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/kubeflow/medallion-bench/api/v1beta2"
	"github.com/kubeflow/medallion-bench/pkg/common"
	"github.com/kubeflow/medallion-bench/pkg/util"
)

var logger = log.Log.WithName("")

// Defaults for the stage runner.
const (
	DefaultNamespace              = "md-pipeline"
	DefaultManifestDir            = "k8s/spark"
	DefaultPollInterval           = 30 * time.Second
	DefaultErrorRetryInterval     = 10 * time.Second
	DefaultDeletionTimeout        = 60 * time.Second
	DefaultExecutorWarmupTimeout  = 10 * time.Minute
	DefaultExecutorWarmupInterval = 20 * time.Second

	deletionPollInterval   = 2 * time.Second
	executorWarmupFraction = 0.8

	driverLogTailLines   = 50
	executorLogTailLines = 20
	performanceTailLines = 20
)

// Outcome classifies how a stage run ended.
type Outcome string

const (
	OutcomeSucceeded   Outcome = "Succeeded"
	OutcomeFailed      Outcome = "Failed"
	OutcomeTimedOut    Outcome = "TimedOut"
	OutcomeInterrupted Outcome = "Interrupted"
)

// StageResult records the outcome of a single stage run.
type StageResult struct {
	Stage    Stage
	Outcome  Outcome
	State    v1beta2.ApplicationStateType
	Message  string
	Duration time.Duration
}

// Succeeded returns whether the stage reached the success state.
func (r StageResult) Succeeded() bool {
	return r.Outcome == OutcomeSucceeded
}

// RunnerOptions configures a stage runner. Zero values fall back to the defaults
// above.
type RunnerOptions struct {
	Namespace          string
	ManifestDir        string
	PollInterval       time.Duration
	ErrorRetryInterval time.Duration
	DeletionTimeout    time.Duration
	// ExecutorWarmupTimeout bounds how long a stage that asks for executor
	// warmup waits before proceeding anyway.
	ExecutorWarmupTimeout  time.Duration
	ExecutorWarmupInterval time.Duration
	// SuccessState is the terminal state that counts as success.
	SuccessState v1beta2.ApplicationStateType
	// FailureStates are the terminal states that count as failure.
	FailureStates []v1beta2.ApplicationStateType
}

// Runner submits pipeline stages and waits for them to reach a terminal state.
type Runner struct {
	client    client.Client
	clientset kubernetes.Interface
	clock     clock.PassiveClock
	options   RunnerOptions
}

// NewRunner creates a Runner with the given clients and options.
func NewRunner(k8sClient client.Client, clientset kubernetes.Interface, clk clock.PassiveClock, options RunnerOptions) *Runner {
	if options.Namespace == "" {
		options.Namespace = DefaultNamespace
	}
	if options.ManifestDir == "" {
		options.ManifestDir = DefaultManifestDir
	}
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	if options.ErrorRetryInterval <= 0 {
		options.ErrorRetryInterval = DefaultErrorRetryInterval
	}
	if options.DeletionTimeout <= 0 {
		options.DeletionTimeout = DefaultDeletionTimeout
	}
	if options.ExecutorWarmupTimeout <= 0 {
		options.ExecutorWarmupTimeout = DefaultExecutorWarmupTimeout
	}
	if options.ExecutorWarmupInterval <= 0 {
		options.ExecutorWarmupInterval = DefaultExecutorWarmupInterval
	}
	if options.SuccessState == "" {
		options.SuccessState = v1beta2.ApplicationStateCompleted
	}
	if len(options.FailureStates) == 0 {
		options.FailureStates = []v1beta2.ApplicationStateType{
			v1beta2.ApplicationStateFailed,
			v1beta2.ApplicationStateFailedSubmission,
		}
	}

	return &Runner{
		client:    k8sClient,
		clientset: clientset,
		clock:     clk,
		options:   options,
	}
}

// RunStage submits the stage and blocks until its application reaches a terminal
// state or the stage timeout elapses. Diagnostic log tails are collected on
// failure, performance figures on success.
func (r *Runner) RunStage(ctx context.Context, stage Stage) StageResult {
	start := r.clock.Now()

	app, err := r.Submit(ctx, stage)
	if err != nil {
		logger.Error(err, "Failed to submit stage", "stage", stage.Name)
		return StageResult{
			Stage:    stage,
			Outcome:  OutcomeFailed,
			Message:  err.Error(),
			Duration: r.clock.Since(start),
		}
	}
	name := app.GetName()

	if stage.WaitForExecutors {
		r.waitForExecutors(ctx, name)
	}

	result := r.AwaitTerminal(ctx, name, stage.Timeout)
	result.Stage = stage
	result.Duration = r.clock.Since(start)

	if result.Succeeded() {
		logger.Info("Stage succeeded", "stage", stage.Name, "name", name, "elapsed", result.Duration.Round(time.Second).String())
		if len(stage.LogMarkers) > 0 {
			r.collectPerformance(ctx, name, stage.LogMarkers)
		}
	} else {
		logger.Info("Stage did not succeed", "stage", stage.Name, "name", name, "outcome", result.Outcome, "state", result.State, "message", result.Message)
		r.collectDiagnostics(ctx, name)
	}

	return result
}

// Submit deletes any prior instance of the stage's application and creates a
// fresh one from its manifest. Deleting a missing application is a no-op.
func (r *Runner) Submit(ctx context.Context, stage Stage) (*unstructured.Unstructured, error) {
	app, err := LoadSparkApplication(filepath.Join(r.options.ManifestDir, stage.Manifest))
	if err != nil {
		return nil, err
	}
	if app.GetName() == "" {
		app.SetName(stage.AppName)
	}
	app.SetNamespace(r.options.Namespace)

	if err := r.deleteIfExists(ctx, app.GetName()); err != nil {
		return nil, err
	}

	logger.Info("Creating SparkApplication", "name", app.GetName(), "namespace", r.options.Namespace, "manifest", stage.Manifest)
	if err := r.client.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create SparkApplication %s: %v", app.GetName(), err)
	}

	return app, nil
}

// Delete removes the application with the given name. A missing application is
// not an error.
func (r *Runner) Delete(ctx context.Context, name string) error {
	app := &v1beta2.SparkApplication{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: r.options.Namespace,
		},
	}
	if err := r.client.Delete(ctx, app); err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete SparkApplication %s: %v", name, err)
	}
	return nil
}

// deleteIfExists deletes a previous instance of the application and waits for the
// object to actually disappear, so that the subsequent create cannot conflict
// with a terminating instance.
func (r *Runner) deleteIfExists(ctx context.Context, name string) error {
	key := types.NamespacedName{Namespace: r.options.Namespace, Name: name}
	if err := r.client.Get(ctx, key, &v1beta2.SparkApplication{}); err != nil {
		if apierrors.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to check for existing SparkApplication %s: %v", name, err)
	}

	logger.Info("Deleting previous SparkApplication", "name", name, "namespace", r.options.Namespace)
	if err := r.Delete(ctx, name); err != nil {
		return err
	}

	err := wait.PollUntilContextTimeout(ctx, deletionPollInterval, r.options.DeletionTimeout, true, func(ctx context.Context) (bool, error) {
		app := &v1beta2.SparkApplication{}
		if err := r.client.Get(ctx, key, app); err != nil {
			if apierrors.IsNotFound(err) {
				return true, nil
			}
			return false, nil
		}
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("previous SparkApplication %s is still terminating", name)
	}
	return nil
}

// AwaitTerminal polls the application status until it reaches the configured
// success state or one of the failure states, or until the timeout elapses.
// Transient query errors are retried on the shorter error retry interval.
// Progress is logged only when the observed state or executor count changes.
func (r *Runner) AwaitTerminal(ctx context.Context, name string, timeout time.Duration) StageResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	key := types.NamespacedName{Namespace: r.options.Namespace, Name: name}
	var lastState v1beta2.ApplicationStateType
	lastExecutors := -1

	for {
		app := &v1beta2.SparkApplication{}
		if err := r.client.Get(ctx, key, app); err != nil {
			if ctx.Err() != nil {
				return r.terminalFromContext(ctx, lastState, timeout)
			}
			logger.Info("Transient error querying application status", "name", name, "error", err.Error())
			if !sleepContext(ctx, r.options.ErrorRetryInterval) {
				return r.terminalFromContext(ctx, lastState, timeout)
			}
			continue
		}

		state := util.GetApplicationState(app)
		executors := r.countExecutorPods(ctx, name)
		if state != lastState || executors != lastExecutors {
			logger.Info("Application status", "name", name, "state", state, "executors", executors)
			lastState = state
			lastExecutors = executors
		}

		if state == r.options.SuccessState {
			return StageResult{Outcome: OutcomeSucceeded, State: state}
		}
		for _, failure := range r.options.FailureStates {
			if state == failure {
				return StageResult{Outcome: OutcomeFailed, State: state, Message: app.Status.AppState.ErrorMessage}
			}
		}

		if !sleepContext(ctx, r.options.PollInterval) {
			return r.terminalFromContext(ctx, lastState, timeout)
		}
	}
}

// terminalFromContext maps an expired poll context to a timeout or interruption
// result.
func (r *Runner) terminalFromContext(ctx context.Context, lastState v1beta2.ApplicationStateType, timeout time.Duration) StageResult {
	if ctx.Err() == context.DeadlineExceeded {
		return StageResult{
			Outcome: OutcomeTimedOut,
			State:   lastState,
			Message: fmt.Sprintf("no terminal state within %s", timeout),
		}
	}
	return StageResult{
		Outcome: OutcomeInterrupted,
		State:   lastState,
		Message: "interrupted before reaching a terminal state",
	}
}

// waitForExecutors blocks until a healthy fraction of the application's initial
// executors is running, or the warmup window closes. Advisory only: the stage
// proceeds either way.
func (r *Runner) waitForExecutors(ctx context.Context, name string) {
	app := &v1beta2.SparkApplication{}
	if err := r.client.Get(ctx, types.NamespacedName{Namespace: r.options.Namespace, Name: name}, app); err != nil {
		logger.Info("Unable to read application for executor warmup", "name", name, "error", err.Error())
		return
	}

	target := util.GetInitialExecutorNumber(app)
	if target <= 0 {
		return
	}
	threshold := int(float64(target) * executorWarmupFraction)
	if threshold < 1 {
		threshold = 1
	}

	logger.Info("Waiting for executors to scale up", "name", name, "target", target, "threshold", threshold)
	err := wait.PollUntilContextTimeout(ctx, r.options.ExecutorWarmupInterval, r.options.ExecutorWarmupTimeout, true, func(ctx context.Context) (bool, error) {
		count := r.countExecutorPods(ctx, name)
		logger.Info("Executor warmup", "name", name, "running", count, "target", target)
		return count >= threshold, nil
	})
	if err != nil {
		logger.Info("Executor warmup window closed, proceeding", "name", name)
	}
}

// countExecutorPods returns the number of executor pods of the application.
// Errors count as zero executors.
func (r *Runner) countExecutorPods(ctx context.Context, name string) int {
	pods := &corev1.PodList{}
	if err := r.client.List(ctx, pods, client.InNamespace(r.options.Namespace), client.MatchingLabels{
		common.LabelSparkAppName: name,
		common.LabelSparkRole:    common.SparkRoleExecutor,
	}); err != nil {
		return 0
	}
	return len(pods.Items)
}

// TailLogs prints the log tail of every pod matching the selector. Best effort:
// fetch failures are logged as warnings and never fail the caller.
func (r *Runner) TailLogs(ctx context.Context, selector map[string]string, lines int64) {
	pods := &corev1.PodList{}
	if err := r.client.List(ctx, pods, client.InNamespace(r.options.Namespace), client.MatchingLabels(selector)); err != nil {
		logger.Info("Unable to list pods for log collection", "selector", selector, "error", err.Error())
		return
	}
	if len(pods.Items) == 0 {
		logger.Info("No pods matched for log collection", "selector", selector)
		return
	}

	for i := range pods.Items {
		pod := &pods.Items[i]
		rawLogs, err := r.clientset.CoreV1().Pods(r.options.Namespace).GetLogs(pod.Name, &corev1.PodLogOptions{
			TailLines: ptr.To(lines),
		}).Do(ctx).Raw()
		if err != nil {
			logger.Info("Unable to fetch pod logs", "pod", pod.Name, "error", err.Error())
			continue
		}
		fmt.Printf("==== %s ====\n%s\n", pod.Name, strings.TrimRight(string(rawLogs), "\n"))
	}
}

// collectDiagnostics dumps recent driver and executor logs after a failed stage.
func (r *Runner) collectDiagnostics(ctx context.Context, name string) {
	logger.Info("Collecting driver log tail", "name", name, "lines", driverLogTailLines)
	r.TailLogs(ctx, map[string]string{
		common.LabelSparkAppName: name,
		common.LabelSparkRole:    common.SparkRoleDriver,
	}, driverLogTailLines)

	logger.Info("Collecting executor log tails", "name", name, "lines", executorLogTailLines)
	r.TailLogs(ctx, map[string]string{
		common.LabelSparkAppName: name,
		common.LabelSparkRole:    common.SparkRoleExecutor,
	}, executorLogTailLines)
}

// collectPerformance scans the driver log tail for lines carrying the stage's
// performance markers and reports them.
func (r *Runner) collectPerformance(ctx context.Context, name string, markers []string) {
	podName := fmt.Sprintf("%s-driver", name)
	app := &v1beta2.SparkApplication{}
	if err := r.client.Get(ctx, types.NamespacedName{Namespace: r.options.Namespace, Name: name}, app); err == nil {
		podName = util.GetDriverPodName(app)
	}

	rawLogs, err := r.clientset.CoreV1().Pods(r.options.Namespace).GetLogs(podName, &corev1.PodLogOptions{
		TailLines: ptr.To(int64(performanceTailLines)),
	}).Do(ctx).Raw()
	if err != nil {
		logger.Info("Unable to fetch driver logs for performance figures", "name", name, "error", err.Error())
		return
	}

	for _, line := range strings.Split(string(rawLogs), "\n") {
		for _, marker := range markers {
			if strings.Contains(line, marker) {
				logger.Info("Performance", "name", name, "figure", strings.TrimSpace(line))
				break
			}
		}
	}
}

// sleepContext sleeps for d, returning false early if the context ends first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

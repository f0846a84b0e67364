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

package trino

import (
	"bytes"
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/remotecommand"
)

// CommandRunner runs a command inside a pod and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, namespace string, pod string, command []string) (string, error)
}

// PodCommandRunner executes commands through the pod exec subresource.
type PodCommandRunner struct {
	clientset kubernetes.Interface
	config    *rest.Config
}

// NewPodCommandRunner creates a CommandRunner backed by the given clientset.
func NewPodCommandRunner(clientset kubernetes.Interface, config *rest.Config) *PodCommandRunner {
	return &PodCommandRunner{
		clientset: clientset,
		config:    config,
	}
}

// Run executes the command in the pod and returns its standard output. Standard
// error is folded into the returned error on failure.
func (r *PodCommandRunner) Run(ctx context.Context, namespace string, pod string, command []string) (string, error) {
	request := r.clientset.CoreV1().RESTClient().Post().
		Resource("pods").
		Name(pod).
		Namespace(namespace).
		SubResource("exec").
		VersionedParams(&corev1.PodExecOptions{
			Command: command,
			Stdout:  true,
			Stderr:  true,
		}, scheme.ParameterCodec)

	executor, err := remotecommand.NewSPDYExecutor(r.config, "POST", request.URL())
	if err != nil {
		return "", fmt.Errorf("failed to create executor for pod %s: %v", pod, err)
	}

	var stdout, stderr bytes.Buffer
	if err := executor.StreamWithContext(ctx, remotecommand.StreamOptions{
		Stdout: &stdout,
		Stderr: &stderr,
	}); err != nil {
		return "", fmt.Errorf("command failed in pod %s: %v: %s", pod, err, stderr.String())
	}
	return stdout.String(), nil
}

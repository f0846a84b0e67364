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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/kubeflow/medallion-bench/api/v1beta2"
	"github.com/kubeflow/medallion-bench/internal/pipeline"
	"github.com/kubeflow/medallion-bench/pkg/common"
	"github.com/kubeflow/medallion-bench/pkg/util"
)

var (
	k8sClient  client.Client
	clientset  kubernetes.Interface
	executorID int32
	followLogs bool
	tailLines  int64
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <stage|name>",
		Short: "Fetch logs of the driver pod of a pipeline SparkApplication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := pipeline.ResolveAppName(args[0])
			namespace := viper.GetString("namespace")

			cfg, err := util.BuildConfig(viper.GetString("kubeconfig"))
			if err != nil {
				return fmt.Errorf("failed to get kube config: %v", err)
			}
			k8sClient, err = util.GetK8sClient(cfg)
			if err != nil {
				return fmt.Errorf("failed to create Kubernetes client: %v", err)
			}
			clientset, err = util.GetClientset(cfg)
			if err != nil {
				return fmt.Errorf("failed to create Kubernetes clientset: %v", err)
			}

			return doLog(name, namespace, followLogs)
		},
	}

	cmd.Flags().Int32VarP(&executorID, "executor", "e", -1, "Executor id to fetch logs from instead of the driver.")
	cmd.Flags().BoolVarP(&followLogs, "follow", "f", false, "Specify if the logs should be streamed.")
	cmd.Flags().Int64Var(&tailLines, "tail", -1, "Number of lines from the end of the logs to show. Defaults to all lines.")

	return cmd
}

func doLog(name string, namespace string, stream bool) error {
	podName, err := resolvePod(name, namespace)
	if err != nil {
		return err
	}

	if stream {
		return streamLogs(podName, namespace, os.Stdout)
	}
	return printLogs(podName, namespace, os.Stdout)
}

// resolvePod picks the driver pod of the application, or the executor pod with
// the requested id.
func resolvePod(name string, namespace string) (string, error) {
	if executorID < 0 {
		key := types.NamespacedName{Namespace: namespace, Name: name}
		app := &v1beta2.SparkApplication{}
		if err := k8sClient.Get(context.TODO(), key, app); err != nil {
			return "", fmt.Errorf("failed to get SparkApplication %s: %v", name, err)
		}
		return util.GetDriverPodName(app), nil
	}

	pods := &corev1.PodList{}
	if err := k8sClient.List(context.TODO(), pods, client.InNamespace(namespace), client.MatchingLabels{
		common.LabelSparkAppName:    name,
		common.LabelSparkRole:       common.SparkRoleExecutor,
		common.LabelSparkExecutorID: strconv.Itoa(int(executorID)),
	}); err != nil {
		return "", fmt.Errorf("failed to list executor pods of SparkApplication %s: %v", name, err)
	}
	if len(pods.Items) == 0 {
		return "", fmt.Errorf("executor %d of SparkApplication %s not found", executorID, name)
	}
	return pods.Items[0].Name, nil
}

// printLogs is a one time operation that prints the fetched logs of the given pod.
func printLogs(name string, namespace string, out io.Writer) error {
	options := &corev1.PodLogOptions{}
	if tailLines >= 0 {
		options.TailLines = ptr.To(tailLines)
	}
	rawLogs, err := clientset.CoreV1().Pods(namespace).GetLogs(name, options).Do(context.TODO()).Raw()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, string(rawLogs))
	return nil
}

// streamLogs streams the logs of the given pod until there are no more logs available.
func streamLogs(name string, namespace string, out io.Writer) error {
	request := clientset.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{Follow: true})
	reader, err := request.Stream(context.TODO())
	if err != nil {
		return err
	}
	defer reader.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return err
	}
	return nil
}

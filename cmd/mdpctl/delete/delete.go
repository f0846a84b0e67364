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

package delete

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kubeflow/medallion-bench/api/v1beta2"
	"github.com/kubeflow/medallion-bench/internal/pipeline"
	"github.com/kubeflow/medallion-bench/pkg/util"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <stage|name>",
		Short: "Delete a pipeline SparkApplication",
		Long:  "Delete a pipeline SparkApplication, addressed by stage selector or by object name. Deleting a missing application is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := pipeline.ResolveAppName(args[0])
			namespace := viper.GetString("namespace")

			cfg, err := util.BuildConfig(viper.GetString("kubeconfig"))
			if err != nil {
				return fmt.Errorf("failed to get kube config: %v", err)
			}
			k8sClient, err := util.GetK8sClient(cfg)
			if err != nil {
				return fmt.Errorf("failed to create Kubernetes client: %v", err)
			}

			app := &v1beta2.SparkApplication{
				ObjectMeta: metav1.ObjectMeta{
					Name:      name,
					Namespace: namespace,
				},
			}
			if err := k8sClient.Delete(context.TODO(), app); err != nil {
				if apierrors.IsNotFound(err) {
					fmt.Printf("sparkapplication \"%s\" not found, nothing to delete\n", name)
					return nil
				}
				return fmt.Errorf("failed to delete SparkApplication %s: %v", name, err)
			}

			fmt.Printf("sparkapplication \"%s\" deleted\n", name)
			return nil
		},
	}

	return cmd
}

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

package check

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kubeflow/medallion-bench/internal/cluster"
	"github.com/kubeflow/medallion-bench/pkg/util"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print the cluster node inventory",
		Long:  "Print the cluster node inventory to judge whether the cluster can host the large ingest stage.",
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := util.BuildConfig(viper.GetString("kubeconfig"))
			if err != nil {
				return fmt.Errorf("failed to get kube config: %v", err)
			}
			k8sClient, err := util.GetK8sClient(cfg)
			if err != nil {
				return fmt.Errorf("failed to create Kubernetes client: %v", err)
			}

			cluster.Check(context.TODO(), k8sClient, os.Stdout)
			return nil
		},
	}

	return cmd
}

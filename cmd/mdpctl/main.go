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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "k8s.io/client-go/plugin/pkg/client/auth"
	ctrl "sigs.k8s.io/controller-runtime"
	logzap "sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/kubeflow/medallion-bench/cmd/mdpctl/check"
	"github.com/kubeflow/medallion-bench/cmd/mdpctl/delete"
	"github.com/kubeflow/medallion-bench/cmd/mdpctl/get"
	"github.com/kubeflow/medallion-bench/cmd/mdpctl/list"
	"github.com/kubeflow/medallion-bench/cmd/mdpctl/log"
	"github.com/kubeflow/medallion-bench/cmd/mdpctl/run"
	"github.com/kubeflow/medallion-bench/cmd/mdpctl/version"
	"github.com/kubeflow/medallion-bench/internal/pipeline"
)

var (
	development bool
	zapOptions  = logzap.Options{}
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdpctl",
		Short: "mdpctl drives the medallion data pipeline on Kubernetes",
		Long: `mdpctl drives the medallion data pipeline on Kubernetes.
It submits the Spark stages in order, watches them to a terminal state, validates
the warehouse through Trino and reports per stage timings.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLog()
		},
	}

	cmd.PersistentFlags().StringP("namespace", "n", pipeline.DefaultNamespace, "The namespace in which the pipeline runs")
	viper.BindPFlag("namespace", cmd.PersistentFlags().Lookup("namespace"))
	cmd.PersistentFlags().BoolVar(&development, "development", false, "Enable development mode console logging.")

	flagSet := flag.NewFlagSet("controller", flag.ExitOnError)
	ctrl.RegisterFlags(flagSet)
	zapOptions.BindFlags(flagSet)
	cmd.PersistentFlags().AddGoFlagSet(flagSet)
	viper.BindPFlag("kubeconfig", cmd.PersistentFlags().Lookup("kubeconfig"))

	cmd.AddCommand(run.NewCommand())
	cmd.AddCommand(get.NewCommand())
	cmd.AddCommand(list.NewCommand())
	cmd.AddCommand(log.NewCommand())
	cmd.AddCommand(delete.NewCommand())
	cmd.AddCommand(check.NewCommand())
	cmd.AddCommand(version.NewCommand())

	return cmd
}

// setupLog configures the logging system
func setupLog() {
	ctrl.SetLogger(logzap.New(
		logzap.UseFlagOptions(&zapOptions),
		func(o *logzap.Options) {
			o.Development = development
		}, func(o *logzap.Options) {
			var config zapcore.EncoderConfig
			if !development {
				config = zap.NewProductionEncoderConfig()
			} else {
				config = zap.NewDevelopmentEncoderConfig()
				config.EncodeLevel = zapcore.CapitalColorLevelEncoder
			}
			config.EncodeTime = zapcore.ISO8601TimeEncoder
			config.EncodeCaller = zapcore.ShortCallerEncoder
			if !development {
				o.Encoder = zapcore.NewJSONEncoder(config)
			} else {
				o.Encoder = zapcore.NewConsoleEncoder(config)
			}
		}),
	)
}

func main() {
	if err := NewCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

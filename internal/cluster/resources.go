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

package cluster

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

var logger = log.Log.WithName("")

// NodeInfo captures the capacity of one cluster node.
type NodeInfo struct {
	Name              string
	Ready             bool
	KubeletVersion    string
	CPU               resource.Quantity
	AllocatableCPU    resource.Quantity
	Memory            resource.Quantity
	AllocatableMemory resource.Quantity
}

// Inventory lists the cluster nodes sorted by name.
func Inventory(ctx context.Context, k8sClient client.Client) ([]NodeInfo, error) {
	nodes := &corev1.NodeList{}
	if err := k8sClient.List(ctx, nodes); err != nil {
		return nil, fmt.Errorf("failed to list nodes: %v", err)
	}

	infos := make([]NodeInfo, 0, len(nodes.Items))
	for i := range nodes.Items {
		node := &nodes.Items[i]
		infos = append(infos, NodeInfo{
			Name:              node.Name,
			Ready:             isNodeReady(node),
			KubeletVersion:    node.Status.NodeInfo.KubeletVersion,
			CPU:               node.Status.Capacity[corev1.ResourceCPU],
			AllocatableCPU:    node.Status.Allocatable[corev1.ResourceCPU],
			Memory:            node.Status.Capacity[corev1.ResourceMemory],
			AllocatableMemory: node.Status.Allocatable[corev1.ResourceMemory],
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// WriteInventory renders the node table followed by a totals row.
func WriteInventory(w io.Writer, nodes []NodeInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Ready", "Version", "CPU", "CPU Alloc", "Memory", "Memory Alloc"})

	totalCPU := resource.MustParse("0")
	totalMemory := resource.MustParse("0")
	for i := range nodes {
		node := &nodes[i]
		table.Append([]string{
			node.Name,
			fmt.Sprintf("%t", node.Ready),
			node.KubeletVersion,
			node.CPU.String(),
			node.AllocatableCPU.String(),
			formatGi(&node.Memory),
			formatGi(&node.AllocatableMemory),
		})
		if node.Ready {
			totalCPU.Add(node.AllocatableCPU)
			totalMemory.Add(node.AllocatableMemory)
		}
	}
	table.Append([]string{"TOTAL (ready)", "", "", "", totalCPU.String(), "", formatGi(&totalMemory)})
	table.Render()
}

// Check prints the node inventory. Problems are logged as warnings and never
// abort the caller.
func Check(ctx context.Context, k8sClient client.Client, w io.Writer) {
	logger.Info("Checking cluster resources")
	nodes, err := Inventory(ctx, k8sClient)
	if err != nil {
		logger.Info("Could not retrieve cluster resource info", "error", err.Error())
		return
	}

	ready := 0
	for _, node := range nodes {
		if node.Ready {
			ready++
		}
	}
	logger.Info("Available nodes", "total", len(nodes), "ready", ready)
	if ready == 0 {
		logger.Info("No ready nodes found, Spark executors will not schedule")
	}
	WriteInventory(w, nodes)
}

func isNodeReady(node *corev1.Node) bool {
	for _, condition := range node.Status.Conditions {
		if condition.Type == corev1.NodeReady {
			return condition.Status == corev1.ConditionTrue
		}
	}
	return false
}

func formatGi(quantity *resource.Quantity) string {
	return fmt.Sprintf("%dGi", quantity.Value()/(1<<30))
}

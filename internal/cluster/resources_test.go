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

package cluster_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/kubeflow/medallion-bench/internal/cluster"
	"github.com/kubeflow/medallion-bench/pkg/util"
)

func node(name string, ready bool, cpu string, memory string) *corev1.Node {
	status := corev1.ConditionFalse
	if ready {
		status = corev1.ConditionTrue
	}
	resources := corev1.ResourceList{
		corev1.ResourceCPU:    resource.MustParse(cpu),
		corev1.ResourceMemory: resource.MustParse(memory),
	}
	return &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Status: corev1.NodeStatus{
			Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeReady, Status: status},
			},
			Capacity:    resources,
			Allocatable: resources,
			NodeInfo: corev1.NodeSystemInfo{
				KubeletVersion: "v1.32.5",
			},
		},
	}
}

var _ = Describe("Inventory", func() {
	ctx := context.Background()

	It("should list nodes sorted by name with their capacity", func() {
		k8sClient := fake.NewClientBuilder().WithScheme(util.Scheme()).WithObjects(
			node("worker-b", true, "64", "256Gi"),
			node("worker-a", false, "32", "128Gi"),
		).Build()

		nodes, err := cluster.Inventory(ctx, k8sClient)
		Expect(err).NotTo(HaveOccurred())
		Expect(nodes).To(HaveLen(2))
		Expect(nodes[0].Name).To(Equal("worker-a"))
		Expect(nodes[0].Ready).To(BeFalse())
		Expect(nodes[1].Name).To(Equal("worker-b"))
		Expect(nodes[1].Ready).To(BeTrue())
		Expect(nodes[1].CPU.String()).To(Equal("64"))
		Expect(nodes[1].KubeletVersion).To(Equal("v1.32.5"))
	})

	It("should return an empty inventory for an empty cluster", func() {
		k8sClient := fake.NewClientBuilder().WithScheme(util.Scheme()).Build()
		nodes, err := cluster.Inventory(ctx, k8sClient)
		Expect(err).NotTo(HaveOccurred())
		Expect(nodes).To(BeEmpty())
	})
})

var _ = Describe("WriteInventory", func() {
	It("should total only the ready nodes", func() {
		nodes := []cluster.NodeInfo{
			{
				Name:              "worker-a",
				Ready:             true,
				KubeletVersion:    "v1.32.5",
				CPU:               resource.MustParse("64"),
				AllocatableCPU:    resource.MustParse("63"),
				Memory:            resource.MustParse("256Gi"),
				AllocatableMemory: resource.MustParse("250Gi"),
			},
			{
				Name:              "worker-b",
				Ready:             false,
				KubeletVersion:    "v1.32.5",
				CPU:               resource.MustParse("64"),
				AllocatableCPU:    resource.MustParse("63"),
				Memory:            resource.MustParse("256Gi"),
				AllocatableMemory: resource.MustParse("250Gi"),
			},
		}

		var buf bytes.Buffer
		cluster.WriteInventory(&buf, nodes)
		out := buf.String()
		Expect(out).To(ContainSubstring("worker-a"))
		Expect(out).To(ContainSubstring("worker-b"))
		Expect(out).To(ContainSubstring("TOTAL (ready)"))
		Expect(out).To(ContainSubstring("63"))
		Expect(out).To(ContainSubstring("250Gi"))
	})
})

var _ = Describe("Check", func() {
	It("should print the inventory without failing", func() {
		k8sClient := fake.NewClientBuilder().WithScheme(util.Scheme()).WithObjects(
			node("worker-a", true, "64", "256Gi"),
		).Build()

		var buf bytes.Buffer
		cluster.Check(context.Background(), k8sClient, &buf)
		Expect(buf.String()).To(ContainSubstring("worker-a"))
	})
})

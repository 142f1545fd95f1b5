// Package clusterinfo scans the Kubernetes cluster and produces the
// GPU capacity view the VC accounting reads from.
package clusterinfo

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/lanternml/cluster-core/internal/domain/vc"
)

const (
	// gpuResourceName is the extended resource GPUs are exposed under on
	// nodes and requested under in pod specs.
	gpuResourceName = "nvidia.com/gpu"
	// gpuTypeLabel names the GPU model on a node; nodes without it fall
	// back to a single generic bucket.
	gpuTypeLabel   = "gpuType"
	defaultGpuType = "gpu"
)

// Collector builds ClusterStatus snapshots from the node and pod state.
type Collector struct {
	client kubernetes.Interface
}

func NewCollector(client kubernetes.Interface) *Collector {
	return &Collector{client: client}
}

// Collect lists every node and its resident pods and aggregates GPU
// counts per GPU type. A cordoned node's idle GPUs count as reserved
// rather than available.
func (c *Collector) Collect(ctx context.Context) (*vc.ClusterStatus, error) {
	nodes, err := c.client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	usedByNode, err := c.gpuUsageByNode(ctx)
	if err != nil {
		return nil, err
	}

	status := &vc.ClusterStatus{
		GPUCapacity:  map[string]int{},
		GPUAvailable: map[string]int{},
		GPUReserved:  map[string]int{},
	}

	for _, node := range nodes.Items {
		gpuType := node.Labels[gpuTypeLabel]
		if gpuType == "" {
			gpuType = defaultGpuType
		}

		capacity := gpuCount(node.Status.Capacity)
		used := usedByNode[node.Name]
		idle := capacity - used
		if idle < 0 {
			idle = 0
		}

		status.GPUCapacity[gpuType] += capacity
		if node.Spec.Unschedulable {
			status.GPUReserved[gpuType] += idle
		} else {
			status.GPUAvailable[gpuType] += idle
		}
		if _, ok := status.GPUAvailable[gpuType]; !ok {
			status.GPUAvailable[gpuType] = 0
		}
		if _, ok := status.GPUReserved[gpuType]; !ok {
			status.GPUReserved[gpuType] = 0
		}

		status.NodeStatus = append(status.NodeStatus, vc.NodeStatus{
			Name:          node.Name,
			Labels:        node.Labels,
			GPUCapacity:   map[string]int{gpuType: capacity},
			GPUUsed:       map[string]int{gpuType: used},
			Unschedulable: node.Spec.Unschedulable,
			InternalIP:    internalIP(&node),
		})
	}
	return status, nil
}

// gpuUsageByNode sums the GPU requests of every pod still holding
// resources, keyed by node name.
func (c *Collector) gpuUsageByNode(ctx context.Context) (map[string]int, error) {
	pods, err := c.client.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	used := map[string]int{}
	for _, pod := range pods.Items {
		if pod.Spec.NodeName == "" {
			continue
		}
		if pod.Status.Phase == corev1.PodSucceeded || pod.Status.Phase == corev1.PodFailed {
			continue
		}
		for _, container := range pod.Spec.Containers {
			used[pod.Spec.NodeName] += gpuCount(container.Resources.Requests)
		}
	}
	return used, nil
}

func gpuCount(resources corev1.ResourceList) int {
	quantity, ok := resources[corev1.ResourceName(gpuResourceName)]
	if !ok {
		return 0
	}
	return int(quantity.Value())
}

func internalIP(node *corev1.Node) string {
	for _, addr := range node.Status.Addresses {
		if addr.Type == corev1.NodeInternalIP {
			return addr.Address
		}
	}
	return ""
}

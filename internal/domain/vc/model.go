package vc

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// VirtualCluster is a named capacity partition with a configured
// per-GPU-type quota. Computed capacity fields are never stored; they
// are derived on every read from the live job set.
type VirtualCluster struct {
	ID       uint           `gorm:"primaryKey;column:id" json:"-"`
	VcName   string         `gorm:"size:255;uniqueIndex;not null;column:vc_name" json:"vcName"`
	Quota    datatypes.JSON `gorm:"column:quota" json:"quota"`
	Metadata datatypes.JSON `gorm:"column:metadata" json:"metadata"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (VirtualCluster) TableName() string {
	return "virtual_clusters"
}

// QuotaMap decodes the configured quota into per-GPU-type counts. An
// empty quota decodes into an empty map.
func (v *VirtualCluster) QuotaMap() (map[string]int, error) {
	quota := map[string]int{}
	if len(v.Quota) == 0 {
		return quota, nil
	}
	if err := json.Unmarshal(v.Quota, &quota); err != nil {
		return nil, err
	}
	return quota, nil
}

// Storage is a storage endpoint registered for a VC.
type Storage struct {
	ID               uint           `gorm:"primaryKey;column:id" json:"-"`
	VcName           string         `gorm:"size:255;not null;index;column:vc_name" json:"vcName"`
	URL              string         `gorm:"size:1024;not null;column:url" json:"url"`
	StorageType      string         `gorm:"size:50;column:storage_type" json:"storageType"`
	Metadata         datatypes.JSON `gorm:"column:metadata" json:"metadata"`
	DefaultMountPath string         `gorm:"size:1024;column:default_mount_path" json:"defaultMountPath"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Storage) TableName() string {
	return "storages"
}

// NodeStatus is one node's resource view inside the cluster status.
type NodeStatus struct {
	Name          string         `json:"name"`
	Labels        map[string]string `json:"labels,omitempty"`
	GPUCapacity   map[string]int `json:"gpu_capacity"`
	GPUUsed       map[string]int `json:"gpu_used"`
	Unschedulable bool           `json:"unschedulable"`
	InternalIP    string         `json:"InternalIP,omitempty"`
}

// ClusterStatus is the cluster-wide GPU view produced by the node
// scanner and consumed verbatim by VC capacity reads.
type ClusterStatus struct {
	GPUCapacity  map[string]int `json:"gpu_capacity"`
	GPUAvailable map[string]int `json:"gpu_avaliable"`
	GPUReserved  map[string]int `json:"gpu_reserved"`
	NodeStatus   []NodeStatus   `json:"node_status"`
}

// ClusterStatusRecord is the persisted form of ClusterStatus.
type ClusterStatusRecord struct {
	ID        uint           `gorm:"primaryKey;column:id"`
	Status    datatypes.JSON `gorm:"column:status"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (ClusterStatusRecord) TableName() string {
	return "cluster_status"
}

// UserGpuUsage is one user's aggregate GPU usage inside a VC view.
type UserGpuUsage struct {
	UserName string         `json:"userName"`
	UserGPU  map[string]int `json:"userGPU"`
}

// View is the computed, per-read VC capacity report.
type View struct {
	VcName   string         `json:"vcName"`
	Quota    datatypes.JSON `json:"quota"`
	Metadata datatypes.JSON `json:"metadata"`
	Admin    bool           `json:"admin,omitempty"`

	GpuCapacity        map[string]int `json:"gpu_capacity"`
	GpuUsed            map[string]int `json:"gpu_used"`
	GpuPreemptableUsed map[string]int `json:"gpu_preemptable_used"`
	GpuAvailable       map[string]int `json:"gpu_avaliable"`
	GpuUnschedulable   map[string]int `json:"gpu_unschedulable"`

	// AvaliableJobNum carries the running-job count. The field name
	// is part of the public payload and is kept as-is.
	AvaliableJobNum int `json:"AvaliableJobNum"`

	NodeStatus            []NodeStatus   `json:"node_status"`
	UserStatus            []UserGpuUsage `json:"user_status"`
	UserStatusPreemptable []UserGpuUsage `json:"user_status_preemptable"`
}

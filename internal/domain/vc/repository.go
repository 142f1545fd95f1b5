package vc

import "time"

// Repository is the VC and cluster-status store contract.
type Repository interface {
	ListVCs() ([]VirtualCluster, error)
	AddVC(vcName string, quota, metadata string) error
	UpdateVC(vcName string, quota, metadata string) error
	DeleteVC(vcName string) error

	// GetClusterStatus returns the latest persisted cluster view and
	// when it was produced.
	GetClusterStatus() (*ClusterStatus, time.Time, error)
	SetClusterStatus(status *ClusterStatus) error

	AddStorage(s *Storage) error
	ListStorages(vcName string) ([]Storage, error)
	UpdateStorage(s *Storage) error
	DeleteStorage(vcName, url string) error
}

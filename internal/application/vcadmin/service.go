// Package vcadmin holds the administrative plane: VC definitions,
// storage endpoints and ACL grants.
package vcadmin

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/vc"
)

var (
	ErrAccessDenied = errors.New("access denied")
	// ErrBadQuota rejects a quota payload that does not decode into
	// per-GPU-type counts.
	ErrBadQuota = errors.New("quota is not a per-gpu-type count map")
)

// Service gates VC, storage and ACE mutations behind the permission
// ladder. VC definitions are cluster-wide, so their writes require
// cluster admin; storage and ACE writes require admin on the resource.
type Service struct {
	vcs    vc.Repository
	access auth.AccessChecker
	aces   auth.AceStore
}

func NewService(vcs vc.Repository, access auth.AccessChecker, aces auth.AceStore) *Service {
	return &Service{vcs: vcs, access: access, aces: aces}
}

func (s *Service) AddVC(userName, vcName, quota, metadata string) error {
	if !s.access.IsClusterAdmin(userName) {
		return ErrAccessDenied
	}
	if err := validateQuota(quota); err != nil {
		return err
	}
	if err := s.vcs.AddVC(vcName, quota, metadata); err != nil {
		return fmt.Errorf("add vc %s: %w", vcName, err)
	}
	return nil
}

func (s *Service) UpdateVC(userName, vcName, quota, metadata string) error {
	if !s.access.IsClusterAdmin(userName) {
		return ErrAccessDenied
	}
	if err := validateQuota(quota); err != nil {
		return err
	}
	if err := s.vcs.UpdateVC(vcName, quota, metadata); err != nil {
		return fmt.Errorf("update vc %s: %w", vcName, err)
	}
	return nil
}

func (s *Service) DeleteVC(userName, vcName string) error {
	if !s.access.IsClusterAdmin(userName) {
		return ErrAccessDenied
	}
	if err := s.vcs.DeleteVC(vcName); err != nil {
		return fmt.Errorf("delete vc %s: %w", vcName, err)
	}
	return nil
}

func (s *Service) AddStorage(userName string, storage *vc.Storage) error {
	if !s.access.IsClusterAdmin(userName) {
		return ErrAccessDenied
	}
	if err := s.vcs.AddStorage(storage); err != nil {
		return fmt.Errorf("add storage %s to vc %s: %w", storage.URL, storage.VcName, err)
	}
	return nil
}

// ListStorages returns a VC's storage endpoints for any VC user; others
// get an empty list rather than an error.
func (s *Service) ListStorages(userName, vcName string) ([]vc.Storage, error) {
	if !s.access.HasAccess(userName, auth.ResourceTypeVC, vcName, auth.PermissionUser) {
		return []vc.Storage{}, nil
	}
	storages, err := s.vcs.ListStorages(vcName)
	if err != nil {
		return nil, fmt.Errorf("list storages of vc %s: %w", vcName, err)
	}
	return storages, nil
}

func (s *Service) UpdateStorage(userName string, storage *vc.Storage) error {
	if !s.access.HasAccess(userName, auth.ResourceTypeVC, storage.VcName, auth.PermissionAdmin) {
		return ErrAccessDenied
	}
	if err := s.vcs.UpdateStorage(storage); err != nil {
		return fmt.Errorf("update storage %s of vc %s: %w", storage.URL, storage.VcName, err)
	}
	return nil
}

func (s *Service) DeleteStorage(userName, vcName, url string) error {
	if !s.access.HasAccess(userName, auth.ResourceTypeVC, vcName, auth.PermissionAdmin) {
		return ErrAccessDenied
	}
	if err := s.vcs.DeleteStorage(vcName, url); err != nil {
		return fmt.Errorf("delete storage %s of vc %s: %w", url, vcName, err)
	}
	return nil
}

// UpdateAce grants an identity a permission on a resource. Requires
// admin on that resource, so a VC admin can delegate within their VC
// but cannot touch another VC or the cluster entry.
func (s *Service) UpdateAce(userName, identityName string, resourceType auth.ResourceType, resourceName string, permission auth.Permission) error {
	if !s.access.HasAccess(userName, resourceType, resourceName, auth.PermissionAdmin) {
		return ErrAccessDenied
	}
	return s.aces.UpdateAce(identityName, auth.ResourceAclPath(resourceType, resourceName), permission)
}

func (s *Service) DeleteAce(userName, identityName string, resourceType auth.ResourceType, resourceName string) error {
	if !s.access.HasAccess(userName, resourceType, resourceName, auth.PermissionAdmin) {
		return ErrAccessDenied
	}
	return s.aces.DeleteAce(identityName, auth.ResourceAclPath(resourceType, resourceName))
}

func validateQuota(quota string) error {
	if quota == "" {
		return nil
	}
	counts := map[string]int{}
	if err := json.Unmarshal([]byte(quota), &counts); err != nil {
		return fmt.Errorf("%w: %v", ErrBadQuota, err)
	}
	return nil
}

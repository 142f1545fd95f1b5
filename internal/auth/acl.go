package auth

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AclEntry grants an identity (a user or one of its groups) a permission
// level on a resource path such as "vc:research" or "cluster".
type AclEntry struct {
	ID           uint       `gorm:"primaryKey;column:id"`
	IdentityName string     `gorm:"size:255;not null;index:idx_acl_identity_resource,unique"`
	Resource     string     `gorm:"size:255;not null;index:idx_acl_identity_resource,unique"`
	Permission   Permission `gorm:"not null"`
}

func (AclEntry) TableName() string {
	return "acl_entries"
}

// ResourceAclPath builds the ACL resource key for a resource.
func ResourceAclPath(resourceType ResourceType, resourceName string) string {
	if resourceType == ResourceTypeCluster {
		return "cluster"
	}
	return string(resourceType) + ":" + resourceName
}

// GroupLister resolves the group names an identity belongs to. Lookup
// failures must deny, not grant.
type GroupLister interface {
	GroupsOf(userName string) ([]string, error)
}

// AceStore mutates ACL entries. Checks and mutations share the same
// table, so a grant is visible to the next HasAccess call.
type AceStore interface {
	UpdateAce(identityName, resource string, permission Permission) error
	DeleteAce(identityName, resource string) error
}

// AclChecker evaluates access against the ACL table. A cluster-level
// grant implies every resource.
type AclChecker struct {
	db     *gorm.DB
	groups GroupLister
}

func NewAclChecker(db *gorm.DB, groups GroupLister) *AclChecker {
	return &AclChecker{db: db, groups: groups}
}

func (c *AclChecker) HasAccess(userName string, resourceType ResourceType, resourceName string, required Permission) bool {
	if c.IsClusterAdmin(userName) {
		return true
	}
	granted, err := c.maxPermission(userName, ResourceAclPath(resourceType, resourceName))
	if err != nil {
		log.Printf("acl lookup failed for %s on %s:%s: %v", userName, resourceType, resourceName, err)
		return false
	}
	return granted >= required
}

func (c *AclChecker) IsClusterAdmin(userName string) bool {
	granted, err := c.maxPermission(userName, ResourceAclPath(ResourceTypeCluster, ""))
	if err != nil {
		log.Printf("cluster acl lookup failed for %s: %v", userName, err)
		return false
	}
	return granted >= PermissionAdmin
}

// UpdateAce upserts one identity's permission on a resource path.
func (c *AclChecker) UpdateAce(identityName, resource string, permission Permission) error {
	entry := AclEntry{
		IdentityName: identityName,
		Resource:     resource,
		Permission:   permission,
	}
	err := c.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_name"}, {Name: "resource"}},
			DoUpdates: clause.AssignmentColumns([]string{"permission"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("update ace for %s on %s: %w", identityName, resource, err)
	}
	return nil
}

// DeleteAce removes one identity's entry for a resource path. Deleting
// an absent entry is not an error.
func (c *AclChecker) DeleteAce(identityName, resource string) error {
	err := c.db.
		Where("identity_name = ? AND resource = ?", identityName, resource).
		Delete(&AclEntry{}).Error
	if err != nil {
		return fmt.Errorf("delete ace for %s on %s: %w", identityName, resource, err)
	}
	return nil
}

func (c *AclChecker) maxPermission(userName, resource string) (Permission, error) {
	identities := []string{userName}
	if c.groups != nil {
		groups, err := c.groups.GroupsOf(userName)
		if err != nil {
			return PermissionNone, err
		}
		identities = append(identities, groups...)
	}

	var entries []AclEntry
	err := c.db.
		Where("identity_name IN ? AND resource = ?", identities, resource).
		Find(&entries).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PermissionNone, err
	}

	granted := PermissionNone
	for _, e := range entries {
		if e.Permission > granted {
			granted = e.Permission
		}
	}
	return granted, nil
}

// Package auth defines the permission ladder and access-check contract
// used by every gated operation in the platform.
package auth

// Permission is an access level on a resource. Levels are ordered and
// each higher level implies the lower ones.
type Permission int

const (
	PermissionNone Permission = iota
	PermissionUser
	PermissionCollaborator
	PermissionAdmin
)

func (p Permission) String() string {
	switch p {
	case PermissionUser:
		return "user"
	case PermissionCollaborator:
		return "collaborator"
	case PermissionAdmin:
		return "admin"
	default:
		return "none"
	}
}

// ResourceType identifies the kind of resource an ACL applies to.
type ResourceType string

const (
	ResourceTypeVC      ResourceType = "vc"
	ResourceTypeCluster ResourceType = "cluster"
)

// AccessChecker evaluates whether a principal holds a permission level on
// a resource. Implementations must treat evaluation failures as denial.
type AccessChecker interface {
	HasAccess(userName string, resourceType ResourceType, resourceName string, required Permission) bool
	IsClusterAdmin(userName string) bool
}

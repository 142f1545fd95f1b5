// Package priority arbitrates job priorities: a pure clamping policy
// per permission tier, and an authorized bulk update over the job store.
package priority

import "github.com/lanternml/cluster-core/internal/auth"

// Priority bounds per permission tier. Anyone below User collapses to
// the single default point.
const (
	DefaultPriority = 100

	userPriorityMin = 100
	userPriorityMax = 200

	adminPriorityMin = 1
	adminPriorityMax = 1000
)

// Adjust clamps a requested priority into the range allowed for the
// permission tier. Total: every input maps to a valid priority.
func Adjust(requested int, permission auth.Permission) int {
	low, high := DefaultPriority, DefaultPriority
	switch permission {
	case auth.PermissionUser:
		low, high = userPriorityMin, userPriorityMax
	case auth.PermissionAdmin:
		low, high = adminPriorityMin, adminPriorityMax
	}

	if requested > high {
		return high
	}
	if requested < low {
		return low
	}
	return requested
}

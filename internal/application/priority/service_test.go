package priority

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/repository/mock_repository"
	"github.com/stretchr/testify/assert"
)

func setupPriorityMocks(t *testing.T) (*Service, *mock_repository.MockJobRepository, *mock_repository.MockAccessChecker) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJobs := mock_repository.NewMockJobRepository(ctrl)
	mockAccess := mock_repository.NewMockAccessChecker(ctrl)
	return NewService(mockJobs, mockAccess), mockJobs, mockAccess
}

func TestUpdateJobPrioritiesOwnerClampedToUserRange(t *testing.T) {
	svc, mockJobs, mockAccess := setupPriorityMocks(t)

	mockJobs.EXPECT().GetByJobID("j1").
		Return([]job.Job{{JobID: "j1", UserName: "alice", VcName: "research"}}, nil)
	mockAccess.EXPECT().
		HasAccess("alice", auth.ResourceTypeVC, "research", auth.PermissionAdmin).
		Return(false)
	mockJobs.EXPECT().UpdateJobPriorities(map[string]int{"j1": 200}).Return(nil)

	err := svc.UpdateJobPriorities("alice", map[string]int{"j1": 900})
	assert.NoError(t, err)
}

func TestUpdateJobPrioritiesAdminKeepsWideRange(t *testing.T) {
	svc, mockJobs, mockAccess := setupPriorityMocks(t)

	mockJobs.EXPECT().GetByJobID("j1").
		Return([]job.Job{{JobID: "j1", UserName: "bob", VcName: "research"}}, nil)
	mockAccess.EXPECT().
		HasAccess("root", auth.ResourceTypeVC, "research", auth.PermissionAdmin).
		Return(true)
	mockJobs.EXPECT().UpdateJobPriorities(map[string]int{"j1": 900}).Return(nil)

	err := svc.UpdateJobPriorities("root", map[string]int{"j1": 900})
	assert.NoError(t, err)
}

func TestUpdateJobPrioritiesUnauthorizedFailsWholeBatch(t *testing.T) {
	svc, mockJobs, mockAccess := setupPriorityMocks(t)

	mockJobs.EXPECT().GetByJobID("j1").
		Return([]job.Job{{JobID: "j1", UserName: "bob", VcName: "research"}}, nil)
	mockAccess.EXPECT().
		HasAccess("mallory", auth.ResourceTypeVC, "research", auth.PermissionAdmin).
		Return(false)
	// No UpdateJobPriorities expectation: nothing may be persisted.

	err := svc.UpdateJobPriorities("mallory", map[string]int{"j1": 150})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateJobPrioritiesSkipsMissingJobs(t *testing.T) {
	svc, mockJobs, _ := setupPriorityMocks(t)

	mockJobs.EXPECT().GetByJobID("ghost").Return(nil, nil)

	err := svc.UpdateJobPriorities("alice", map[string]int{"ghost": 120})
	assert.NoError(t, err, "non-existent jobs are skipped, not failed")
}

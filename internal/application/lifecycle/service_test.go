package lifecycle

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/repository/mock_repository"
)

type fakeInvalidator struct {
	vcNames []string
}

func (f *fakeInvalidator) Invalidate(vcName string) {
	f.vcNames = append(f.vcNames, vcName)
}

func setupLifecycle(t *testing.T) (*Service, *mock_repository.MockJobRepository, *mock_repository.MockAccessChecker, *fakeInvalidator) {
	ctrl := gomock.NewController(t)
	jobs := mock_repository.NewMockJobRepository(ctrl)
	access := mock_repository.NewMockAccessChecker(ctrl)
	cache := &fakeInvalidator{}
	return NewService(jobs, access, cache), jobs, access, cache
}

func trainingJob(id, owner, status string) job.Job {
	return job.Job{
		JobID:       id,
		FamilyToken: "family-" + id,
		IsParent:    false,
		UserName:    owner,
		VcName:      "research",
		JobType:     job.TypeTraining,
		JobStatus:   job.JobStatus(status),
	}
}

func TestApproveJob(t *testing.T) {
	t.Run("admin approves unapproved job", func(t *testing.T) {
		svc, jobs, access, cache := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "unapproved")}, nil)
		access.EXPECT().HasAccess("bob", auth.ResourceTypeVC, "research", auth.PermissionAdmin).Return(true)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "queued").Return(nil)

		err := svc.ApproveJob("bob", "j1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"research"}, cache.vcNames)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc, jobs, access, cache := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "unapproved")}, nil)
		access.EXPECT().HasAccess("alice", auth.ResourceTypeVC, "research", auth.PermissionAdmin).Return(false)

		err := svc.ApproveJob("alice", "j1")

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, cache.vcNames)
	})

	t.Run("wrong status is a no-op failure", func(t *testing.T) {
		svc, jobs, _, cache := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "running")}, nil)

		err := svc.ApproveJob("bob", "j1")

		assert.ErrorIs(t, err, ErrInvalidJobState)
		assert.Empty(t, cache.vcNames)
	})

	t.Run("missing job", func(t *testing.T) {
		svc, jobs, _, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("nope").Return(nil, nil)

		err := svc.ApproveJob("bob", "nope")

		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestKillJob(t *testing.T) {
	t.Run("owner kills single job", func(t *testing.T) {
		svc, jobs, _, cache := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "running")}, nil)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "killing").Return(nil)

		err := svc.KillJob("alice", "j1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"research"}, cache.vcNames)
	})

	t.Run("parent kill fans out over the family", func(t *testing.T) {
		svc, jobs, _, cache := setupLifecycle(t)
		parent := trainingJob("j1", "alice", "running")
		parent.IsParent = true
		child := trainingJob("j2", "alice", "running")
		child.FamilyToken = parent.FamilyToken
		companion := trainingJob("j3", "alice", "running")
		companion.FamilyToken = parent.FamilyToken
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{parent}, nil)
		jobs.EXPECT().GetByFamilyToken(parent.FamilyToken).Return([]job.Job{parent, child, companion}, nil)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "killing").Return(nil)
		jobs.EXPECT().UpdateJobTextField("j2", "jobStatus", "killing").Return(nil)
		jobs.EXPECT().UpdateJobTextField("j3", "jobStatus", "killing").Return(nil)

		err := svc.KillJob("alice", "j1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"research"}, cache.vcNames)
	})

	t.Run("fan-out attempts every sibling and reports partial failure", func(t *testing.T) {
		svc, jobs, _, cache := setupLifecycle(t)
		parent := trainingJob("j1", "alice", "running")
		parent.IsParent = true
		child := trainingJob("j2", "alice", "running")
		child.FamilyToken = parent.FamilyToken
		companion := trainingJob("j3", "alice", "running")
		companion.FamilyToken = parent.FamilyToken
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{parent}, nil)
		jobs.EXPECT().GetByFamilyToken(parent.FamilyToken).Return([]job.Job{parent, child, companion}, nil)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "killing").Return(nil)
		jobs.EXPECT().UpdateJobTextField("j2", "jobStatus", "killing").Return(errors.New("connection reset"))
		jobs.EXPECT().UpdateJobTextField("j3", "jobStatus", "killing").Return(nil)

		err := svc.KillJob("alice", "j1")

		assert.ErrorIs(t, err, ErrPartialKill)
		assert.Empty(t, cache.vcNames)
	})

	t.Run("admin may kill another user's job", func(t *testing.T) {
		svc, jobs, access, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "queued")}, nil)
		access.EXPECT().HasAccess("bob", auth.ResourceTypeVC, "research", auth.PermissionAdmin).Return(true)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "killing").Return(nil)

		err := svc.KillJob("bob", "j1")

		assert.NoError(t, err)
	})

	t.Run("finished job cannot be killed again", func(t *testing.T) {
		svc, jobs, _, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "finished")}, nil)

		err := svc.KillJob("alice", "j1")

		assert.ErrorIs(t, err, ErrInvalidJobState)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc, jobs, access, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "running")}, nil)
		access.EXPECT().HasAccess("mallory", auth.ResourceTypeVC, "research", auth.PermissionAdmin).Return(false)

		err := svc.KillJob("mallory", "j1")

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestPauseJob(t *testing.T) {
	t.Run("owner pauses running job", func(t *testing.T) {
		svc, jobs, _, cache := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "running")}, nil)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "pausing").Return(nil)

		err := svc.PauseJob("alice", "j1")

		assert.NoError(t, err)
		assert.Empty(t, cache.vcNames)
	})

	t.Run("paused job cannot be paused again", func(t *testing.T) {
		svc, jobs, _, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "paused")}, nil)

		err := svc.PauseJob("alice", "j1")

		assert.ErrorIs(t, err, ErrInvalidJobState)
	})
}

func TestResumeJob(t *testing.T) {
	t.Run("owner resumes paused job into approval queue", func(t *testing.T) {
		svc, jobs, _, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "paused")}, nil)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "unapproved").Return(nil)

		err := svc.ResumeJob("alice", "j1")

		assert.NoError(t, err)
	})

	t.Run("collaborator may resume", func(t *testing.T) {
		svc, jobs, access, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "paused")}, nil)
		access.EXPECT().HasAccess("carol", auth.ResourceTypeVC, "research", auth.PermissionCollaborator).Return(true)
		jobs.EXPECT().UpdateJobTextField("j1", "jobStatus", "unapproved").Return(nil)

		err := svc.ResumeJob("carol", "j1")

		assert.NoError(t, err)
	})

	t.Run("only paused jobs resume", func(t *testing.T) {
		svc, jobs, _, _ := setupLifecycle(t)
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{trainingJob("j1", "alice", "running")}, nil)

		err := svc.ResumeJob("alice", "j1")

		assert.ErrorIs(t, err, ErrInvalidJobState)
	})
}

package joblist

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/repository/mock_repository"
)

type fakePending struct {
	jobs []job.Job
	err  error
}

func (f *fakePending) Pending(vcName string) ([]job.Job, error) {
	return f.jobs, f.err
}

func setupJoblist(t *testing.T, pending *fakePending) (*Service, *mock_repository.MockJobRepository, *mock_repository.MockAccessChecker) {
	ctrl := gomock.NewController(t)
	jobs := mock_repository.NewMockJobRepository(ctrl)
	access := mock_repository.NewMockAccessChecker(ctrl)
	return NewService(jobs, pending, access), jobs, access
}

func listedJob(id, owner, status string) job.Job {
	return job.Job{
		JobID:     id,
		UserName:  owner,
		VcName:    "research",
		JobStatus: job.JobStatus(status),
	}
}

func TestGetJobList(t *testing.T) {
	t.Run("collaborator asking for all owners gets the whole pending set", func(t *testing.T) {
		pending := &fakePending{jobs: []job.Job{
			listedJob("j1", "alice", "queued"),
			listedJob("j2", "bob", "running"),
		}}
		svc, _, access := setupJoblist(t, pending)
		access.EXPECT().HasAccess("carol", auth.ResourceTypeVC, "research", auth.PermissionCollaborator).Return(true)

		jobs := svc.GetJobList("carol", "research", OwnerAll, 0)

		assert.Len(t, jobs, 2)
	})

	t.Run("plain user gets own pending jobs plus settled history", func(t *testing.T) {
		pending := &fakePending{jobs: []job.Job{
			listedJob("j1", "alice", "queued"),
			listedJob("j2", "bob", "running"),
		}}
		svc, jobs, access := setupJoblist(t, pending)
		access.EXPECT().HasAccess("alice", auth.ResourceTypeVC, "research", auth.PermissionCollaborator).Return(false)
		jobs.EXPECT().ListJobs("alice", "research", job.PendingStatuses, 20).
			Return([]job.Job{listedJob("j3", "alice", "finished")}, nil)

		listing := svc.GetJobList("alice", "research", OwnerAll, 20)

		assert.Len(t, listing, 2)
		assert.Equal(t, "j1", listing[0].JobID)
		assert.Equal(t, "j3", listing[1].JobID)
	})

	t.Run("specific owner request never widens to the full set", func(t *testing.T) {
		pending := &fakePending{jobs: []job.Job{
			listedJob("j1", "alice", "queued"),
			listedJob("j2", "bob", "running"),
		}}
		svc, jobs, access := setupJoblist(t, pending)
		access.EXPECT().HasAccess("alice", auth.ResourceTypeVC, "research", auth.PermissionCollaborator).Return(true)
		jobs.EXPECT().ListJobs("alice", "research", job.PendingStatuses, 0).Return(nil, nil)

		listing := svc.GetJobList("alice", "research", "alice", 0)

		assert.Len(t, listing, 1)
		assert.Equal(t, "j1", listing[0].JobID)
	})

	t.Run("store failure degrades to an empty list", func(t *testing.T) {
		pending := &fakePending{err: errors.New("connection refused")}
		svc, _, access := setupJoblist(t, pending)
		access.EXPECT().HasAccess("alice", auth.ResourceTypeVC, "research", auth.PermissionCollaborator).Return(false)

		listing := svc.GetJobList("alice", "research", "alice", 0)

		assert.NotNil(t, listing)
		assert.Empty(t, listing)
	})
}

func TestGetJobStatus(t *testing.T) {
	t.Run("returns the polling summary", func(t *testing.T) {
		svc, jobs, _ := setupJoblist(t, &fakePending{})
		when := time.Date(2019, 7, 26, 10, 0, 0, 0, time.UTC)
		j := listedJob("j1", "alice", "failed")
		j.JobTime = when
		j.ErrorMsg = "image pull backoff"
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{j}, nil)

		summary, err := svc.GetJobStatus("j1")

		assert.NoError(t, err)
		assert.Equal(t, &StatusSummary{
			JobStatus: job.StatusFailed,
			JobTime:   when,
			ErrorMsg:  "image pull backoff",
		}, summary)
	})

	t.Run("missing job yields nil", func(t *testing.T) {
		svc, jobs, _ := setupJoblist(t, &fakePending{})
		jobs.EXPECT().GetByJobID("nope").Return(nil, nil)

		summary, err := svc.GetJobStatus("nope")

		assert.NoError(t, err)
		assert.Nil(t, summary)
	})
}

func TestGetJobDetail(t *testing.T) {
	t.Run("owner sees the decoded log", func(t *testing.T) {
		svc, jobs, _ := setupJoblist(t, &fakePending{})
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{listedJob("j1", "alice", "running")}, nil)
		encoded := base64.StdEncoding.EncodeToString([]byte("step 100: loss=0.02\n"))
		jobs.EXPECT().GetJobTextField("j1", "jobLog").Return(encoded, nil)

		detail, err := svc.GetJobDetail("alice", "j1")

		assert.NoError(t, err)
		assert.Equal(t, "step 100: loss=0.02\n", detail.Log)
	})

	t.Run("plain text log passes through untouched", func(t *testing.T) {
		svc, jobs, _ := setupJoblist(t, &fakePending{})
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{listedJob("j1", "alice", "running")}, nil)
		jobs.EXPECT().GetJobTextField("j1", "jobLog").Return("plain text, not base64!", nil)

		detail, err := svc.GetJobDetail("alice", "j1")

		assert.NoError(t, err)
		assert.Equal(t, "plain text, not base64!", detail.Log)
	})

	t.Run("log fetch failure falls back to a sentinel", func(t *testing.T) {
		svc, jobs, _ := setupJoblist(t, &fakePending{})
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{listedJob("j1", "alice", "running")}, nil)
		jobs.EXPECT().GetJobTextField("j1", "jobLog").Return("", errors.New("timeout"))

		detail, err := svc.GetJobDetail("alice", "j1")

		assert.NoError(t, err)
		assert.Equal(t, "fail-to-get-logs", detail.Log)
	})

	t.Run("stranger gets nothing", func(t *testing.T) {
		svc, jobs, access := setupJoblist(t, &fakePending{})
		jobs.EXPECT().GetByJobID("j1").Return([]job.Job{listedJob("j1", "alice", "running")}, nil)
		access.EXPECT().HasAccess("mallory", auth.ResourceTypeVC, "research", auth.PermissionCollaborator).Return(false)

		detail, err := svc.GetJobDetail("mallory", "j1")

		assert.NoError(t, err)
		assert.Nil(t, detail)
	})
}

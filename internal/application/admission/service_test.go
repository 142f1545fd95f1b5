package admission

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/identity"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/repository/mock_repository"
	"github.com/stretchr/testify/assert"
)

type fakeInvalidator struct {
	vcNames []string
}

func (f *fakeInvalidator) Invalidate(vcName string) {
	f.vcNames = append(f.vcNames, vcName)
}

type fakePriorityUpdater struct {
	userName string
	applied  map[string]int
}

func (f *fakePriorityUpdater) UpdateJobPriorities(userName string, requested map[string]int) error {
	f.userName = userName
	f.applied = requested
	return nil
}

type admissionMocks struct {
	svc        *Service
	jobs       *mock_repository.MockJobRepository
	access     *mock_repository.MockAccessChecker
	identities *mock_repository.MockIdentityResolver
	cache      *fakeInvalidator
	priorities *fakePriorityUpdater
}

func setupAdmission(t *testing.T) *admissionMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &admissionMocks{
		jobs:       mock_repository.NewMockJobRepository(ctrl),
		access:     mock_repository.NewMockAccessChecker(ctrl),
		identities: mock_repository.NewMockIdentityResolver(ctrl),
		cache:      &fakeInvalidator{},
		priorities: &fakePriorityUpdater{},
	}
	m.svc = NewService(m.jobs, m.access, m.identities, m.priorities, m.cache)
	m.svc.now = func() time.Time { return time.Date(2019, 7, 26, 0, 0, 0, 0, time.UTC) }

	ids := []string{"id-1", "id-2", "id-3"}
	m.svc.newID = func() string {
		next := ids[0]
		ids = ids[1:]
		return next
	}
	return m
}

func strPtr(s string) *string          { return &s }
func intPtr(i FlexInt) *FlexInt        { return &i }
func boolPtr(b FlexBool) *FlexBool     { return &b }

func baseRequest() *SubmitRequest {
	return &SubmitRequest{
		JobName:  "train-resnet",
		VcName:   "research",
		UserName: "alice@corp.example",
		UserID:   strPtr("1001"),
		Image:    "tensorflow/tensorflow:1.14",
	}
}

func TestSubmitFillsDefaults(t *testing.T) {
	m := setupAdmission(t)

	m.access.EXPECT().
		HasAccess("alice@corp.example", auth.ResourceTypeVC, "research", auth.PermissionUser).
		Return(true)

	var persisted *job.Job
	m.jobs.EXPECT().AddJob(gomock.Any()).DoAndReturn(func(j *job.Job) error {
		persisted = j
		return nil
	})

	jobID, err := m.svc.Submit(baseRequest())
	assert.NoError(t, err)
	assert.Equal(t, "id-1", jobID)

	assert.Equal(t, "id-1", persisted.JobID)
	assert.Equal(t, "id-2", persisted.FamilyToken, "family token generated when absent")
	assert.True(t, persisted.IsParent)
	assert.False(t, persisted.PreemptionAllowed)
	assert.Equal(t, 0, persisted.ResourceGPU)
	assert.Equal(t, job.StatusUnapproved, persisted.JobStatus)
	assert.Equal(t, "alice/jobs/190726/id-1", persisted.JobPath)
	assert.Equal(t, "alice", persisted.WorkPath)
	assert.Equal(t, "alice", persisted.DataPath)

	assert.Equal(t, []string{"research"}, m.cache.vcNames, "pending cache refreshed")
}

func TestSubmitValidationOrder(t *testing.T) {
	m := setupAdmission(t)

	req := baseRequest()
	req.JobName = "  "
	_, err := m.svc.Submit(req)
	assert.ErrorIs(t, err, ErrEmptyJobName)

	req = baseRequest()
	req.VcName = ""
	_, err = m.svc.Submit(req)
	assert.ErrorIs(t, err, ErrEmptyVcName)

	assert.Empty(t, m.cache.vcNames, "validation failures must not touch the cache")
}

func TestSubmitResolvesMissingUserID(t *testing.T) {
	m := setupAdmission(t)

	m.identities.EXPECT().Resolve("alice@corp.example").
		Return(&identity.Identity{UserName: "alice@corp.example", UID: 1001, GID: 1001}, nil)
	m.access.EXPECT().HasAccess(gomock.Any(), auth.ResourceTypeVC, "research", auth.PermissionUser).Return(true)

	var persisted *job.Job
	m.jobs.EXPECT().AddJob(gomock.Any()).DoAndReturn(func(j *job.Job) error {
		persisted = j
		return nil
	})

	req := baseRequest()
	req.UserID = nil
	_, err := m.svc.Submit(req)
	assert.NoError(t, err)
	assert.Equal(t, "1001", persisted.UserID)
}

func TestSubmitRejectsTraversalPaths(t *testing.T) {
	for _, field := range []string{"jobPath", "workPath", "dataPath"} {
		t.Run(field, func(t *testing.T) {
			m := setupAdmission(t)
			m.access.EXPECT().HasAccess(gomock.Any(), auth.ResourceTypeVC, "research", auth.PermissionUser).Return(true)

			req := baseRequest()
			evil := "a/../../etc"
			switch field {
			case "jobPath":
				req.JobPath = strPtr(evil)
			case "workPath":
				req.WorkPath = strPtr(evil)
			case "dataPath":
				req.DataPath = strPtr(evil)
			}
			_, err := m.svc.Submit(req)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "..")
		})
	}
}

func TestSubmitAccessDenied(t *testing.T) {
	m := setupAdmission(t)

	m.access.EXPECT().
		HasAccess("alice@corp.example", auth.ResourceTypeVC, "research", auth.PermissionUser).
		Return(false)

	_, err := m.svc.Submit(baseRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSubmitDerivesTensorboardCompanion(t *testing.T) {
	m := setupAdmission(t)
	m.access.EXPECT().HasAccess(gomock.Any(), auth.ResourceTypeVC, "research", auth.PermissionUser).Return(true)

	var order []*job.Job
	m.jobs.EXPECT().AddJob(gomock.Any()).Times(2).DoAndReturn(func(j *job.Job) error {
		order = append(order, j)
		return nil
	})

	req := baseRequest()
	req.LogDir = strPtr("/data/logs/run1")
	req.ResourceGPU = intPtr(4)

	jobID, err := m.svc.Submit(req)
	assert.NoError(t, err)

	companion, primary := order[0], order[1]
	assert.Equal(t, "tensorboard-train-resnet", companion.JobName)
	assert.Equal(t, job.TypeVisualization, companion.JobType)
	assert.Equal(t, primary.FamilyToken, companion.FamilyToken)
	assert.Equal(t, primary.JobPath, companion.JobPath)
	assert.NotEqual(t, primary.JobID, companion.JobID)
	assert.False(t, companion.IsParent)
	assert.Equal(t, 0, companion.ResourceGPU)
	assert.Equal(t, "6006", companion.InteractivePort)
	assert.Equal(t, "tensorboard --logdir /data/logs/run1 --host 0.0.0.0", companion.Cmd)
	assert.Equal(t, primary.Image, companion.Image)

	assert.Equal(t, jobID, primary.JobID)
	assert.Equal(t, 4, primary.ResourceGPU)
}

func TestSubmitCompanionPersistFailureAborts(t *testing.T) {
	m := setupAdmission(t)
	m.access.EXPECT().HasAccess(gomock.Any(), auth.ResourceTypeVC, "research", auth.PermissionUser).Return(true)

	// Only the companion write happens; the failure aborts before the
	// primary is persisted.
	m.jobs.EXPECT().AddJob(gomock.Any()).Return(assert.AnError)

	req := baseRequest()
	req.LogDir = strPtr("/data/logs/run1")

	_, err := m.svc.Submit(req)
	assert.ErrorIs(t, err, ErrCannotScheduleTensorboard)
	assert.Equal(t, []string{"research"}, m.cache.vcNames, "cache still refreshed past admission")
}

func TestSubmitExplicitPriorityReclampsViaAdminCheck(t *testing.T) {
	m := setupAdmission(t)

	m.access.EXPECT().HasAccess(gomock.Any(), auth.ResourceTypeVC, "research", auth.PermissionUser).Return(true)
	m.jobs.EXPECT().AddJob(gomock.Any()).Return(nil)
	m.access.EXPECT().
		HasAccess("alice@corp.example", auth.ResourceTypeVC, "research", auth.PermissionAdmin).
		Return(false)

	req := baseRequest()
	req.JobPriority = intPtr(900)

	jobID, err := m.svc.Submit(req)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{jobID: 200}, m.priorities.applied,
		"non-admin requests clamp to the user ceiling")
	assert.Equal(t, "alice@corp.example", m.priorities.userName)
}

func TestSubmitPreemptionFlagCoercion(t *testing.T) {
	m := setupAdmission(t)
	m.access.EXPECT().HasAccess(gomock.Any(), auth.ResourceTypeVC, "research", auth.PermissionUser).Return(true)

	var persisted *job.Job
	m.jobs.EXPECT().AddJob(gomock.Any()).DoAndReturn(func(j *job.Job) error {
		persisted = j
		return nil
	})

	req := baseRequest()
	req.PreemptionAllowed = boolPtr(true)
	_, err := m.svc.Submit(req)
	assert.NoError(t, err)
	assert.True(t, persisted.PreemptionAllowed)
}

// Package admission validates, canonicalizes and persists job
// submissions, deriving companion visualization jobs where requested.
package admission

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lanternml/cluster-core/internal/application/priority"
	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/identity"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/listcache"
	"github.com/lanternml/cluster-core/pkg/pathutil"
)

// User-facing submission errors.
var (
	ErrEmptyJobName              = errors.New("job name cannot be empty")
	ErrEmptyVcName               = errors.New("vc name cannot be empty")
	ErrNegativeGpuRequest        = errors.New("gpu request cannot be negative")
	ErrAccessDenied              = errors.New("access denied")
	ErrCannotSchedule            = errors.New("cannot schedule job")
	ErrCannotScheduleTensorboard = errors.New("cannot schedule tensorboard job")
)

// PriorityUpdater applies the post-submit explicit-priority write.
type PriorityUpdater interface {
	UpdateJobPriorities(userName string, requested map[string]int) error
}

// Service is the submission pipeline.
type Service struct {
	jobs       job.Repository
	access     auth.AccessChecker
	identities identity.Resolver
	priorities PriorityUpdater
	cache      listcache.Invalidator

	now   func() time.Time
	newID func() string
}

func NewService(jobs job.Repository, access auth.AccessChecker, identities identity.Resolver,
	priorities PriorityUpdater, cache listcache.Invalidator) *Service {
	return &Service{
		jobs:       jobs,
		access:     access,
		identities: identities,
		priorities: priorities,
		cache:      cache,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
}

// Submit runs the admission pipeline and returns the new job id.
// Validation and authorization failures come back as the user-facing
// errors above; store faults surface as the generic schedule error.
func (s *Service) Submit(req *SubmitRequest) (string, error) {
	if strings.TrimSpace(req.JobName) == "" {
		return "", ErrEmptyJobName
	}
	vcName := strings.TrimSpace(req.VcName)
	if vcName == "" {
		return "", ErrEmptyVcName
	}

	userID := ""
	if req.UserID != nil {
		userID = strings.TrimSpace(*req.UserID)
	}
	if userID == "" {
		userID = s.resolveUserID(req.UserName)
	}

	preemptionAllowed := false
	if req.PreemptionAllowed != nil {
		preemptionAllowed = bool(*req.PreemptionAllowed)
	}

	jobID := ""
	if req.JobID != nil {
		jobID = *req.JobID
	}
	if jobID == "" {
		jobID = s.newID()
	}

	resourceGPU := 0
	if req.ResourceGPU != nil {
		resourceGPU = int(*req.ResourceGPU)
	}
	if resourceGPU < 0 {
		return "", ErrNegativeGpuRequest
	}

	numPSWorker := 1
	if req.NumPSWorker != nil {
		numPSWorker = int(*req.NumPSWorker)
	}

	familyToken := ""
	if req.FamilyToken != nil {
		familyToken = strings.TrimSpace(*req.FamilyToken)
	}
	if familyToken == "" {
		familyToken = s.newID()
	}

	isParent := true
	if req.IsParent != nil {
		isParent = bool(*req.IsParent)
	}

	shortName := shortUserName(req.UserName)

	if !s.access.HasAccess(req.UserName, auth.ResourceTypeVC, vcName, auth.PermissionUser) {
		return "", ErrAccessDenied
	}

	cmd := ""
	if req.Cmd != nil {
		cmd = *req.Cmd
	}

	jobPath, workPath, dataPath, err := s.canonicalizePaths(req, shortName, jobID)
	if err != nil {
		return "", err
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = job.TypeTraining
	}

	primary := &job.Job{
		JobID:             jobID,
		JobName:           req.JobName,
		FamilyToken:       familyToken,
		IsParent:          isParent,
		UserName:          req.UserName,
		UserID:            userID,
		VcName:            vcName,
		JobPath:           jobPath,
		WorkPath:          workPath,
		DataPath:          dataPath,
		JobType:           jobType,
		JobTrainingType:   req.JobTrainingType,
		Image:             req.Image,
		Cmd:               cmd,
		ResourceGPU:       resourceGPU,
		NumPSWorker:       numPSWorker,
		GpuType:           req.GpuType,
		PreemptionAllowed: preemptionAllowed,
		JobPriority:       job.DefaultPriority,
		JobStatus:         job.StatusUnapproved,
	}
	if req.LogDir != nil {
		primary.LogDir = strings.TrimSpace(*req.LogDir)
	}

	// Past admission: the pending listing for this VC changes on every
	// exit from here on, failed persistence included.
	defer s.cache.Invalidate(vcName)

	if primary.LogDir != "" {
		companion := deriveTensorboardJob(primary, s.newID())
		if err := s.jobs.AddJob(companion); err != nil {
			log.Printf("submit %s: tensorboard companion persist failed: %v", jobID, err)
			return "", ErrCannotScheduleTensorboard
		}
	}

	if err := s.jobs.AddJob(primary); err != nil {
		log.Printf("submit %s: persist failed: %v", jobID, err)
		return "", ErrCannotSchedule
	}

	if req.JobPriority != nil {
		s.applyRequestedPriority(req.UserName, vcName, jobID, int(*req.JobPriority))
	}
	return jobID, nil
}

// applyRequestedPriority re-derives the tier independently of the
// admission check and routes the write through the bulk arbiter. A
// failure here does not unwind an already accepted submission.
func (s *Service) applyRequestedPriority(userName, vcName, jobID string, requested int) {
	permission := auth.PermissionUser
	if s.access.HasAccess(userName, auth.ResourceTypeVC, vcName, auth.PermissionAdmin) {
		permission = auth.PermissionAdmin
	}
	adjusted := priority.Adjust(requested, permission)

	if err := s.priorities.UpdateJobPriorities(userName, map[string]int{jobID: adjusted}); err != nil {
		log.Printf("submit %s: priority update failed: %v", jobID, err)
	}
}

func (s *Service) canonicalizePaths(req *SubmitRequest, shortName, jobID string) (jobPath, workPath, dataPath string, err error) {
	if req.JobPath != nil && strings.TrimSpace(*req.JobPath) != "" {
		jobPath, err = pathutil.Canonicalize(*req.JobPath, shortName)
		if err != nil {
			return "", "", "", fmt.Errorf("job directory: %w", err)
		}
	} else {
		jobPath = pathutil.DefaultJobPath(shortName, jobID, s.now())
	}

	rawWork := "."
	if req.WorkPath != nil && strings.TrimSpace(*req.WorkPath) != "" {
		rawWork = *req.WorkPath
	}
	workPath, err = pathutil.Canonicalize(rawWork, shortName)
	if err != nil {
		return "", "", "", fmt.Errorf("work directory: %w", err)
	}

	rawData := "."
	if req.DataPath != nil && strings.TrimSpace(*req.DataPath) != "" {
		rawData = *req.DataPath
	}
	dataPath, err = pathutil.Canonicalize(rawData, shortName)
	if err != nil {
		return "", "", "", fmt.Errorf("data directory: %w", err)
	}
	return jobPath, workPath, dataPath, nil
}

func (s *Service) resolveUserID(userName string) string {
	id, err := s.identities.Resolve(userName)
	if err != nil {
		log.Printf("identity lookup failed for %s: %v", userName, err)
		return strconv.Itoa(identity.InvalidID)
	}
	return strconv.Itoa(id.UID)
}

// shortUserName derives the on-disk user name: strip an "@domain"
// suffix, then a "group/" prefix.
func shortUserName(userName string) string {
	name := job.ShortUserName(userName)
	if _, after, found := strings.Cut(name, "/"); found {
		name = strings.TrimSpace(after)
	}
	return name
}

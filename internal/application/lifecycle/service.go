// Package lifecycle executes authorization-gated job state transitions.
package lifecycle

import (
	"errors"
	"fmt"
	"log"

	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/listcache"
)

var (
	// ErrJobNotFound covers both absent jobs and lookup faults: the
	// caller sees one no-op failure signal.
	ErrJobNotFound = errors.New("job not found")
	// ErrInvalidJobState rejects a transition whose precondition on the
	// current status does not hold.
	ErrInvalidJobState = errors.New("job status does not allow this operation")
	ErrAccessDenied    = errors.New("access denied")
	// ErrPartialKill reports a family fan-out where some sibling writes
	// failed; siblings already transitioned stay in killing. Downstream
	// reconciliation must be idempotent against repeated transitions.
	ErrPartialKill = errors.New("some jobs in the family could not be killed")
)

var killableStatuses = map[job.JobStatus]bool{
	job.StatusUnapproved: true,
	job.StatusQueued:     true,
	job.StatusScheduling: true,
	job.StatusRunning:    true,
	job.StatusPaused:     true,
	job.StatusPausing:    true,
}

var pausableStatuses = map[job.JobStatus]bool{
	job.StatusUnapproved: true,
	job.StatusQueued:     true,
	job.StatusScheduling: true,
	job.StatusRunning:    true,
}

// Service drives approve/kill/pause/resume transitions.
type Service struct {
	jobs   job.Repository
	access auth.AccessChecker
	cache  listcache.Invalidator
}

func NewService(jobs job.Repository, access auth.AccessChecker, cache listcache.Invalidator) *Service {
	return &Service{jobs: jobs, access: access, cache: cache}
}

// ApproveJob moves an unapproved job into the queue. VC admins only.
func (s *Service) ApproveJob(userName, jobID string) error {
	j, err := s.getSingle(jobID)
	if err != nil {
		return err
	}
	if j.JobStatus != job.StatusUnapproved {
		return ErrInvalidJobState
	}
	if !s.access.HasAccess(userName, auth.ResourceTypeVC, j.VcName, auth.PermissionAdmin) {
		return ErrAccessDenied
	}
	if err := s.jobs.UpdateJobTextField(jobID, "jobStatus", string(job.StatusQueued)); err != nil {
		return fmt.Errorf("approve %s: %w", jobID, err)
	}
	s.cache.Invalidate(j.VcName)
	return nil
}

// KillJob marks a job (and, for parents, its whole family) as killing.
// Owner or VC admin. The fan-out is sequential and best-effort: every
// sibling is attempted, and the call fails if any write failed.
func (s *Service) KillJob(userName, jobID string) error {
	j, err := s.getSingle(jobID)
	if err != nil {
		return err
	}
	if !killableStatuses[j.JobStatus] {
		return ErrInvalidJobState
	}
	if j.UserName != userName &&
		!s.access.HasAccess(userName, auth.ResourceTypeVC, j.VcName, auth.PermissionAdmin) {
		return ErrAccessDenied
	}

	if j.IsParent {
		family, err := s.jobs.GetByFamilyToken(j.FamilyToken)
		if err != nil {
			return fmt.Errorf("kill %s: load family: %w", jobID, err)
		}
		failed := 0
		for _, member := range family {
			if err := s.jobs.UpdateJobTextField(member.JobID, "jobStatus", string(job.StatusKilling)); err != nil {
				log.Printf("kill %s: family member %s not updated: %v", jobID, member.JobID, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d", ErrPartialKill, failed, len(family))
		}
	} else {
		if err := s.jobs.UpdateJobTextField(jobID, "jobStatus", string(job.StatusKilling)); err != nil {
			return fmt.Errorf("kill %s: %w", jobID, err)
		}
	}

	s.cache.Invalidate(j.VcName)
	return nil
}

// PauseJob marks a schedulable or running job as pausing. Owner or VC
// admin.
func (s *Service) PauseJob(userName, jobID string) error {
	j, err := s.getSingle(jobID)
	if err != nil {
		return err
	}
	if !pausableStatuses[j.JobStatus] {
		return ErrInvalidJobState
	}
	if j.UserName != userName &&
		!s.access.HasAccess(userName, auth.ResourceTypeVC, j.VcName, auth.PermissionAdmin) {
		return ErrAccessDenied
	}
	if err := s.jobs.UpdateJobTextField(jobID, "jobStatus", string(job.StatusPausing)); err != nil {
		return fmt.Errorf("pause %s: %w", jobID, err)
	}
	return nil
}

// ResumeJob sends a paused job back through approval. Owner or VC
// collaborator.
func (s *Service) ResumeJob(userName, jobID string) error {
	j, err := s.getSingle(jobID)
	if err != nil {
		return err
	}
	if j.JobStatus != job.StatusPaused {
		return ErrInvalidJobState
	}
	if j.UserName != userName &&
		!s.access.HasAccess(userName, auth.ResourceTypeVC, j.VcName, auth.PermissionCollaborator) {
		return ErrAccessDenied
	}
	if err := s.jobs.UpdateJobTextField(jobID, "jobStatus", string(job.StatusUnapproved)); err != nil {
		return fmt.Errorf("resume %s: %w", jobID, err)
	}
	return nil
}

// getSingle fetches one job row. More than one row for an id is a
// platform inconsistency: logged, first record used.
func (s *Service) getSingle(jobID string) (*job.Job, error) {
	jobs, err := s.jobs.GetByJobID(jobID)
	if err != nil {
		log.Printf("job lookup failed for %s: %v", jobID, err)
		return nil, ErrJobNotFound
	}
	if len(jobs) == 0 {
		return nil, ErrJobNotFound
	}
	if len(jobs) > 1 {
		log.Printf("multiple job entries found that match job %s, most likely a platform bug", jobID)
	}
	return &jobs[0], nil
}

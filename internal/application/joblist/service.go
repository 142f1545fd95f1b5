// Package joblist serves job listing, status and detail reads.
package joblist

import (
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/job"
)

// OwnerAll requests every owner's jobs in a VC. Only collaborators get
// the full listing; everyone else falls back to their own jobs.
const OwnerAll = "all"

const failToGetLogs = "fail-to-get-logs"

// PendingProvider serves the cached per-VC pending listing.
type PendingProvider interface {
	Pending(vcName string) ([]job.Job, error)
}

// StatusSummary is the minimal polling payload for one job.
type StatusSummary struct {
	JobStatus job.JobStatus `json:"jobStatus"`
	JobTime   time.Time     `json:"jobTime"`
	ErrorMsg  string        `json:"errorMsg"`
}

// Detail is one job plus its decoded log.
type Detail struct {
	job.Job
	Log string `json:"log"`
}

// Service answers read-only job queries.
type Service struct {
	jobs    job.Repository
	pending PendingProvider
	access  auth.AccessChecker
}

func NewService(jobs job.Repository, pending PendingProvider, access auth.AccessChecker) *Service {
	return &Service{jobs: jobs, pending: pending, access: access}
}

// GetJobList lists jobs in a VC. jobOwner "all" returns the whole
// pending set, but only for VC collaborators; otherwise the caller gets
// their own pending jobs plus their settled history. Any failure
// degrades to an empty list.
func (s *Service) GetJobList(userName, vcName, jobOwner string, limit int) []job.Job {
	jobs, err := s.listJobs(userName, vcName, jobOwner, limit)
	if err != nil {
		log.Printf("fail to get job list for user %s, return empty list: %v", userName, err)
		return []job.Job{}
	}
	return jobs
}

func (s *Service) listJobs(userName, vcName, jobOwner string, limit int) ([]job.Job, error) {
	hasAccessOnAllJobs := s.access.HasAccess(userName, auth.ResourceTypeVC, vcName, auth.PermissionCollaborator)

	if jobOwner == OwnerAll && hasAccessOnAllJobs {
		return s.pendingJobsOf(OwnerAll, vcName)
	}

	jobs, err := s.pendingJobsOf(userName, vcName)
	if err != nil {
		return nil, err
	}
	settled, err := s.jobs.ListJobs(userName, vcName, job.PendingStatuses, limit)
	if err != nil {
		return nil, err
	}
	return append(jobs, settled...), nil
}

// pendingJobsOf filters the VC's cached pending set down to one owner.
// Owner "all" keeps everything.
func (s *Service) pendingJobsOf(owner, vcName string) ([]job.Job, error) {
	pending, err := s.pending.Pending(vcName)
	if err != nil {
		return nil, fmt.Errorf("pending jobs for vc %s: %w", vcName, err)
	}
	jobs := []job.Job{}
	for _, j := range pending {
		if owner == OwnerAll || owner == j.UserName {
			jobs = append(jobs, j)
		}
	}
	return jobs, nil
}

// GetJobStatus returns the polling summary of one job, nil when the id
// does not resolve to exactly one row. No authorization: the payload
// carries no sensitive content.
func (s *Service) GetJobStatus(jobID string) (*StatusSummary, error) {
	jobs, err := s.jobs.GetByJobID(jobID)
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}
	if len(jobs) != 1 {
		return nil, nil
	}
	return &StatusSummary{
		JobStatus: jobs[0].JobStatus,
		JobTime:   jobs[0].JobTime,
		ErrorMsg:  jobs[0].ErrorMsg,
	}, nil
}

// GetJobDetail returns one job with its log for the owner or a VC
// collaborator, nil otherwise. A log fetch failure yields a sentinel
// log value rather than failing the read.
func (s *Service) GetJobDetail(userName, jobID string) (*Detail, error) {
	jobs, err := s.jobs.GetByJobID(jobID)
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}
	if len(jobs) != 1 {
		return nil, nil
	}
	j := jobs[0]
	if j.UserName != userName &&
		!s.access.HasAccess(userName, auth.ResourceTypeVC, j.VcName, auth.PermissionCollaborator) {
		return nil, nil
	}

	detail := &Detail{Job: j}
	rawLog, err := s.jobs.GetJobTextField(jobID, "jobLog")
	if err != nil {
		detail.Log = failToGetLogs
		return detail, nil
	}
	detail.Log = decodeLog(rawLog)
	return detail, nil
}

// decodeLog transparently unwraps base64-encoded logs; anything that
// does not round-trip cleanly is served raw.
func decodeLog(rawLog string) string {
	decoded, err := base64.StdEncoding.DecodeString(rawLog)
	if err != nil {
		return rawLog
	}
	if base64.StdEncoding.EncodeToString(decoded) != rawLog {
		return rawLog
	}
	return string(decoded)
}

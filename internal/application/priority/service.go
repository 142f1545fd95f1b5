package priority

import (
	"errors"
	"fmt"
	"log"

	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/job"
)

// ErrAccessDenied fails the whole batch: one unauthorized entry means
// nothing is persisted.
var ErrAccessDenied = errors.New("access denied")

// Service bulk-updates job priorities subject to per-job authorization
// and tier re-clamping.
type Service struct {
	jobs   job.Repository
	access auth.AccessChecker
}

func NewService(jobs job.Repository, access auth.AccessChecker) *Service {
	return &Service{jobs: jobs, access: access}
}

// UpdateJobPriorities clamps and persists the requested priorities.
// Non-existent jobs are skipped; an entry whose actor is neither the
// job owner nor a VC admin aborts the batch before any write. The
// accepted map is persisted in a single bulk call at the end.
func (s *Service) UpdateJobPriorities(userName string, requested map[string]int) error {
	accepted := make(map[string]int, len(requested))

	for jobID, p := range requested {
		jobs, err := s.jobs.GetByJobID(jobID)
		if err != nil {
			log.Printf("priority update: job lookup failed for %s: %v", jobID, err)
			return fmt.Errorf("look up job %s: %w", jobID, err)
		}
		if len(jobs) == 0 {
			log.Printf("update priority %d for non-existent job %s", p, jobID)
			continue
		}
		if len(jobs) > 1 {
			log.Printf("multiple job entries found that match job %s, most likely a platform bug", jobID)
		}

		j := jobs[0]
		vcAdmin := s.access.HasAccess(userName, auth.ResourceTypeVC, j.VcName, auth.PermissionAdmin)
		if j.UserName != userName && !vcAdmin {
			return ErrAccessDenied
		}

		permission := auth.PermissionUser
		if vcAdmin {
			permission = auth.PermissionAdmin
		}
		accepted[jobID] = Adjust(p, permission)
	}

	if len(accepted) == 0 {
		return nil
	}
	if err := s.jobs.UpdateJobPriorities(accepted); err != nil {
		log.Printf("priority update: bulk write failed: %v", err)
		return fmt.Errorf("persist priorities: %w", err)
	}
	return nil
}

// GetJobPriorities exposes the store's priority snapshot.
func (s *Service) GetJobPriorities() (map[string]int, error) {
	return s.jobs.GetJobPriorities()
}

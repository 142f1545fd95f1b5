package job

// Repository is the job store contract. Mutation is expressed as
// idempotent-by-key field writes; last writer wins.
type Repository interface {
	// AddJob persists a new job row.
	AddJob(j *Job) error
	// GetByJobID returns every row matching the job id. More than one
	// row is a platform inconsistency the caller must tolerate.
	GetByJobID(jobID string) ([]Job, error)
	// GetByFamilyToken returns the job family sharing a token.
	GetByFamilyToken(token string) ([]Job, error)
	// GetJobTextField reads a single text column of a job.
	GetJobTextField(jobID, field string) (string, error)
	// UpdateJobTextField writes a single text column of a job.
	UpdateJobTextField(jobID, field, value string) error
	// UpdateJobPriorities applies a priority map in one bulk write.
	UpdateJobPriorities(priorities map[string]int) error
	// GetJobPriorities returns the priority of every non-finished job.
	GetJobPriorities() (map[string]int, error)
	// GetActiveJobs returns all jobs inside the resource-accounting
	// window (PendingStatuses), across all VCs.
	GetActiveJobs() ([]Job, error)
	// GetPendingJobs returns the jobs of one VC inside the window.
	GetPendingJobs(vcName string) ([]Job, error)
	// ListJobs returns a user's jobs in a VC excluding the given
	// statuses, newest first, up to limit (0 means no limit).
	ListJobs(userName, vcName string, excludeStatuses []string, limit int) ([]Job, error)
}

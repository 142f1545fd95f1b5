package job

import (
	"strings"
	"time"
)

// JobStatus is the lifecycle state of a job. The admission core drives
// unapproved/queued/pausing/paused/killing transitions; the execution
// infrastructure owns the rest.
type JobStatus string

const (
	StatusUnapproved JobStatus = "unapproved"
	StatusQueued     JobStatus = "queued"
	StatusScheduling JobStatus = "scheduling"
	StatusRunning    JobStatus = "running"
	StatusPausing    JobStatus = "pausing"
	StatusPaused     JobStatus = "paused"
	StatusKilling    JobStatus = "killing"
	StatusKilled     JobStatus = "killed"
	StatusFinished   JobStatus = "finished"
	StatusFailed     JobStatus = "failed"
	StatusError      JobStatus = "error"
)

// PendingStatuses is the accounting window the store uses for both the
// pending-job listing and the active-job scan: every state in which a
// job is visible to scheduling and may hold resources.
var PendingStatuses = []string{
	string(StatusUnapproved),
	string(StatusQueued),
	string(StatusScheduling),
	string(StatusRunning),
	string(StatusPausing),
	string(StatusPaused),
}

// Job type constants.
const (
	TypeTraining      = "training"
	TypeVisualization = "visualization"
)

// Training type constants. Distributed jobs spread workers under
// per-worker log directories.
const (
	TrainingTypeRegular = "RegularJob"
	TrainingTypePSDist  = "PSDistJob"
)

// DefaultPriority is assigned when a submission carries no explicit
// priority.
const DefaultPriority = 100

// Job is the central entity: one row per submitted or derived job.
type Job struct {
	ID uint `gorm:"primaryKey;column:id" json:"-"`

	JobID       string `gorm:"size:64;uniqueIndex;not null;column:job_id" json:"jobId"`
	JobName     string `gorm:"size:255;not null" json:"jobName"`
	FamilyToken string `gorm:"size:64;index;not null" json:"familyToken"`
	IsParent    bool   `gorm:"default:true" json:"isParent"`

	UserName string `gorm:"size:255;not null;index" json:"userName"`
	UserID   string `gorm:"size:64;column:user_id" json:"userId"`
	VcName   string `gorm:"size:255;not null;index;column:vc_name" json:"vcName"`

	JobPath  string `gorm:"size:1024" json:"jobPath"`
	WorkPath string `gorm:"size:1024" json:"workPath"`
	DataPath string `gorm:"size:1024" json:"dataPath"`
	LogDir   string `gorm:"size:1024" json:"logDir,omitempty"`

	JobType         string `gorm:"size:50;default:'training'" json:"jobType"`
	JobTrainingType string `gorm:"size:50" json:"jobtrainingtype,omitempty"`
	Image           string `gorm:"size:255" json:"image"`
	Cmd             string `gorm:"type:text" json:"cmd"`
	InteractivePort string `gorm:"size:16" json:"interactivePort,omitempty"`

	ResourceGPU       int    `gorm:"default:0;column:resourcegpu" json:"resourcegpu"`
	NumPSWorker       int    `gorm:"default:1;column:numpsworker" json:"numpsworker"`
	GpuType           string `gorm:"size:50;column:gpu_type" json:"gpuType,omitempty"`
	PreemptionAllowed bool   `gorm:"default:false" json:"preemptionAllowed"`
	JobPriority       int    `gorm:"default:100" json:"jobPriority"`

	JobStatus JobStatus `gorm:"size:50;default:'unapproved';index" json:"jobStatus"`
	ErrorMsg  string    `gorm:"type:text;column:error_msg" json:"errorMsg"`
	JobLog    string    `gorm:"type:text;column:job_log" json:"-"`

	JobTime   time.Time `gorm:"column:job_time;autoUpdateTime" json:"jobTime"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

// TotalGpu is the job's whole GPU demand: the per-worker request times
// the worker count, never less than one worker.
func (j *Job) TotalGpu() int {
	workers := j.NumPSWorker
	if workers < 1 {
		workers = 1
	}
	return j.ResourceGPU * workers
}

// ShortUserName strips any "@domain" suffix so differently qualified
// names for the same person aggregate into one bucket.
func ShortUserName(userName string) string {
	name, _, _ := strings.Cut(userName, "@")
	return strings.TrimSpace(name)
}

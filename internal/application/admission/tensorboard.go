package admission

import (
	"strings"

	"github.com/lanternml/cluster-core/internal/domain/job"
)

// tensorboardPort is the fixed interactive port of companion jobs.
const tensorboardPort = "6006"

// deriveTensorboardJob builds the companion visualization job for a
// primary submission that carries a log directory. The companion shares
// the primary's jobPath and familyToken, requests no GPUs, and watches
// the log directory with a fixed command template.
func deriveTensorboardJob(primary *job.Job, jobID string) *job.Job {
	logDir := primary.LogDir
	trainingType := primary.JobTrainingType

	// Distributed jobs write per-worker logs; point the companion at
	// the first worker's directory.
	if trainingType == job.TrainingTypePSDist {
		trainingType = job.TrainingTypeRegular
		logDir = insertWorker0(logDir)
	}

	return &job.Job{
		JobID:           jobID,
		JobName:         "tensorboard-" + primary.JobName,
		FamilyToken:     primary.FamilyToken,
		IsParent:        false,
		UserName:        primary.UserName,
		UserID:          primary.UserID,
		VcName:          primary.VcName,
		JobPath:         primary.JobPath,
		WorkPath:        primary.WorkPath,
		DataPath:        primary.DataPath,
		LogDir:          logDir,
		JobType:         job.TypeVisualization,
		JobTrainingType: trainingType,
		Image:           primary.Image,
		Cmd:             "tensorboard --logdir " + logDir + " --host 0.0.0.0",
		InteractivePort: tensorboardPort,
		ResourceGPU:     0,
		NumPSWorker:     1,
		GpuType:         primary.GpuType,
		JobPriority:     job.DefaultPriority,
		JobStatus:       job.StatusUnapproved,
	}
}

// insertWorker0 rewrites a log directory to insert "worker0" before the
// final component, unless the prefix already contains a worker0 segment.
func insertWorker0(logDir string) string {
	idx := strings.LastIndex(logDir, "/")
	if idx < 0 {
		return logDir
	}
	prefix, last := logDir[:idx], logDir[idx:]
	if strings.Contains(prefix, "/worker0") {
		return logDir
	}
	return prefix + "/worker0" + last
}

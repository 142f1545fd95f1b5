package repository

import (
	"fmt"

	"github.com/lanternml/cluster-core/internal/domain/job"
	"gorm.io/gorm"
)

// textFieldColumns whitelists the job text fields writable through the
// field-update path and maps their API names onto columns.
var textFieldColumns = map[string]string{
	"jobStatus": "job_status",
	"jobLog":    "job_log",
	"errorMsg":  "error_msg",
}

// DBJobRepo is the gorm-backed job store.
type DBJobRepo struct {
	DB *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{DB: db}
}

func (r *DBJobRepo) AddJob(j *job.Job) error {
	return r.DB.Create(j).Error
}

func (r *DBJobRepo) GetByJobID(jobID string) ([]job.Job, error) {
	var jobs []job.Job
	err := r.DB.Where("job_id = ?", jobID).Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) GetByFamilyToken(token string) ([]job.Job, error) {
	var jobs []job.Job
	err := r.DB.Where("family_token = ?", token).Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) GetJobTextField(jobID, field string) (string, error) {
	column, ok := textFieldColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown job text field %q", field)
	}
	var value string
	err := r.DB.Model(&job.Job{}).
		Where("job_id = ?", jobID).
		Pluck(column, &value).Error
	return value, err
}

func (r *DBJobRepo) UpdateJobTextField(jobID, field, value string) error {
	column, ok := textFieldColumns[field]
	if !ok {
		return fmt.Errorf("unknown job text field %q", field)
	}
	res := r.DB.Model(&job.Job{}).
		Where("job_id = ?", jobID).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBJobRepo) UpdateJobPriorities(priorities map[string]int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for jobID, priority := range priorities {
			err := tx.Model(&job.Job{}).
				Where("job_id = ?", jobID).
				Update("job_priority", priority).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DBJobRepo) GetJobPriorities() (map[string]int, error) {
	var rows []job.Job
	err := r.DB.Select("job_id", "job_priority").
		Where("job_status IN ?", job.PendingStatuses).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	priorities := make(map[string]int, len(rows))
	for _, row := range rows {
		priorities[row.JobID] = row.JobPriority
	}
	return priorities, nil
}

func (r *DBJobRepo) GetActiveJobs() ([]job.Job, error) {
	var jobs []job.Job
	err := r.DB.Where("job_status IN ?", job.PendingStatuses).Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) GetPendingJobs(vcName string) ([]job.Job, error) {
	var jobs []job.Job
	err := r.DB.
		Where("vc_name = ? AND job_status IN ?", vcName, job.PendingStatuses).
		Order("job_time DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) ListJobs(userName, vcName string, excludeStatuses []string, limit int) ([]job.Job, error) {
	q := r.DB.Where("user_name = ? AND vc_name = ?", userName, vcName)
	if len(excludeStatuses) > 0 {
		q = q.Where("job_status NOT IN ?", excludeStatuses)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var jobs []job.Job
	err := q.Order("job_time DESC").Find(&jobs).Error
	return jobs, err
}

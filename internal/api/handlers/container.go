package handlers

import (
	"github.com/lanternml/cluster-core/internal/application"
)

type Handlers struct {
	Job   *JobHandler
	VC    *VCHandler
	Admin *AdminHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		Job:   NewJobHandler(services.Admission, services.Lifecycle, services.Priority, services.JobList),
		VC:    NewVCHandler(services.Quota, services.VCAdmin),
		Admin: NewAdminHandler(services.VCAdmin),
	}
}

// Package application wires the service layer together.
package application

import (
	"github.com/lanternml/cluster-core/internal/application/admission"
	"github.com/lanternml/cluster-core/internal/application/joblist"
	"github.com/lanternml/cluster-core/internal/application/lifecycle"
	"github.com/lanternml/cluster-core/internal/application/priority"
	quotasvc "github.com/lanternml/cluster-core/internal/application/quota"
	"github.com/lanternml/cluster-core/internal/application/vcadmin"
	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/listcache"
	"github.com/lanternml/cluster-core/internal/repository"
)

// Services bundles every application service behind one constructor.
type Services struct {
	Admission *admission.Service
	Lifecycle *lifecycle.Service
	Priority  *priority.Service
	Quota     *quotasvc.Service
	JobList   *joblist.Service
	VCAdmin   *vcadmin.Service
}

func New(repos *repository.Repos, access auth.AccessChecker, aces auth.AceStore, cache *listcache.Cache) *Services {
	prioritySvc := priority.NewService(repos.Job, access)
	return &Services{
		Admission: admission.NewService(repos.Job, access, repos.Identity, prioritySvc, cache),
		Lifecycle: lifecycle.NewService(repos.Job, access, cache),
		Priority:  prioritySvc,
		Quota:     quotasvc.NewService(repos.Job, repos.VC, access, nil),
		JobList:   joblist.NewService(repos.Job, cache, access),
		VCAdmin:   vcadmin.NewService(repos.VC, access, aces),
	}
}

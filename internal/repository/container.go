package repository

import (
	"github.com/lanternml/cluster-core/internal/domain/identity"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/domain/vc"
	"gorm.io/gorm"
)

// Repos bundles the store implementations handed to the services.
type Repos struct {
	Job      job.Repository
	VC       vc.Repository
	Identity identity.Resolver
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Job:      NewJobRepo(db),
		VC:       NewVCRepo(db),
		Identity: NewIdentityRepo(db),
	}
}

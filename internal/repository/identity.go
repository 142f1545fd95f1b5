package repository

import (
	"encoding/json"

	"github.com/lanternml/cluster-core/internal/domain/identity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBIdentityRepo is the gorm-backed identity directory. It also serves
// group lookups for the ACL checker.
type DBIdentityRepo struct {
	DB *gorm.DB
}

func NewIdentityRepo(db *gorm.DB) *DBIdentityRepo {
	return &DBIdentityRepo{DB: db}
}

func (r *DBIdentityRepo) Resolve(userName string) (*identity.Identity, error) {
	var id identity.Identity
	err := r.DB.Where("user_name = ?", userName).First(&id).Error
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *DBIdentityRepo) Update(userName string, uid, gid int, groups []string) error {
	payload, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	id := identity.Identity{UserName: userName, UID: uid, GID: gid, Groups: payload}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"uid", "gid", "groups"}),
	}).Create(&id).Error
}

// GroupsOf implements auth.GroupLister. An unknown user has no groups.
func (r *DBIdentityRepo) GroupsOf(userName string) ([]string, error) {
	id, err := r.Resolve(userName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	var groups []string
	if len(id.Groups) > 0 {
		if err := json.Unmarshal(id.Groups, &groups); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

package identity

import (
	"time"

	"gorm.io/datatypes"
)

// InvalidID marks an unresolved uid/gid.
const InvalidID = -1

// Identity is one directory entry: the posix identity backing a
// platform user.
type Identity struct {
	ID       uint           `gorm:"primaryKey;column:id" json:"-"`
	UserName string         `gorm:"size:255;uniqueIndex;not null" json:"userName"`
	UID      int            `gorm:"column:uid;default:-1" json:"uid"`
	GID      int            `gorm:"column:gid;default:-1" json:"gid"`
	Groups   datatypes.JSON `gorm:"column:groups" json:"groups"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Identity) TableName() string {
	return "identities"
}

// Resolver is the identity directory contract: username to posix
// identity resolution.
type Resolver interface {
	Resolve(userName string) (*Identity, error)
	Update(userName string, uid, gid int, groups []string) error
}

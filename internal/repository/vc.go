package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/lanternml/cluster-core/internal/domain/vc"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBVCRepo is the gorm-backed VC and cluster-status store.
type DBVCRepo struct {
	DB *gorm.DB
}

func NewVCRepo(db *gorm.DB) *DBVCRepo {
	return &DBVCRepo{DB: db}
}

func (r *DBVCRepo) ListVCs() ([]vc.VirtualCluster, error) {
	var vcs []vc.VirtualCluster
	err := r.DB.Order("vc_name").Find(&vcs).Error
	return vcs, err
}

func (r *DBVCRepo) AddVC(vcName, quota, metadata string) error {
	return r.DB.Create(&vc.VirtualCluster{
		VcName:   vcName,
		Quota:    datatypes.JSON(quota),
		Metadata: datatypes.JSON(metadata),
	}).Error
}

func (r *DBVCRepo) UpdateVC(vcName, quota, metadata string) error {
	res := r.DB.Model(&vc.VirtualCluster{}).
		Where("vc_name = ?", vcName).
		Updates(map[string]interface{}{
			"quota":    datatypes.JSON(quota),
			"metadata": datatypes.JSON(metadata),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBVCRepo) DeleteVC(vcName string) error {
	return r.DB.Where("vc_name = ?", vcName).Delete(&vc.VirtualCluster{}).Error
}

func (r *DBVCRepo) GetClusterStatus() (*vc.ClusterStatus, time.Time, error) {
	var record vc.ClusterStatusRecord
	err := r.DB.Order("updated_at DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &vc.ClusterStatus{
				GPUCapacity:  map[string]int{},
				GPUAvailable: map[string]int{},
				GPUReserved:  map[string]int{},
			}, time.Time{}, nil
		}
		return nil, time.Time{}, err
	}

	status := &vc.ClusterStatus{}
	if err := json.Unmarshal(record.Status, status); err != nil {
		return nil, time.Time{}, err
	}
	return status, record.UpdatedAt, nil
}

func (r *DBVCRepo) SetClusterStatus(status *vc.ClusterStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return err
	}
	record := vc.ClusterStatusRecord{ID: 1, Status: payload, UpdatedAt: time.Now()}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&record).Error
}

func (r *DBVCRepo) AddStorage(s *vc.Storage) error {
	return r.DB.Create(s).Error
}

func (r *DBVCRepo) ListStorages(vcName string) ([]vc.Storage, error) {
	var storages []vc.Storage
	err := r.DB.Where("vc_name = ?", vcName).Find(&storages).Error
	return storages, err
}

func (r *DBVCRepo) UpdateStorage(s *vc.Storage) error {
	res := r.DB.Model(&vc.Storage{}).
		Where("vc_name = ? AND url = ?", s.VcName, s.URL).
		Updates(map[string]interface{}{
			"storage_type":       s.StorageType,
			"metadata":           s.Metadata,
			"default_mount_path": s.DefaultMountPath,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBVCRepo) DeleteStorage(vcName, url string) error {
	return r.DB.Where("vc_name = ? AND url = ?", vcName, url).Delete(&vc.Storage{}).Error
}

// Package quota produces per-VC capacity views by combining the
// persisted cluster status with the live job set.
package quota

import (
	"fmt"
	"log"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lanternml/cluster-core/internal/auth"
	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/lanternml/cluster-core/internal/domain/vc"
	"github.com/lanternml/cluster-core/pkg/quota"
	"github.com/lanternml/cluster-core/pkg/resourceinfo"
)

// vcListTTL caps how stale a per-user VC listing may get.
const vcListTTL = 30 * time.Minute

// Service answers VC capacity and listing queries. Reads are computed
// fresh against the job table on every call; only the per-user VC
// listing is cached.
type Service struct {
	jobs    job.Repository
	vcs     vc.Repository
	access  auth.AccessChecker
	combine quota.CombineFunc

	vcListCache *gocache.Cache
}

func NewService(jobs job.Repository, vcs vc.Repository, access auth.AccessChecker, combine quota.CombineFunc) *Service {
	if combine == nil {
		combine = quota.CalculateVcGpuCounts
	}
	return &Service{
		jobs:        jobs,
		vcs:         vcs,
		access:      access,
		combine:     combine,
		vcListCache: gocache.New(vcListTTL, 2*vcListTTL),
	}
}

// GetClusterStatus returns the latest persisted cluster view and its
// production time.
func (s *Service) GetClusterStatus() (*vc.ClusterStatus, time.Time, error) {
	return s.vcs.GetClusterStatus()
}

// ListVCs returns the VCs the user may see, each flagged with whether
// the user administers it. Results are cached per user.
func (s *Service) ListVCs(userName string) ([]vc.View, error) {
	if cached, ok := s.vcListCache.Get(userName); ok {
		return cached.([]vc.View), nil
	}

	vcList, err := s.vcs.ListVCs()
	if err != nil {
		return nil, fmt.Errorf("list vcs: %w", err)
	}

	views := []vc.View{}
	for _, cluster := range vcList {
		if !s.access.HasAccess(userName, auth.ResourceTypeVC, cluster.VcName, auth.PermissionUser) {
			continue
		}
		views = append(views, vc.View{
			VcName:   cluster.VcName,
			Quota:    cluster.Quota,
			Metadata: cluster.Metadata,
			Admin:    s.access.HasAccess(userName, auth.ResourceTypeVC, cluster.VcName, auth.PermissionAdmin),
		})
	}

	s.vcListCache.Set(userName, views, gocache.DefaultExpiration)
	return views, nil
}

// GetVC computes the capacity view of one VC for the user. It returns
// (nil, nil) both when the VC does not exist and when the user lacks
// access, so callers cannot distinguish the two.
func (s *Service) GetVC(userName, vcName string) (*vc.View, error) {
	status, _, err := s.vcs.GetClusterStatus()
	if err != nil {
		return nil, fmt.Errorf("get cluster status: %w", err)
	}

	vcList, err := s.vcs.ListVCs()
	if err != nil {
		return nil, fmt.Errorf("list vcs: %w", err)
	}

	vcQuota := quota.PerVC{}
	for _, cluster := range vcList {
		quotaMap, err := cluster.QuotaMap()
		if err != nil {
			log.Printf("vc %s has an unparseable quota, treating as empty: %v", cluster.VcName, err)
			quotaMap = map[string]int{}
		}
		vcQuota[cluster.VcName] = quotaMap
	}

	activeJobs, err := s.jobs.GetActiveJobs()
	if err != nil {
		return nil, fmt.Errorf("get active jobs: %w", err)
	}

	vcUsage := quota.PerVC{}
	vcPreemptableUsage := quota.PerVC{}
	for _, j := range activeJobs {
		if j.GpuType == "" {
			continue
		}
		usage := vcUsage
		if j.PreemptionAllowed {
			usage = vcPreemptableUsage
		}
		if usage[j.VcName] == nil {
			usage[j.VcName] = map[string]int{}
		}
		usage[j.VcName][j.GpuType] += j.TotalGpu()
	}

	vcTotal, vcUsed, vcAvailable, vcUnschedulable := s.combine(
		status.GPUCapacity, status.GPUAvailable, status.GPUReserved,
		vcQuota, vcUsage)

	for _, cluster := range vcList {
		if cluster.VcName != vcName {
			continue
		}
		if !s.access.HasAccess(userName, auth.ResourceTypeVC, vcName, auth.PermissionUser) {
			return nil, nil
		}

		numRunning := 0
		userStatus := map[string]*resourceinfo.ResourceInfo{}
		userStatusPreemptable := map[string]*resourceinfo.ResourceInfo{}
		for _, j := range activeJobs {
			if j.VcName != vcName || j.JobStatus != job.StatusRunning {
				continue
			}
			numRunning++
			if j.GpuType == "" {
				continue
			}
			byUser := userStatus
			if j.PreemptionAllowed {
				byUser = userStatusPreemptable
			}
			if byUser[j.UserName] == nil {
				byUser[j.UserName] = resourceinfo.New()
			}
			byUser[j.UserName].AddCount(j.GpuType, j.TotalGpu())
		}

		preemptableUsed := vcPreemptableUsage[vcName]
		if preemptableUsed == nil {
			preemptableUsed = map[string]int{}
		}

		return &vc.View{
			VcName:                cluster.VcName,
			Quota:                 cluster.Quota,
			Metadata:              cluster.Metadata,
			GpuCapacity:           vcTotal[vcName],
			GpuUsed:               vcUsed[vcName],
			GpuPreemptableUsed:    preemptableUsed,
			GpuAvailable:          vcAvailable[vcName],
			GpuUnschedulable:      vcUnschedulable[vcName],
			AvaliableJobNum:       numRunning,
			NodeStatus:            status.NodeStatus,
			UserStatus:            flattenUserUsage(userStatus),
			UserStatusPreemptable: flattenUserUsage(userStatusPreemptable),
		}, nil
	}
	return nil, nil
}

// flattenUserUsage folds fully qualified user names down to their short
// form, merging usage when two qualified names share an alias.
func flattenUserUsage(byUser map[string]*resourceinfo.ResourceInfo) []vc.UserGpuUsage {
	byAlias := map[string]*resourceinfo.ResourceInfo{}
	for userName, usage := range byUser {
		alias := job.ShortUserName(userName)
		if byAlias[alias] == nil {
			byAlias[alias] = resourceinfo.New()
		}
		byAlias[alias].Add(usage)
	}

	out := make([]vc.UserGpuUsage, 0, len(byAlias))
	for alias, usage := range byAlias {
		out = append(out, vc.UserGpuUsage{UserName: alias, UserGPU: usage.ToMap()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserName < out[j].UserName })
	return out
}

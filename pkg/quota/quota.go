// Package quota computes per-VC GPU capacity splits from cluster-wide
// totals. The admission core treats the combination as a pluggable
// function; CalculateVcGpuCounts is the default implementation.
package quota

import "sort"

// PerVC maps VC name to a per-GPU-type count.
type PerVC map[string]map[string]int

// CombineFunc combines cluster-wide GPU totals with per-VC quota and
// usage into per-VC total/used/available/unschedulable counts.
type CombineFunc func(clusterTotal, clusterAvailable, clusterReserved map[string]int,
	vcQuota, vcUsage PerVC) (total, used, available, unschedulable PerVC)

// CalculateVcGpuCounts is the default CombineFunc. Per GPU type, the
// cluster's dead capacity (total - available - reserved) is split across
// VCs proportionally to quota using largest remainders; a VC's used
// count is its usage clamped to quota, and available is whatever quota
// remains after usage and the unschedulable share.
func CalculateVcGpuCounts(clusterTotal, clusterAvailable, clusterReserved map[string]int,
	vcQuota, vcUsage PerVC) (total, used, available, unschedulable PerVC) {

	total = make(PerVC, len(vcQuota))
	used = make(PerVC, len(vcQuota))
	available = make(PerVC, len(vcQuota))
	unschedulable = make(PerVC, len(vcQuota))

	vcNames := make([]string, 0, len(vcQuota))
	for vcName := range vcQuota {
		vcNames = append(vcNames, vcName)
		total[vcName] = map[string]int{}
		used[vcName] = map[string]int{}
		available[vcName] = map[string]int{}
		unschedulable[vcName] = map[string]int{}
	}
	sort.Strings(vcNames)

	for gpuType := range clusterTotal {
		dead := clusterTotal[gpuType] - clusterAvailable[gpuType] - clusterReserved[gpuType]
		if dead < 0 {
			dead = 0
		}

		quotaSum := 0
		for _, vcName := range vcNames {
			quotaSum += vcQuota[vcName][gpuType]
		}

		deadShare := distribute(dead, vcNames, vcQuota, gpuType, quotaSum)

		for _, vcName := range vcNames {
			q := vcQuota[vcName][gpuType]
			u := vcUsage[vcName][gpuType]
			if u > q {
				u = q
			}

			avail := q - u - deadShare[vcName]
			if avail < 0 {
				avail = 0
			}

			total[vcName][gpuType] = q
			used[vcName][gpuType] = u
			available[vcName][gpuType] = avail
			unschedulable[vcName][gpuType] = deadShare[vcName]
		}
	}
	return total, used, available, unschedulable
}

// distribute splits n across VCs proportionally to their quota for the
// given GPU type, assigning leftovers by largest remainder. VC names are
// pre-sorted so ties break deterministically.
func distribute(n int, vcNames []string, vcQuota PerVC, gpuType string, quotaSum int) map[string]int {
	share := make(map[string]int, len(vcNames))
	if n <= 0 || quotaSum <= 0 {
		for _, vcName := range vcNames {
			share[vcName] = 0
		}
		return share
	}

	type rem struct {
		vcName string
		frac   int
	}
	remainders := make([]rem, 0, len(vcNames))
	assigned := 0
	for _, vcName := range vcNames {
		q := vcQuota[vcName][gpuType]
		share[vcName] = n * q / quotaSum
		assigned += share[vcName]
		remainders = append(remainders, rem{vcName, n * q % quotaSum})
	}
	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].frac > remainders[j].frac
	})
	for i := 0; i < n-assigned && i < len(remainders); i++ {
		share[remainders[i].vcName]++
	}
	return share
}

package resourceinfo

// ResourceInfo is an additive counter keyed by GPU type, e.g.
// {"V100": 4, "P100": 2}. It is used both for a single job's total GPU
// demand and for aggregate per-VC / per-user usage.
type ResourceInfo struct {
	counts map[string]int
}

// New creates an empty ResourceInfo.
func New() *ResourceInfo {
	return &ResourceInfo{counts: make(map[string]int)}
}

// FromMap creates a ResourceInfo holding a copy of the given counts.
// Negative counts are treated as zero.
func FromMap(counts map[string]int) *ResourceInfo {
	r := New()
	for gpuType, n := range counts {
		if n > 0 {
			r.counts[gpuType] = n
		}
	}
	return r
}

// Add merges another ResourceInfo into this one.
func (r *ResourceInfo) Add(other *ResourceInfo) {
	if other == nil {
		return
	}
	for gpuType, n := range other.counts {
		r.counts[gpuType] += n
	}
}

// AddCount adds n GPUs of the given type. Negative n is ignored.
func (r *ResourceInfo) AddCount(gpuType string, n int) {
	if n <= 0 {
		return
	}
	r.counts[gpuType] += n
}

// Get returns the count for a GPU type, zero when absent.
func (r *ResourceInfo) Get(gpuType string) int {
	return r.counts[gpuType]
}

// Total returns the sum over all GPU types.
func (r *ResourceInfo) Total() int {
	total := 0
	for _, n := range r.counts {
		total += n
	}
	return total
}

// ToMap returns a copy of the per-type counts, suitable for JSON output.
func (r *ResourceInfo) ToMap() map[string]int {
	out := make(map[string]int, len(r.counts))
	for gpuType, n := range r.counts {
		out[gpuType] = n
	}
	return out
}

package listcache

import (
	"testing"
	"time"

	"github.com/lanternml/cluster-core/internal/domain/job"
	"github.com/stretchr/testify/assert"
)

type countingLister struct {
	calls int
	jobs  []job.Job
}

func (l *countingLister) GetPendingJobs(vcName string) ([]job.Job, error) {
	l.calls++
	return l.jobs, nil
}

func TestPendingReadsThroughOnce(t *testing.T) {
	lister := &countingLister{jobs: []job.Job{{JobID: "a"}}}
	c := New(lister, time.Minute)

	first, err := c.Pending("research")
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	_, err = c.Pending("research")
	assert.NoError(t, err)
	assert.Equal(t, 1, lister.calls, "second read must hit the cache")
}

func TestInvalidateRepopulatesEagerly(t *testing.T) {
	lister := &countingLister{}
	c := New(lister, time.Minute)

	_, _ = c.Pending("research")
	assert.Equal(t, 1, lister.calls)

	lister.jobs = []job.Job{{JobID: "b"}}
	c.Invalidate("research")
	assert.Equal(t, 2, lister.calls, "invalidate must refresh immediately")

	jobs, err := c.Pending("research")
	assert.NoError(t, err)
	assert.Equal(t, 2, lister.calls, "read after invalidate must not miss")
	assert.Equal(t, "b", jobs[0].JobID)
}

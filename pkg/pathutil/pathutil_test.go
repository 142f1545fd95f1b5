package pathutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		err  error
	}{
		{"plain", "experiments/run1", "alice/experiments/run1", nil},
		{"already user rooted", "alice/models", "alice/models", nil},
		{"dot defaults to user root", ".", "alice", nil},
		{"backslashes normalized", `data\set1`, "alice/data/set1", nil},
		{"redundant segments collapse", "a//b/./c", "alice/a/b/c", nil},
		{"traversal rejected", "../etc", "", ErrTraversal},
		{"nested traversal rejected", "a/b/../../etc", "", ErrTraversal},
		{"escaped dot rejected", `a\.ssh`, "", ErrTraversal},
		{"absolute rejected", "/alice/data", "", ErrRooting},
		{"backslash rooted rejected", `\alice\data`, "", ErrRooting},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Canonicalize(tc.raw, "alice")
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanonicalizeNeverEscapesUserRoot(t *testing.T) {
	for _, raw := range []string{"x", "x/y", "jobs/191231/abc", "deep/a/b/c/d"} {
		got, err := Canonicalize(raw, "bob")
		assert.NoError(t, err)
		assert.Regexp(t, "^bob(/|$)", got)
		assert.NotContains(t, got, "..")
	}
}

func TestDefaultJobPath(t *testing.T) {
	at := time.Date(2019, 7, 26, 3, 4, 5, 0, time.UTC)
	got := DefaultJobPath("alice", "job-1", at)
	assert.Equal(t, "alice/jobs/190726/job-1", got)
}

// Package pathutil validates and canonicalizes user-supplied relative
// paths (job/work/data directories). Every accepted path ends up rooted
// under the owning user's top-level directory, normalized to forward
// slashes, with no traversal segments.
package pathutil

import (
	"errors"
	"path"
	"strings"
	"time"
)

var (
	// ErrTraversal is returned when a path contains ".." or "\." segments.
	ErrTraversal = errors.New("path must not contain '..'")
	// ErrRooting is returned when a path starts with '/' or '\'.
	ErrRooting = errors.New("path must not start with '/' or '\\'")
)

// Canonicalize applies the shared path rules for job, work and data
// directories: traversal and rooting checks on the raw string, user
// prefixing, backslash normalization, then a resolve against a synthetic
// root so redundant segments collapse even when the literal checks
// missed a variant. The result is a normalized relative path.
func Canonicalize(raw, userName string) (string, error) {
	if strings.Contains(raw, "..") {
		return "", ErrTraversal
	}
	if strings.Contains(raw, `\.`) {
		return "", ErrTraversal
	}
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, `\`) {
		return "", ErrRooting
	}

	p := raw
	if !strings.HasPrefix(p, userName) {
		p = userName + "/" + p
	}
	p = strings.ReplaceAll(p, `\`, "/")

	// path.Join cleans against "/" so any leftover relative trickery
	// collapses; strip the synthetic root again afterwards.
	return strings.TrimPrefix(path.Join("/", p), "/"), nil
}

// DefaultJobPath synthesizes the job directory used when a submission
// carries no explicit jobPath: <user>/jobs/<yymmdd>/<jobID>.
func DefaultJobPath(userName, jobID string, now time.Time) string {
	return userName + "/jobs/" + now.UTC().Format("060102") + "/" + jobID
}

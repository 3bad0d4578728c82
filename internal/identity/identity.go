// Package identity derives repository owner and name from a git remote URL.
package identity

import (
	"net/url"
	"strings"
)

// RepositoryIdentity is the owner/name pair parsed from one remote URL.
type RepositoryIdentity struct {
	Owner        string `json:"owner" yaml:"owner"`
	Name         string `json:"name" yaml:"name"`
	CanonicalURI string `json:"canonical_uri" yaml:"canonical_uri"`
}

// FullName returns "owner/name".
func (r RepositoryIdentity) FullName() string {
	return r.Owner + "/" + r.Name
}

// Resolve parses a remote URL. Supported forms:
//   - scheme URLs: https://github.com/owner/repo.git, ssh://git@host/owner/repo
//   - scp-like: git@github.com:owner/repo.git
//   - host paths without scheme: github.com/owner/repo
//
// The first literal ".git" in the path is removed, wherever it occurs, and
// the last two non-empty path segments become owner and name.
func Resolve(raw string) (*RepositoryIdentity, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, newMalformedError(raw, "url is empty", nil)
	}

	repoPath, canonical, err := splitRemote(trimmed)
	if err != nil {
		return nil, newMalformedError(raw, "cannot parse url", err)
	}

	repoPath = strings.Replace(repoPath, ".git", "", 1)

	segments := nonEmptySegments(repoPath)
	if len(segments) < 2 {
		return nil, newMalformedError(raw, "expected at least owner and name in path", nil)
	}

	return &RepositoryIdentity{
		Name:         segments[len(segments)-1],
		Owner:        segments[len(segments)-2],
		CanonicalURI: canonical,
	}, nil
}

// splitRemote returns the path part of a remote and its canonical form.
func splitRemote(raw string) (repoPath, canonical string, err error) {
	if p, ok := scpPath(raw); ok {
		return p, raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	return u.Path, u.String(), nil
}

// scpPath handles git's scp-like syntax, [user@]host:path, which net/url rejects.
func scpPath(raw string) (string, bool) {
	if strings.Contains(raw, "://") {
		return "", false
	}
	colonIdx := strings.Index(raw, ":")
	if colonIdx <= 0 {
		return "", false
	}
	// a slash before the colon means a local path such as ./a:b
	if strings.Contains(raw[:colonIdx], "/") {
		return "", false
	}
	return raw[colonIdx+1:], true
}

func nonEmptySegments(p string) []string {
	parts := strings.Split(p, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

package git

import (
	"context"
	"strings"

	"github.com/tacogips/pipegen/internal/debug"
	"go.uber.org/zap"
)

// OriginURL returns the trimmed remote.origin.url of the repository at dir.
// ok is false when git is unavailable, dir is not a repository, or no
// origin is configured; callers treat that as "no default URL".
func OriginURL(ctx context.Context, r Runner, dir string) (url string, ok bool) {
	res, err := r.Run(ctx, dir, "git", "config", "--get", "remote.origin.url")
	if err != nil {
		debug.L().Debug("[git] remote lookup failed", zap.String("dir", dir), zap.Error(err))
		return "", false
	}
	if res.ExitCode != 0 {
		debug.L().Debug("[git] no origin remote", zap.String("dir", dir), zap.Int("exit", res.ExitCode))
		return "", false
	}

	url = strings.TrimSpace(res.Stdout)
	if url == "" {
		return "", false
	}
	return url, true
}

package middleware

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// OriginChecker matches request origins against host patterns such as
// "localhost:*" or "*.example.com". The scheme is ignored.
type OriginChecker struct {
	patterns []glob.Glob
}

func NewOriginChecker(patterns []string) (*OriginChecker, error) {
	var globs []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("malformed origin pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return &OriginChecker{patterns: globs}, nil
}

// Allowed reports whether origin matches any pattern.
func (c *OriginChecker) Allowed(origin string) bool {
	host := strings.ToLower(origin)
	if _, rest, ok := strings.Cut(host, "://"); ok {
		host = rest
	}
	for _, p := range c.patterns {
		if p.Match(host) {
			return true
		}
	}
	return false
}

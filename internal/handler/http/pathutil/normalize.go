package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific and
// pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/users/\d+$`), Template: "/users/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. It converts paths with IDs (e.g., /articles/123)
// to template format (e.g., /articles/:id). Static paths remain unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/articles/123?page=1")   // "/articles/:id"
//	NormalizePath("/articles/123/")         // "/articles/:id"
//	NormalizePath("/interactions")          // "/interactions" (unchanged)
//	NormalizePath("/auth/token")            // "/auth/token" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths like /health, /metrics, /auth/token pass through unchanged
	return path
}

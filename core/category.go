package core

import (
	"regexp"
	"strings"

	"github.com/ElleNealAI/code-health-report/schema"
)

// apiModuleRe matches engine-style API module paths such as
// "apis/foo/__init__.py" or "apis/foo.py".
var apiModuleRe = regexp.MustCompile(`apis/[^/]+(/__init__)?\.py$`)

// Categorize maps a filepath to exactly one category. The match is
// order-sensitive with API patterns checked first, so a path living under
// both "/api/" and "/utils/" lands in API Files. Paths are normalized by
// lower-casing and stripping leading slashes before matching; every input
// maps to a category, with Other as the catch-all.
func Categorize(filepath string) schema.Category {
	p := strings.ToLower(strings.TrimLeft(filepath, "/"))
	switch {
	case isAPIPath(p):
		return schema.APIFilesCategory
	case strings.Contains(p, "/pages/") || strings.HasPrefix(p, "pages/"):
		return schema.PagesCategory
	case strings.Contains(p, "/components/") || strings.HasPrefix(p, "components/"):
		return schema.ComponentsCategory
	case strings.Contains(p, "/utils/") || strings.HasPrefix(p, "utils/"):
		return schema.UIFilesCategory
	default:
		return schema.OtherCategory
	}
}

// isAPIPath reports whether a normalized path looks like an API file.
func isAPIPath(p string) bool {
	switch {
	case strings.Contains(p, "app/apis/"):
		return true
	case strings.HasPrefix(p, "apis/") || strings.Contains(p, "/apis/"):
		return true
	case strings.HasPrefix(p, "api/") || strings.Contains(p, "/api/"):
		return true
	}
	return apiModuleRe.MatchString(p)
}

// Where: internal/domain/firebaseconfig/patch.go
// What: Structured key assignment replacement for environment sources.
// Why: Rewrite generated `environment*.ts` files in place without a TypeScript parser.
package firebaseconfig

import (
	"regexp"
	"sync"
)

var (
	assignmentCache sync.Map
	todoComment     = regexp.MustCompile(`(?m)\s*//\s*TODO:.*$`)
)

// ReplaceAssignment rewrites every `key: 'value'` or `key: "value"` so the value
// becomes the given one, always single quoted. The key is anchored on a word
// boundary so `projectId` never matches inside `firebaseProjectId`.
func ReplaceAssignment(content, key, value string) string {
	return assignmentPattern(key).ReplaceAllLiteralString(content, key+": '"+value+"'")
}

// StripTODOComments removes `// TODO: ...` fragments up to the end of each line,
// keeping the code before them.
func StripTODOComments(content string) string {
	return todoComment.ReplaceAllString(content, "")
}

// Patch applies the six config keys, the derived apiUrl, and TODO stripping.
func Patch(content string, cfg Config, env Environment, region string) string {
	for _, a := range cfg.assignments() {
		content = ReplaceAssignment(content, a.key, a.value)
	}
	content = ReplaceAssignment(content, "apiUrl", APIURL(env, region, cfg.ProjectID))
	return StripTODOComments(content)
}

func assignmentPattern(key string) *regexp.Regexp {
	if cached, ok := assignmentCache.Load(key); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `:\s*['"][^'"]*['"]`)
	assignmentCache.Store(key, re)
	return re
}

// Where: internal/domain/template/helpers.go
// What: Case-conversion and date helpers exposed to templates.
// Why: Generated sources need identifiers derived from the kebab-case app name.
package template

import (
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	nonKebabChars   = regexp.MustCompile(`[^a-z0-9-]`)
	wordStartOrDash = regexp.MustCompile(`(^\w|-\w)`)
)

var now = time.Now

func helperFuncs() map[string]any {
	return map[string]any{
		"kebabCase":   KebabCase,
		"pascalCase":  PascalCase,
		"camelCase":   CamelCase,
		"upperCase":   strings.ToUpper,
		"currentYear": func() int { return now().Year() },
	}
}

// KebabCase lowercases, joins whitespace runs with '-', and drops anything else
// outside [a-z0-9-].
func KebabCase(text string) string {
	out := whitespaceRun.ReplaceAllString(strings.ToLower(text), "-")
	return nonKebabChars.ReplaceAllString(out, "")
}

// PascalCase uppercases the first character and every character after a '-',
// removing the dashes: "my-app" -> "MyApp".
func PascalCase(text string) string {
	return wordStartOrDash.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ToUpper(strings.TrimPrefix(m, "-"))
	})
}

// CamelCase is PascalCase with a lowercase first character.
func CamelCase(text string) string {
	pascal := PascalCase(text)
	if pascal == "" {
		return ""
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

package glob

import (
	"regexp"
	"strings"
	"sync"
)

// Limited glob language for instance and table patterns: `*` matches any run
// of characters, `?` exactly one. Everything else is literal. Matches are
// anchored to the whole value and case-insensitive.

var cache sync.Map // pattern -> *regexp.Regexp

// Compile translates a glob pattern into an anchored case-insensitive
// matcher. Compiled patterns are cached process-wide, so repeated evaluation
// of the same grant costs one compile.
func Compile(pattern string) (*regexp.Regexp, error) {
	if v, ok := cache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(translate(pattern))
	if err != nil {
		return nil, err
	}
	cache.Store(pattern, re)
	return re, nil
}

// Match reports whether value matches pattern in full. A pattern that fails
// to compile matches nothing.
func Match(pattern, value string) bool {
	re, err := Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// translate quotes every regexp metacharacter in the pattern, then rewrites
// the two escaped wildcards back into their regexp forms.
func translate(pattern string) string {
	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*`)
	quoted = strings.ReplaceAll(quoted, `\?`, `.`)
	return `(?i)^` + quoted + `$`
}

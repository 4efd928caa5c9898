package label

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled ignore glob. Supported syntax is `*`, `?`, and
// `[...]` character classes. Unlike filepath.Match, `*` and `?` match `/`
// as well: label names like "dependabot/npm" are flat strings, not paths,
// so "dependabot*" covers the whole namespace.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// CompilePattern compiles a glob into a Pattern. Returns an error for
// malformed character classes or a trailing backslash.
func CompilePattern(glob string) (Pattern, error) {
	re, err := globToRegexp(glob)
	if err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern %q: %w", glob, err)
	}
	return Pattern{source: glob, re: re}, nil
}

// Match reports whether name matches the whole pattern.
func (p Pattern) Match(name string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(name)
}

// String returns the original glob source.
func (p Pattern) String() string { return p.source }

func globToRegexp(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	runes := []rune(glob)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '\\':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("trailing backslash")
			}
			i++
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
		case '[':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == ']' && j > i+1 {
					end = j
					break
				}
			}
			if end == -1 {
				return nil, fmt.Errorf("unterminated character class")
			}
			class := string(runes[i+1 : end])
			if strings.HasPrefix(class, "^") || strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + class + "]")
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

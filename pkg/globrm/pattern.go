package globrm

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// PatternError is raised by a single argument that cannot be resolved: a
// literal path that does not exist, or a glob that cannot be parsed. It is
// collected and reported, never fatal on its own.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %s", e.Pattern, e.Reason)
}

// A pattern is split into segments, one per path component. A segment is
// either a literal double-star (matches any number of directories) or a
// compiled regex matching exactly one component. Matching is case-sensitive
// on all platforms, including the ones whose filesystems usually are not.
type segment struct {
	doubleStar bool
	re         *regexp.Regexp
}

// isGlob reports whether the argument contains glob metacharacters.
// Anything else is treated as a literal path.
func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// compilePattern decomposes a glob into per-component segments. The returned
// rooted flag is true for absolute patterns, which are expanded from the
// filesystem root instead of the working directory.
func compilePattern(pattern string) (segments []segment, rooted bool, err error) {
	normalized := filepath.ToSlash(pattern)
	rooted = strings.HasPrefix(normalized, "/")

	for _, part := range strings.Split(normalized, "/") {
		if part == "" || part == "." {
			continue
		}

		if part == "**" {
			segments = append(segments, segment{doubleStar: true})
			continue
		}

		re, err := segmentRegex(part)
		if err != nil {
			return nil, rooted, err
		}

		segments = append(segments, segment{re: re})
	}

	if len(segments) == 0 {
		return nil, rooted, fmt.Errorf("empty pattern")
	}

	return segments, rooted, nil
}

// segmentRegex translates one glob component into an anchored regex:
// '*' matches any run of characters within the component, '?' matches one
// character and '[...]' is a character class ('[!...]' negates it).
func segmentRegex(component string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")

	runes := []rune(component)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		case '[':
			closing, err := classEnd(runes, i)
			if err != nil {
				return nil, err
			}
			writeClass(&sb, runes[i+1:closing])
			i = closing
		default:
			sb.WriteString(regexp.QuoteMeta(string(runes[i])))
		}
	}

	sb.WriteString("$")
	return regexp.Compile(sb.String())
}

// classEnd finds the index of the ']' closing the class that opens at
// runes[open]. A ']' directly after the opening bracket (or after the
// negation marker) is part of the class, not its end.
func classEnd(runes []rune, open int) (int, error) {
	i := open + 1
	if i < len(runes) && (runes[i] == '!' || runes[i] == '^') {
		i++
	}
	if i < len(runes) && runes[i] == ']' {
		i++
	}
	for ; i < len(runes); i++ {
		if runes[i] == ']' {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unclosed character class")
}

// writeClass emits the regex form of a glob character class body.
func writeClass(sb *strings.Builder, body []rune) {
	sb.WriteString("[")
	for i, r := range body {
		switch {
		case i == 0 && (r == '!' || r == '^'):
			sb.WriteString("^")
		case r == '\\' || r == ']' || r == '^':
			sb.WriteString(`\` + string(r))
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString("]")
}

package rewrite

import (
	"regexp"
	"strings"
)

// Expressions may span lines; [^;] matches newlines in RE2, so the first
// semicolon after the keyword terminates the match.
var returnPattern = regexp.MustCompile(`return\s+([^;]+);`)

// ExtractReturns pulls the expression text out of every `return <expr>;`
// statement in a function block, in source order. Runs of whitespace inside an
// expression (including line breaks) collapse to single spaces. A return with
// no terminating semicolon before the block ends is not extracted.
func ExtractReturns(block string) []string {
	matches := returnPattern.FindAllStringSubmatch(block, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.Join(strings.Fields(m[1]), " "))
	}
	return out
}

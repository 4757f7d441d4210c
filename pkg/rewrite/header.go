package rewrite

import (
	"strings"

	"github.com/bird-chinese-community/bird2-autotype/pkg/types"
)

// annotateHeader rewrites the block's first line to carry the type annotation
// immediately before the opening brace. When the brace sits on a later line
// the annotation is appended to the right-trimmed header instead. Lines after
// the first pass through untouched.
func annotateHeader(lines []string, typ types.DeclaredType) []string {
	out := make([]string, 0, len(lines))
	header := lines[0]
	if before, after, found := strings.Cut(header, "{"); found {
		out = append(out, strings.TrimRight(before, " \t")+" -> "+typ.String()+" {"+after)
	} else {
		out = append(out, strings.TrimRight(header, " \t")+" -> "+typ.String())
	}
	return append(out, lines[1:]...)
}

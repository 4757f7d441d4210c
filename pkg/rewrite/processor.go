// Package rewrite implements the BIRD config transform: it locates function
// blocks by brace-depth scanning, infers a return type from each block's
// return expressions, and splices the annotation into the function header.
// Everything outside rewritten headers is preserved byte for byte, and
// processing its own output is a no-op.
package rewrite

import (
	"strings"

	"github.com/bird-chinese-community/bird2-autotype/pkg/classify"
	"github.com/bird-chinese-community/bird2-autotype/pkg/types"
)

// annotationMarker anywhere in a block means the function already declares a
// return type; such blocks are never touched. This is what makes Process
// idempotent.
const annotationMarker = "->"

// Process annotates every untyped, non-void function in content and returns
// the resulting document plus what was done. Input is never mutated; malformed
// input degrades to passthrough rather than an error.
func Process(content string) *types.Result {
	lines := strings.Split(content, "\n")
	res := &types.Result{Lines: make([]string, 0, len(lines))}

	sc := &boundaryScanner{}
	for _, line := range lines {
		blk, pass := sc.feed(line)
		if pass {
			res.Lines = append(res.Lines, line)
			continue
		}
		if blk != nil {
			res.Functions++
			res.Lines = append(res.Lines, annotateBlock(blk, res)...)
		}
	}

	// A block still open at EOF has unbalanced braces. Flush it unchanged so
	// no content is lost, and flag it for the caller to warn about.
	if blk := sc.flush(); blk != nil {
		res.Functions++
		res.Lines = append(res.Lines, blk.lines...)
		res.Unterminated = true
	}

	return res
}

func annotateBlock(blk *functionBlock, res *types.Result) []string {
	text := strings.Join(blk.lines, "\n")
	if strings.Contains(text, annotationMarker) {
		return blk.lines
	}

	typ := classify.Infer(ExtractReturns(text))
	if typ == types.TypeNone {
		return blk.lines // void function, leave unchanged
	}

	res.Annotated = append(res.Annotated, types.Annotation{
		Function: blk.name,
		Line:     blk.headerLine + 1,
		Type:     typ,
		TypeName: typ.String(),
	})
	return annotateHeader(blk.lines, typ)
}

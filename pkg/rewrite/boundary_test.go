package rewrite

import (
	"strings"
	"testing"
)

func scanAll(lines []string) (blocks []*functionBlock, passed []string, unterminated bool) {
	sc := &boundaryScanner{}
	for _, line := range lines {
		blk, pass := sc.feed(line)
		if pass {
			passed = append(passed, line)
		}
		if blk != nil {
			blocks = append(blocks, blk)
		}
	}
	if blk := sc.flush(); blk != nil {
		blocks = append(blocks, blk)
		unterminated = true
	}
	return blocks, passed, unterminated
}

func TestBoundaryScannerSingleBlock(t *testing.T) {
	lines := []string{
		"# comment",
		"function f()",
		"{",
		"    return 1;",
		"}",
		"define X = 1;",
	}
	blocks, passed, unterminated := scanAll(lines)

	if unterminated {
		t.Fatal("unexpected unterminated block")
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	blk := blocks[0]
	if blk.name != "f" || blk.headerLine != 1 {
		t.Errorf("block = %q at line %d", blk.name, blk.headerLine)
	}
	if got := strings.Join(blk.lines, "\n"); got != "function f()\n{\n    return 1;\n}" {
		t.Errorf("block lines = %q", got)
	}
	if len(passed) != 2 {
		t.Errorf("passed = %#v", passed)
	}
}

func TestBoundaryScannerSingleLineBlock(t *testing.T) {
	blocks, _, _ := scanAll([]string{"function g() { return true; }"})
	if len(blocks) != 1 || len(blocks[0].lines) != 1 {
		t.Fatalf("blocks = %+v", blocks)
	}
}

func TestBoundaryScannerNestedDepth(t *testing.T) {
	lines := []string{
		"function f() {",
		"    if a then { b; }",
		"    case x { 1: y; }",
		"}",
	}
	blocks, _, _ := scanAll(lines)
	if len(blocks) != 1 {
		t.Fatalf("nested braces split the block: %d blocks", len(blocks))
	}
	if len(blocks[0].lines) != 4 {
		t.Errorf("block has %d lines, want 4", len(blocks[0].lines))
	}
}

func TestBoundaryScannerUnterminated(t *testing.T) {
	blocks, _, unterminated := scanAll([]string{"function f() {", "    return 1;"})
	if !unterminated {
		t.Fatal("EOF inside a block not reported")
	}
	if len(blocks) != 1 || len(blocks[0].lines) != 2 {
		t.Errorf("flushed block = %+v", blocks)
	}
}

func TestBoundaryScannerIgnoresFunctionInsideBlock(t *testing.T) {
	// A line matching the declaration pattern inside an open block is body
	// text, not a new function.
	lines := []string{
		"function outer() {",
		"    # function inner() would go here",
		"}",
	}
	blocks, _, _ := scanAll(lines)
	if len(blocks) != 1 || blocks[0].name != "outer" {
		t.Fatalf("blocks = %+v", blocks)
	}
}

package rewrite

import (
	"regexp"
	"strings"
)

var functionStart = regexp.MustCompile(`^\s*function\s+(\w+)`)

// scanState is the boundary scanner's position relative to a function block.
type scanState int

const (
	stateOutside scanState = iota
	stateInside
)

// functionBlock is one function's header through its balanced closing brace,
// as a contiguous run of document lines.
type functionBlock struct {
	name       string
	headerLine int // 0-based document index of the header line
	lines      []string
}

// boundaryScanner partitions document lines into function blocks and
// passthrough text using per-line brace-depth counting. Nested braces inside a
// block (if/case bodies) are absorbed by the same depth counter; only the
// return to depth zero closes the block.
type boundaryScanner struct {
	state scanState
	depth int
	cur   *functionBlock
	line  int
}

// feed consumes the next document line. It returns the closed block when the
// line completes one, and pass=true when the line lies outside any block and
// should be emitted unchanged.
func (s *boundaryScanner) feed(text string) (blk *functionBlock, pass bool) {
	defer func() { s.line++ }()

	switch s.state {
	case stateOutside:
		m := functionStart.FindStringSubmatch(text)
		if m == nil {
			return nil, true
		}
		s.cur = &functionBlock{name: m[1], headerLine: s.line, lines: []string{text}}
		s.depth = braceDelta(text)
		// A balanced single-line definition closes on its own header.
		if s.depth == 0 && strings.Contains(text, "{") && strings.Contains(text, "}") {
			blk, s.cur = s.cur, nil
			return blk, false
		}
		s.state = stateInside
		return nil, false

	case stateInside:
		s.cur.lines = append(s.cur.lines, text)
		s.depth += braceDelta(text)
		if s.depth == 0 {
			blk, s.cur = s.cur, nil
			s.state = stateOutside
			return blk, false
		}
		return nil, false
	}
	return nil, true
}

// flush returns the partially collected block when the document ends while the
// scanner is still inside one. Such a block has unbalanced braces; the caller
// decides what to do with it, its lines are never dropped.
func (s *boundaryScanner) flush() *functionBlock {
	if s.state != stateInside {
		return nil
	}
	blk := s.cur
	s.cur = nil
	s.state = stateOutside
	return blk
}

func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

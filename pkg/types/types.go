// Package types defines the core data structures shared by the classifier,
// the rewriting pipeline, and the CLI layer.
package types

import "strings"

// DeclaredType is one of the fixed return-type symbols BIRD 2.17+ accepts in a
// function header annotation. TypeNone marks a void function (no annotation).
type DeclaredType int

const (
	TypeNone DeclaredType = iota
	TypeInt
	TypePair
	TypeIP
	TypePrefix
	TypeString
	TypeSet
	TypeBool
)

// String returns the annotation text spliced into a function header.
// Pair carries its element types, matching what BIRD expects.
func (t DeclaredType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypePair:
		return "pair (int, int)"
	case TypeIP:
		return "ip"
	case TypePrefix:
		return "prefix"
	case TypeString:
		return "string"
	case TypeSet:
		return "set"
	case TypeBool:
		return "bool"
	default:
		return ""
	}
}

// Annotation records one header rewrite performed on a document.
type Annotation struct {
	Function string       `json:"function"`
	Line     int          `json:"line"` // 1-based line of the function header
	Type     DeclaredType `json:"-"`
	TypeName string       `json:"type"`
}

// Result is the outcome of processing one document.
type Result struct {
	Lines        []string     `json:"-"`
	Functions    int          `json:"functions"` // function blocks seen
	Annotated    []Annotation `json:"annotated"`
	Unterminated bool         `json:"unterminated"` // a block never closed before EOF
}

// Changed reports whether processing rewrote any header.
func (r *Result) Changed() bool {
	return len(r.Annotated) > 0
}

// Text reassembles the output document.
func (r *Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

package classify

import (
	"github.com/bird-chinese-community/bird2-autotype/pkg/types"
)

// rule pairs a declared type with its literal predicate.
type rule struct {
	typ   types.DeclaredType
	match func(string) bool
}

// rules is evaluated in order; the first type whose predicate holds for every
// return expression wins. More structural shapes come first so that e.g.
// "(1, 2)" is a pair before bool's loose operator check ever runs.
var rules = []rule{
	{types.TypeInt, IsInt},
	{types.TypePair, IsPair},
	{types.TypeIP, IsIP},
	{types.TypePrefix, IsPrefix},
	{types.TypeString, IsString},
	{types.TypeSet, IsSet},
}

// Infer classifies a function's return expressions into a declared type.
// An empty slice means the function is void and returns TypeNone. A type is
// chosen only when every expression matches it (a unanimous match); mixed
// expression shapes fall through every rule and resolve to TypeBool, the
// universal fallback. Inference never fails.
func Infer(returns []string) types.DeclaredType {
	if len(returns) == 0 {
		return types.TypeNone
	}

	for _, r := range rules {
		if matchesAll(returns, r.match) {
			return r.typ
		}
	}
	return types.TypeBool
}

func matchesAll(values []string, match func(string) bool) bool {
	for _, v := range values {
		if !match(v) {
			return false
		}
	}
	return true
}

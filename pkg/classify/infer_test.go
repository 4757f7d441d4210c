package classify

import (
	"testing"

	"github.com/bird-chinese-community/bird2-autotype/pkg/types"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name    string
		returns []string
		want    types.DeclaredType
	}{
		{"void", nil, types.TypeNone},
		{"single int", []string{"1"}, types.TypeInt},
		{"single pair", []string{"(1, 2)"}, types.TypePair},
		{"single ip", []string{"1.2.3.4"}, types.TypeIP},
		{"single prefix", []string{"1.2.3.4/32"}, types.TypePrefix},
		{"single string", []string{`"hello"`}, types.TypeString},
		{"single set", []string{"{1, 2, 3}"}, types.TypeSet},
		{"single bool", []string{"true"}, types.TypeBool},
		{"operator expression", []string{"net ~ BOGON_PREFIXES"}, types.TypeBool},
		{"masked ip", []string{"1.2.3.4.mask(8)"}, types.TypeIP},
		{"masked net", []string{"net.mask(16)"}, types.TypePrefix},
		{"uniform ints", []string{"1", "42", "-5"}, types.TypeInt},
		{"uniform bools", []string{"true", "false", "x > y"}, types.TypeBool},
		// "1" alone is int, but "true" disqualifies int; only bool covers both.
		{"mixed falls to bool", []string{"1", "true"}, types.TypeBool},
		// Three components fail pair and everything else; bool is the fallback.
		{"triple falls to bool", []string{"(1, 2, 3)"}, types.TypeBool},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Infer(tc.returns); got != tc.want {
				t.Errorf("Infer(%v) = %v, want %v", tc.returns, got, tc.want)
			}
		})
	}
}

func TestDeclaredTypeString(t *testing.T) {
	if got := types.TypePair.String(); got != "pair (int, int)" {
		t.Errorf("TypePair.String() = %q", got)
	}
	if got := types.TypeNone.String(); got != "" {
		t.Errorf("TypeNone.String() = %q", got)
	}
}

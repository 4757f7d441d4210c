// Package classify infers BIRD function return types from the textual form of
// their return expressions. Each declared type gets one predicate over a single
// trimmed expression string; the inferencer applies them in a fixed priority
// order across all of a function's return expressions.
package classify

import (
	"net/netip"
	"regexp"
	"strings"
)

var (
	intPattern  = regexp.MustCompile(`^-?\d+$`)
	pairPattern = regexp.MustCompile(`^\([^,)]+,\s*[^,)]+\)$`)
	setPattern  = regexp.MustCompile(`^\{[^}]*\}$`)
	// net, net.mask(N), or any expression ending in .mask(N)
	prefixExprPattern = regexp.MustCompile(`^(net(\.mask\(\d+\))?|.*\.mask\(\d+\))$`)
	quotedPattern     = regexp.MustCompile(`["'][^"'\n]*["']`)
)

// boolOperators are the relational and logical tokens whose presence marks a
// boolean expression. Substring matching is deliberate: `<=` implies `<` is
// present too, so the single-character forms cover the compound ones.
var boolOperators = []string{"=", "!=", "<", ">", "<=", ">=", "&&", "||", "!", "~", "!~"}

// IsInt reports whether v is a bare decimal integer literal.
func IsInt(v string) bool {
	return intPattern.MatchString(strings.TrimSpace(v))
}

// IsPair reports whether v has the shape (A, B) with exactly two components.
func IsPair(v string) bool {
	return pairPattern.MatchString(strings.TrimSpace(v))
}

// IsIP reports whether v is a bare IP address literal, or an IP address with a
// trailing .mask(...) call, e.g. 1.2.3.4.mask(8). Anything containing a slash
// is a prefix, never an IP.
func IsIP(v string) bool {
	v = strings.TrimSpace(v)
	if strings.Contains(v, "/") {
		return false
	}
	if base, ok := maskBase(v); ok {
		return isAddr(base)
	}
	return isAddr(v)
}

// IsPrefix reports whether v is a network-prefix expression: a CIDR literal,
// the route's own net (optionally masked), or a trailing .mask(N) on a non-IP
// base. An IP base before .mask( means the expression is an ip, not a prefix;
// that tie-break keeps IsIP and IsPrefix mutually exclusive.
func IsPrefix(v string) bool {
	v = strings.TrimSpace(v)
	if strings.Contains(v, "/") {
		if _, err := netip.ParsePrefix(v); err == nil {
			return true
		}
	}
	if base, ok := maskBase(v); ok {
		return !isAddr(base) && (base == "net" || strings.HasPrefix(base, "net."))
	}
	return prefixExprPattern.MatchString(v)
}

// IsString reports whether v contains a quoted literal, or is a comma-joined
// argument list not opening with a pair or set bracket. The comma fallback can
// misfire on future comma-bearing types; it matches BIRD's print-style usage.
func IsString(v string) bool {
	v = strings.TrimSpace(v)
	if quotedPattern.MatchString(v) {
		return true
	}
	return strings.Contains(v, ",") &&
		!strings.HasPrefix(v, "(") && !strings.HasPrefix(v, "{")
}

// IsSet reports whether v is a brace-delimited set literal.
func IsSet(v string) bool {
	return setPattern.MatchString(strings.TrimSpace(v))
}

// IsBool reports whether v is a boolean literal or contains any relational or
// logical operator.
func IsBool(v string) bool {
	v = strings.TrimSpace(v)
	if v == "true" || v == "false" {
		return true
	}
	for _, op := range boolOperators {
		if strings.Contains(v, op) {
			return true
		}
	}
	return false
}

// maskBase splits v at the first ".mask(" and returns the part before it.
func maskBase(v string) (string, bool) {
	base, _, found := strings.Cut(v, ".mask(")
	return base, found
}

func isAddr(v string) bool {
	_, err := netip.ParseAddr(v)
	return err == nil
}

// Package match evaluates the glob-with-negation patterns used by the
// name, map, and type filter axes. The grammar is deliberately small:
// '*' matches any run of characters, a leading '!' negates, and matching
// is case-sensitive and anchored at both ends. There is no '?', no
// character classes, and no escaping; degenerate inputs keep their
// literal semantics rather than producing errors.
package match

import "strings"

// Match reports whether the candidate matches the pattern. A leading '!'
// inverts the result of matching the remainder, so a bare "!" matches
// every string except the empty one.
func Match(pattern, candidate string) bool {
	if strings.HasPrefix(pattern, "!") {
		return !glob(pattern[1:], candidate)
	}
	return glob(pattern, candidate)
}

// MatchAny evaluates a list of patterns accumulated for one filter axis.
// Positive and negative patterns are separated: the candidate passes iff
// it matches at least one positive pattern (or none were given) and
// matches none of the negative patterns. An empty list matches everything.
func MatchAny(patterns []string, candidate string) bool {
	havePositive := false
	positiveHit := false
	for _, p := range patterns {
		if neg, ok := strings.CutPrefix(p, "!"); ok {
			if glob(neg, candidate) {
				return false
			}
			continue
		}
		havePositive = true
		if glob(p, candidate) {
			positiveHit = true
		}
	}
	return !havePositive || positiveHit
}

// glob matches an anchored '*'-wildcard expression against s.
func glob(pattern, s string) bool {
	segs := strings.Split(pattern, "*")
	if len(segs) == 1 {
		return s == pattern
	}
	if !strings.HasPrefix(s, segs[0]) {
		return false
	}
	s = s[len(segs[0]):]
	last := segs[len(segs)-1]
	for _, seg := range segs[1 : len(segs)-1] {
		if seg == "" {
			continue
		}
		i := strings.Index(s, seg)
		if i < 0 {
			return false
		}
		s = s[i+len(seg):]
	}
	return strings.HasSuffix(s, last)
}

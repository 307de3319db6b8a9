package engine

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MatchToken resolves pasted text against a two-token vocabulary (meridiem,
// hemisphere letters, era strings). Matching folds case and strips periods
// ("a.m." matches "AM"); multi-rune tokens additionally tolerate an edit
// distance of one.
func MatchToken(text string, tokens [2]string) (int, bool) {
	norm := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), ".", ""))
	}
	t := norm(text)
	if t == "" {
		return 0, false
	}
	for i, tok := range tokens {
		if t == norm(tok) {
			return i, true
		}
	}
	for i, tok := range tokens {
		n := norm(tok)
		if len(n) >= 2 && levenshtein.ComputeDistance(t, n) <= 1 {
			return i, true
		}
	}
	return 0, false
}

package grammar

import (
	"strings"
	"unicode"
)

// splitRHS tokenizes a rhs on whitespace and stitches runs of lowercase
// tokens and '?' markers into compound tokens.
//
// The stitching is a convention of the source grammars this tool was written
// for ("the big dog" or "may ?" become one token). It is kept as is; do not
// generalize it.
func splitRHS(rhs string) []string {
	toks := strings.Fields(rhs)

	for i := 0; i < len(toks)-1; i++ {
		if !(isLower(toks[i]) || strings.Contains(toks[i], "?")) {
			continue
		}
		if isLower(toks[i+1]) || toks[i+1] == "?" {
			toks[i+1] = toks[i] + " " + toks[i+1]
			toks[i] = ""
		}
	}

	out := toks[:0]
	for _, t := range toks {
		if t != "" {
			out = append(out, t)
		}
	}

	return out
}

// isLower reports whether s has at least one cased rune and no uppercase or
// titlecase runes.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

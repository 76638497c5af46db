package causelist

import (
	"sort"
	"strings"
)

// Taxonomy is the ordered catalogue of known case-type codes used to anchor
// case lines. The catalogue is external input: the official code list changes
// over time, so callers supply it (typically from configuration).
type Taxonomy struct {
	codes []string // descending length, so compound codes win over their prefixes
}

// NewTaxonomy builds a matcher from the given codes. Codes are copied,
// upper-cased, and ordered longest first so that a compound code such as
// MFA.CROB is tried before its prefix MFA.
func NewTaxonomy(codes []string) *Taxonomy {
	t := &Taxonomy{codes: make([]string, 0, len(codes))}
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		t.codes = append(t.codes, c)
	}
	sort.SliceStable(t.codes, func(i, j int) bool {
		return len(t.codes[i]) > len(t.codes[j])
	})
	return t
}

// Len returns the number of distinct codes in the catalogue.
func (t *Taxonomy) Len() int {
	return len(t.codes)
}

// MatchAt returns the longest catalogue code matching as a prefix of text at
// pos, along with its length in bytes. Matching is case-insensitive. A zero
// length means no code matches and the position is not a case-line anchor.
func (t *Taxonomy) MatchAt(text string, pos int) (string, int) {
	if pos < 0 || pos >= len(text) {
		return "", 0
	}
	rest := text[pos:]
	for _, code := range t.codes {
		if len(rest) < len(code) {
			continue
		}
		if strings.EqualFold(rest[:len(code)], code) {
			return code, len(code)
		}
	}
	return "", 0
}

package causelist

import (
	"regexp"
	"strings"
)

// caseNumberRe matches a case-number token: a code of letters and dots
// followed by a slash-delimited number/year pair, e.g. "WP 12345/2024".
var caseNumberRe = regexp.MustCompile(`([A-Za-z][A-Za-z.]*)\s*(\d+/\d{2,4})`)

// CaseID is the decomposition of a raw case-identifier fragment.
type CaseID struct {
	Number  string // canonical "CODE number/year"; empty when unresolved
	Type    string // trailing parenthesized annotation when present, else the code
	Details string // free-text remainder; NoDetails when nothing remains
}

// ParseCaseID decomposes a raw case-identifier fragment into its number, type,
// and detail text. It never fails: a fragment with no recognizable case number
// keeps its number unresolved and carries the whole text as details.
func ParseCaseID(fragment string) CaseID {
	rest := strings.TrimSpace(fragment)

	annotation, rest := stripTrailingAnnotation(rest)

	m := caseNumberRe.FindStringSubmatchIndex(rest)
	if m == nil {
		details := collapseSpaces(rest)
		if details == "" {
			details = NoDetails
		}
		return CaseID{Type: annotation, Details: details}
	}

	code := strings.ToUpper(rest[m[2]:m[3]])
	number := code + " " + rest[m[4]:m[5]]

	details := collapseSpaces(rest[:m[0]] + " " + rest[m[1]:])
	if details == "" {
		details = NoDetails
	}

	typ := annotation
	if typ == "" {
		typ = code
	}

	return CaseID{Number: number, Type: typ, Details: details}
}

// stripTrailingAnnotation removes a balanced parenthesized annotation from the
// end of s, returning the enclosed text and the remaining fragment. The scan
// tracks nesting depth backward from the final closing parenthesis; detail
// text may itself contain parenthesized sub-content, which a greedy pattern
// would split apart. Unbalanced text is returned untouched.
func stripTrailingAnnotation(s string) (annotation, rest string) {
	if !strings.HasSuffix(s, ")") {
		return "", s
	}
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[i+1 : len(s)-1]), strings.TrimSpace(s[:i])
			}
		}
	}
	return "", s
}

package causelist

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Each structural marker has its own recognizer; Tokenize merges their
// matches by position instead of growing one combined pattern.
var (
	// A hall heading carries its identifier on the same line, either after a
	// colon (where the identifier may have wrapped away) or directly after
	// the phrase. Identifiers are not always purely numeric, e.g. "2A".
	hallMarkerRe = regexp.MustCompile(`(?i)COURT\s+HALL\s+NO\s*\.?\s*(?::[ \t]*(\d+[A-Za-z]*)?|[ \t]+(\d+[A-Za-z]*))`)

	listMarkerRe = regexp.MustCompile(`(?i)CAUSE\s+LIST\s+NO\s*\.?\s*:?[ \t]*(\d+)`)

	judgeAnchorRe   = regexp.MustCompile(`(?i)BEFORE\s+THE\s+HON\W?BLE\s+(?:THE\s+CHIEF\s+JUSTICE|(?:MR|MRS|MS|DR|SRI|SMT|KUM)\s*\.?\s*JUSTICE)`)
	beforeKeywordRe = regexp.MustCompile(`(?i)^BEFORE\s+`)

	// A case entry starts its line with an optional decimal serial and a
	// candidate code run; the catalogue decides whether the run anchors a
	// case line.
	caseAnchorRe      = regexp.MustCompile(`(?m)^[ \t]*(?:(\d+(?:\.\d+)?)[ \t]+)?([A-Za-z][A-Za-z.]*)[ \t]*\d+/\d{2,4}`)
	numberAfterCodeRe = regexp.MustCompile(`^[ \t]*\d+/\d{2,4}`)

	petLabelRe = regexp.MustCompile(`(?i)\bPET[ \t]*:`)
	resLabelRe = regexp.MustCompile(`(?i)\bRES[ \t]*:`)
)

// Rules carries the configurable lexical surface of the parser: the noise
// tokens stripped during normalization and the section-heading phrases that
// bound a respondent field on the right. Zero-valued fields fall back to
// DefaultRules values.
type Rules struct {
	NoiseTokens        []string
	SectionTerminators []string
}

// DefaultRules returns the lexical rules observed in currently published
// lists. Hall headings are deliberately absent from the terminators: a footer
// hall marker must stay inside the captured respondent text so that embedded
// extraction can apply it.
func DefaultRules() Rules {
	return Rules{
		NoiseTokens: []string{"Connected With"},
		SectionTerminators: []string{
			"CAUSE LIST NO",
			"BEFORE THE HON",
			"TO BE HEARD",
			"FOR ADMISSION",
			"FOR ORDERS",
			"FOR HEARING",
			"FOR FINAL DISPOSAL",
			"FOR PRELIMINARY HEARING",
		},
	}
}

// TokenKind identifies a structural element recognized in document order.
type TokenKind int

const (
	TokenHall TokenKind = iota
	TokenList
	TokenJudge
	TokenCase
)

// Token is one structural element emitted by the tokenizer. The payload field
// selected by Kind is meaningful; the others are zero.
type Token struct {
	Kind  TokenKind
	Hall  string    // TokenHall; empty when the marker's identifier wrapped out of reach
	List  int       // TokenList
	Judge string    // TokenJudge
	Case  *CaseLine // TokenCase
}

// CaseLine is a recognized case entry before identifier decomposition.
type CaseLine struct {
	Serial     float64 // 0 when the entry carries no serial
	RawCaseID  string  // code, number, and trailing detail text up to the PET label
	Petitioner string
	Respondent string
}

// Tokenizer walks normalized text and emits hall, list, judge, and case
// tokens in document order. Anything matched inside an earlier token's field
// extent is consumed with it and never re-emitted.
type Tokenizer struct {
	taxonomy *Taxonomy
	termRe   *regexp.Regexp
}

// NewTokenizer builds a tokenizer over the given case-type catalogue and
// lexical rules.
func NewTokenizer(taxonomy *Taxonomy, rules Rules) *Tokenizer {
	terms := rules.SectionTerminators
	if len(terms) == 0 {
		terms = DefaultRules().SectionTerminators
	}
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(strings.ToUpper(term))
		if term == "" {
			continue
		}
		// Published text carries uneven spacing inside phrases.
		parts = append(parts, strings.Join(strings.Fields(regexp.QuoteMeta(term)), `[ \t]+`))
	}
	var termRe *regexp.Regexp
	if len(parts) > 0 {
		termRe = regexp.MustCompile(`(?im)^[ \t]*(?:` + strings.Join(parts, `|`) + `)`)
	}
	return &Tokenizer{taxonomy: taxonomy, termRe: termRe}
}

type markKind int

const (
	markHall markKind = iota
	markList
	markJudge
	markCase
)

// mark is one raw recognizer match before dispatch. end is the lexical end of
// the anchor itself, not of any field extent it may go on to consume.
type mark struct {
	kind      markKind
	start     int
	end       int
	hall      string
	list      int
	serial    float64
	codeStart int
	numEnd    int
}

// Tokenize runs every recognizer over text and dispatches the merged matches
// in position order.
func (t *Tokenizer) Tokenize(text string) []Token {
	marks := t.scan(text)
	terms := t.terminatorStarts(text)

	var toks []Token
	pos := 0
	for i, m := range marks {
		if m.start < pos {
			continue // consumed by an earlier token's field extent
		}
		switch m.kind {
		case markHall:
			toks = append(toks, Token{Kind: TokenHall, Hall: m.hall})
			pos = m.end
		case markList:
			toks = append(toks, Token{Kind: TokenList, List: m.list})
			pos = m.end
		case markJudge:
			end := judgeExtent(text, marks, i, terms)
			judge := collapseSpaces(beforeKeywordRe.ReplaceAllString(text[m.start:end], ""))
			toks = append(toks, Token{Kind: TokenJudge, Judge: judge})
			pos = end
		case markCase:
			tok, consumed, embedded, ok := t.caseToken(text, marks, i, terms)
			if !ok {
				pos = m.end // malformed entry: skip the anchor, keep going
				continue
			}
			toks = append(toks, tok)
			toks = append(toks, embedded...)
			pos = consumed
		}
	}
	return toks
}

// scan collects every recognizer match in text, sorted by position. Case
// candidates are validated against the catalogue here: the code run must
// resolve to a known case type immediately followed by a case number.
func (t *Tokenizer) scan(text string) []mark {
	var marks []mark

	for _, m := range hallMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		marks = append(marks, mark{kind: markHall, start: m[0], end: m[1], hall: hallID(text, m)})
	}
	for _, m := range listMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		marks = append(marks, mark{kind: markList, start: m[0], end: m[1], list: n})
	}
	for _, m := range judgeAnchorRe.FindAllStringIndex(text, -1) {
		marks = append(marks, mark{kind: markJudge, start: m[0], end: m[1]})
	}
	for _, m := range caseAnchorRe.FindAllStringSubmatchIndex(text, -1) {
		codeStart := m[4]
		_, n := t.taxonomy.MatchAt(text, codeStart)
		if n == 0 {
			continue
		}
		loc := numberAfterCodeRe.FindStringIndex(text[codeStart+n:])
		if loc == nil {
			continue
		}
		numEnd := codeStart + n + loc[1]
		var serial float64
		if m[2] >= 0 {
			serial, _ = strconv.ParseFloat(text[m[2]:m[3]], 64)
		}
		marks = append(marks, mark{
			kind:      markCase,
			start:     m[0],
			end:       numEnd,
			serial:    serial,
			codeStart: codeStart,
			numEnd:    numEnd,
		})
	}

	sort.SliceStable(marks, func(i, j int) bool { return marks[i].start < marks[j].start })
	return marks
}

// caseToken assembles a case token from the anchor at marks[idx]. The labeled
// petitioner and respondent fields span physical lines, so the respondent's
// right boundary comes from lookahead: the next case anchor, a section
// terminator, or end of text. Hall markers captured inside the respondent are
// page-footer artifacts; they are stripped from the stored text and returned
// as hall tokens to apply immediately after this case.
func (t *Tokenizer) caseToken(text string, marks []mark, idx int, terms []int) (Token, int, []Token, bool) {
	m := marks[idx]

	nextCase := len(text)
	for j := idx + 1; j < len(marks); j++ {
		if marks[j].kind == markCase && marks[j].start >= m.numEnd {
			nextCase = marks[j].start
			break
		}
	}
	limit := nextCase
	if ts := nextAt(terms, m.numEnd); ts < limit {
		limit = ts
	}

	region := text[m.numEnd:limit]
	petLoc := petLabelRe.FindStringIndex(region)
	if petLoc == nil {
		return Token{}, 0, nil, false
	}
	resLoc := resLabelRe.FindStringIndex(region[petLoc[1]:])
	if resLoc == nil {
		return Token{}, 0, nil, false
	}

	petLabelStart := m.numEnd + petLoc[0]
	petStart := m.numEnd + petLoc[1]
	resLabelStart := petStart + resLoc[0]
	resStart := petStart + resLoc[1]

	resEnd := nextCase
	if ts := nextAt(terms, resStart); ts < resEnd {
		resEnd = ts
	}

	resSpan := text[resStart:resEnd]
	var embedded []Token
	var parts []string
	last := 0
	for _, hm := range hallMarkerRe.FindAllStringSubmatchIndex(resSpan, -1) {
		parts = append(parts, resSpan[last:hm[0]])
		last = hm[1]
		embedded = append(embedded, Token{Kind: TokenHall, Hall: hallID(resSpan, hm)})
	}
	parts = append(parts, resSpan[last:])

	tok := Token{
		Kind: TokenCase,
		Case: &CaseLine{
			Serial:     m.serial,
			RawCaseID:  strings.TrimSpace(text[m.codeStart:petLabelStart]),
			Petitioner: collapseSpaces(text[petStart:resLabelStart]),
			Respondent: collapseSpaces(strings.Join(parts, " ")),
		},
	}
	return tok, resEnd, embedded, true
}

// judgeExtent bounds a judge heading: it runs to the next recognized anchor
// or section terminator, capturing multi-judge benches on the way.
func judgeExtent(text string, marks []mark, idx int, terms []int) int {
	m := marks[idx]
	end := len(text)
	for j := idx + 1; j < len(marks); j++ {
		if marks[j].start >= m.end {
			end = marks[j].start
			break
		}
	}
	if ts := nextAt(terms, m.end); ts < end {
		end = ts
	}
	return end
}

// terminatorStarts returns the sorted positions of line-anchored section
// terminators in text.
func (t *Tokenizer) terminatorStarts(text string) []int {
	if t.termRe == nil {
		return nil
	}
	locs := t.termRe.FindAllStringIndex(text, -1)
	starts := make([]int, len(locs))
	for i, l := range locs {
		starts[i] = l[0]
	}
	return starts
}

// nextAt returns the first terminator position at or after from, or a
// past-the-end sentinel when none remains.
func nextAt(terms []int, from int) int {
	i := sort.SearchInts(terms, from)
	if i < len(terms) {
		return terms[i]
	}
	return math.MaxInt
}

// hallID returns the identifier captured by a hall-marker match, upper-cased,
// or "" when the identifier wrapped onto the following line.
func hallID(text string, m []int) string {
	for _, g := range []int{2, 4} {
		if g+1 < len(m) && m[g] >= 0 {
			return strings.ToUpper(text[m[g]:m[g+1]])
		}
	}
	return ""
}

package causelist

import (
	"regexp"
	"strings"
)

var (
	urlLineRe    = regexp.MustCompile(`^(?:https?://|www\.)\S+$`)
	pageMarkerRe = regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+\d+`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// collapseSpaces reassembles text wrapped across physical lines into one
// space-separated line.
func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
}

// Normalizer strips recurring footer boilerplate and configured noise tokens
// from raw per-page text before tokenization. Normalization is idempotent:
// re-normalizing already-normalized text is a no-op.
type Normalizer struct {
	noise []*regexp.Regexp
}

// NewNormalizer compiles the given noise tokens into a normalizer. Tokens are
// matched case-insensitively wherever they appear, because markers such as
// "Connected With" interrupt multi-line case blocks mid-field.
func NewNormalizer(noiseTokens []string) *Normalizer {
	n := &Normalizer{}
	for _, tok := range noiseTokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n.noise = append(n.noise, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(tok)))
	}
	return n
}

// Pages normalizes each page and joins them with a newline into one logical
// text stream.
func (n *Normalizer) Pages(pages []string) string {
	cleaned := make([]string, 0, len(pages))
	for _, p := range pages {
		cleaned = append(cleaned, n.page(p))
	}
	return strings.Join(cleaned, "\n")
}

// page removes URL-only lines, "Page N of M" markers, and noise tokens.
// Lines reduced to nothing by stripping are dropped; lines that were already
// blank are kept so the physical layout survives.
func (n *Normalizer) page(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, line)
			continue
		}
		if urlLineRe.MatchString(trimmed) {
			continue
		}
		replaced := pageMarkerRe.ReplaceAllString(line, "")
		for _, re := range n.noise {
			replaced = re.ReplaceAllString(replaced, "")
		}
		if strings.TrimSpace(replaced) == "" {
			continue
		}
		out = append(out, strings.TrimRight(replaced, " \t"))
	}
	return strings.Join(out, "\n")
}

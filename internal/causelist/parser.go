package causelist

import (
	"fmt"
	"time"
)

// OrphanResolver buffers records assembled while the court hall was still
// unknown and backfills them in place once a hall becomes known. A flushed
// buffer starts empty, so later unknown-hall windows backfill independently
// and no record is ever backfilled twice.
type OrphanResolver struct {
	buf []*CaseRecord
}

// Add buffers a record awaiting hall assignment.
func (o *OrphanResolver) Add(r *CaseRecord) {
	o.buf = append(o.buf, r)
}

// Flush assigns hall to every buffered record and clears the buffer.
func (o *OrphanResolver) Flush(hall string) {
	for _, r := range o.buf {
		r.CourtHall = hall
	}
	o.buf = nil
}

// Pending returns the number of records still awaiting a hall.
func (o *OrphanResolver) Pending() int {
	return len(o.buf)
}

// parseState is the mutable context threaded through one document walk. It is
// allocated fresh per parse and discarded at the end; only the emitted
// records matter.
type parseState struct {
	hall    string
	list    int
	judges  string
	orphans OrphanResolver
}

func newParseState() *parseState {
	return &parseState{hall: UnknownHall}
}

// Parser converts raw per-page cause-list text into ordered case records and
// a date-gating decision. It holds no per-document state: parses on
// independent documents may run concurrently.
type Parser struct {
	normalizer *Normalizer
	tokenizer  *Tokenizer
	history    HistoryStore
}

// NewParser builds a parser over the given case-type catalogue and lexical
// rules. history may be nil, in which case no date is ever reported as
// already processed.
func NewParser(taxonomy *Taxonomy, rules Rules, history HistoryStore) *Parser {
	noise := rules.NoiseTokens
	if len(noise) == 0 {
		noise = DefaultRules().NoiseTokens
	}
	return &Parser{
		normalizer: NewNormalizer(noise),
		tokenizer:  NewTokenizer(taxonomy, rules),
		history:    history,
	}
}

// Parse normalizes the pages, classifies the document's stated effective date
// against asOf, and extracts every case record in document order. The
// decision is advisory: records are returned whatever it says, and the caller
// decides whether to persist them. The only error source is the history
// lookup; parsing itself degrades instead of failing.
func (p *Parser) Parse(pages []string, asOf time.Time) (GatingDecision, []*CaseRecord, error) {
	text := p.normalizer.Pages(pages)

	effective, found := ExtractEffectiveDate(text)

	already := false
	if p.history != nil {
		var err error
		already, err = p.history.Processed(asOf)
		if err != nil {
			return "", nil, fmt.Errorf("checking processing history: %w", err)
		}
	}
	decision := Gate(effective, found, asOf, already)

	return decision, p.extract(text, asOf), nil
}

// extract walks the token stream, updating context markers and assembling a
// record from the current context at every case token.
func (p *Parser) extract(text string, asOf time.Time) []*CaseRecord {
	st := newParseState()
	var records []*CaseRecord

	for _, tok := range p.tokenizer.Tokenize(text) {
		switch tok.Kind {
		case TokenHall:
			if tok.Hall == "" {
				// A marker whose identifier wrapped out of reach opens a
				// fresh unknown-hall window; the buffer keeps waiting for a
				// real identifier.
				st.hall = UnknownHall
				continue
			}
			st.hall = tok.Hall
			st.orphans.Flush(tok.Hall)
		case TokenList:
			st.list = tok.List
		case TokenJudge:
			st.judges = tok.Judge
		case TokenCase:
			id := ParseCaseID(tok.Case.RawCaseID)
			rec := &CaseRecord{
				Date:        asOf.Format(DateLayout),
				CourtHall:   st.hall,
				ListNumber:  st.list,
				SerialNo:    tok.Case.Serial,
				CaseNumber:  id.Number,
				CaseType:    id.Type,
				CaseDetails: id.Details,
				Judges:      st.judges,
				Petitioner:  tok.Case.Petitioner,
				Respondent:  tok.Case.Respondent,
			}
			records = append(records, rec)
			if st.hall == UnknownHall {
				st.orphans.Add(rec)
			}
		}
	}
	return records
}

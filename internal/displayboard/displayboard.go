package displayboard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultURL = "https://judiciary.karnataka.gov.in/display_board_bench.php"
	UserAgent  = "court-scraper/1.0 (github.com/shivaraj-arch/court-scraper)"
)

// Record is one live display-board entry: the case a court hall is hearing
// right now. Identifiers stay as printed; the board is free text.
type Record struct {
	CourtHall  string
	ListNumber string
	CaseNumber string
}

// Scraper polls the court's display-board page.
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for the given board URL.
func New(url string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scraper{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Fetch downloads the board page and returns its current entries.
func (s *Scraper) Fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}

// Parse extracts board entries from HTML. Every table is scanned; the first
// row of each is a header. A row counts only when it has at least four cells
// and the hall, list number, and case number are all non-blank.
func Parse(r io.Reader) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var records []Record
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return
			}
			cells := row.Find("td")
			if cells.Length() < 4 {
				return
			}
			rec := Record{
				CourtHall:  strings.TrimSpace(cells.Eq(0).Text()),
				ListNumber: strings.TrimSpace(cells.Eq(1).Text()),
				CaseNumber: strings.TrimSpace(cells.Eq(3).Text()),
			}
			if rec.CourtHall == "" || rec.ListNumber == "" || rec.CaseNumber == "" {
				return
			}
			records = append(records, rec)
		})
	})
	return records, nil
}

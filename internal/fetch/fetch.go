package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ledongthuc/pdf"
)

const (
	UserAgent      = "court-scraper/1.0 (github.com/shivaraj-arch/court-scraper)"
	DefaultTimeout = 30 * time.Second

	defaultRetries = 3
)

// Client downloads the published cause-list PDF. Transient failures are
// retried with exponential backoff; client errors are not.
type Client struct {
	client  *http.Client
	url     string
	retries uint64
	wait    time.Duration
}

// New creates a Client for the given document URL.
func New(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		url:     url,
		retries: defaultRetries,
		wait:    500 * time.Millisecond,
	}
}

// Fetch downloads the document and returns its raw bytes. Network errors and
// server-side status codes are retried; any other non-OK status fails
// immediately.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	var data []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching document: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading document body: %w", err)
		}
		data = body
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.wait
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, c.retries), ctx)); err != nil {
		return nil, err
	}
	return data, nil
}

// Document fetches the cause-list PDF and extracts its per-page text.
func (c *Client) Document(ctx context.Context) ([]string, error) {
	data, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractPages(data)
}

// ExtractPages converts raw PDF bytes into one text string per page, reading
// rows top to bottom.
func ExtractPages(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(p))
	}
	return pages, nil
}

// pageText reconstructs a page's text from positioned rows, falling back to
// the library's plain extraction when row data is unavailable.
func pageText(p pdf.Page) string {
	rows, err := p.GetTextByRow()
	if err != nil || len(rows) == 0 {
		plain, perr := p.GetPlainText(nil)
		if perr != nil {
			return ""
		}
		return plain
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	// PDF Y coordinates grow upward, so the top row has the highest position.
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position > sorted[j].Position })

	var b strings.Builder
	for _, row := range sorted {
		line := rowText(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// rowText joins a row's text elements left to right, inserting a space where
// the horizontal gap between neighbors exceeds a fraction of the font size.
func rowText(elems []pdf.Text) string {
	sorted := make([]pdf.Text, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var b strings.Builder
	for i, el := range sorted {
		b.WriteString(el.S)
		if i == len(sorted)-1 {
			continue
		}
		gap := sorted[i+1].X - (el.X + el.W)
		size := el.FontSize
		if size <= 0 {
			size = 12
		}
		if gap > size*0.2 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

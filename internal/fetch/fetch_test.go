package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// buildPDF assembles a minimal single-page PDF placing each line at its own
// vertical position. Object offsets are computed while writing so the cross
// reference table is always valid.
func buildPDF(t *testing.T, lines []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 6)
	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>")

	widths := strings.TrimSpace(strings.Repeat("500 ", 95))
	writeObj(4, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /FirstChar 32 /LastChar 126 /Widths [ "+widths+" ] >>")

	var content strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&content, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", 760-14*i, line)
	}
	writeObj(5, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()))

	xref := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("User-Agent = %q, want %q", got, UserAgent)
		}
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("document-bytes"))
	}))
	defer server.Close()

	c := New(server.URL, time.Second)
	c.wait = time.Millisecond

	data, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if string(data) != "document-bytes" {
		t.Errorf("data = %q", data)
	}
	if got := attempts.Load(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestFetch_ClientErrorNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL, time.Second)
	c.wait = time.Millisecond

	_, err := c.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "unexpected status code: 404") {
		t.Errorf("error = %v", err)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("attempts = %d, want 1: client errors must not be retried", got)
	}
}

func TestFetch_GivesUpAfterRetries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, time.Second)
	c.wait = time.Millisecond

	_, err := c.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !strings.Contains(err.Error(), "unexpected status code: 500") {
		t.Errorf("error = %v", err)
	}
	if got := attempts.Load(); got != int32(defaultRetries)+1 {
		t.Errorf("attempts = %d, want %d", got, defaultRetries+1)
	}
}

func TestExtractPages(t *testing.T) {
	data := buildPDF(t, []string{
		"COURT HALL NO : 5",
		"1 WP 1/2024 PET: A RES: B",
	})

	pages, err := ExtractPages(data)
	if err != nil {
		t.Fatalf("ExtractPages() unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if !strings.Contains(pages[0], "COURT HALL NO : 5") {
		t.Errorf("page text = %q, missing hall heading", pages[0])
	}
	if !strings.Contains(pages[0], "WP 1/2024") {
		t.Errorf("page text = %q, missing case line", pages[0])
	}

	hall := strings.Index(pages[0], "COURT HALL")
	entry := strings.Index(pages[0], "1 WP")
	if hall > entry {
		t.Errorf("page text = %q, lines out of reading order", pages[0])
	}
}

func TestExtractPages_InvalidData(t *testing.T) {
	if _, err := ExtractPages([]byte("not a pdf document")); err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}

func TestDocument(t *testing.T) {
	pdfBytes := buildPDF(t, []string{"CAUSE LIST NO : 2"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdfBytes)
	}))
	defer server.Close()

	c := New(server.URL, time.Second)
	pages, err := c.Document(context.Background())
	if err != nil {
		t.Fatalf("Document() unexpected error: %v", err)
	}
	if len(pages) != 1 || !strings.Contains(pages[0], "CAUSE LIST NO : 2") {
		t.Errorf("pages = %q", pages)
	}
}

package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
)

func TestSaveAndLoad(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}

	day := time.Date(2026, time.January, 23, 0, 0, 0, 0, time.UTC)
	records := []*causelist.CaseRecord{
		{
			Date:       "2026-01-23",
			CourtHall:  "1",
			ListNumber: 1,
			SerialNo:   1,
			CaseNumber: "WP 4821/2025",
			CaseType:   "WP",
			Petitioner: "RAMESH KUMAR",
			Respondent: "STATE OF KARNATAKA",
		},
		{
			Date:       "2026-01-23",
			CourtHall:  "14",
			ListNumber: 3,
			SerialNo:   2,
			CaseNumber: "CCC 412/2025",
			CaseType:   "CCC",
		},
	}

	if err := storage.Save(day, records); err != nil {
		t.Fatalf("saving archive: %v", err)
	}

	path := storage.Path(day)
	if filepath.Base(path) != "causelist_2026-01-23.json" {
		t.Errorf("unexpected archive name %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected archive file: %v", err)
	}

	loaded, err := storage.Load(day)
	if err != nil {
		t.Fatalf("loading archive: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected archived day")
	}
	if loaded.Date != "2026-01-23" || loaded.CaseCount != 2 {
		t.Errorf("unexpected archive header: %+v", loaded)
	}
	if len(loaded.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(loaded.Cases))
	}
	if loaded.Cases[0].CaseNumber != "WP 4821/2025" {
		t.Errorf("unexpected first case %q", loaded.Cases[0].CaseNumber)
	}
	if _, err := time.Parse(time.RFC3339, loaded.SavedAt); err != nil {
		t.Errorf("saved_at is not RFC3339: %q", loaded.SavedAt)
	}
}

func TestLoad_MissingDay(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}

	loaded, err := storage.Load(time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil for unarchived day, got %+v", loaded)
	}
}

func TestLoad_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	storage, err := New(dir)
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}

	day := time.Date(2026, time.January, 23, 0, 0, 0, 0, time.UTC)
	if err := os.WriteFile(storage.Path(day), []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	_, err = storage.Load(day)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "parsing archive") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "archive")

	if _, err := New(dir); err != nil {
		t.Fatalf("creating storage: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

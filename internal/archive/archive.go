package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
)

// Storage handles persistence of day archives
type Storage struct {
	dataDir string
}

// Day is the archived form of one cause list
type Day struct {
	Date      string                  `json:"date"`
	SavedAt   string                  `json:"saved_at"`
	CaseCount int                     `json:"case_count"`
	Cases     []*causelist.CaseRecord `json:"cases"`
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Path returns the archive file path for the given list date
func (s *Storage) Path(day time.Time) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("causelist_%s.json", day.Format(causelist.DateLayout)))
}

// Save writes the day's parsed records to its archive file
func (s *Storage) Save(day time.Time, records []*causelist.CaseRecord) error {
	archived := Day{
		Date:      day.Format(causelist.DateLayout),
		SavedAt:   time.Now().UTC().Format(time.RFC3339),
		CaseCount: len(records),
		Cases:     records,
	}

	data, err := json.MarshalIndent(archived, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}

	if err := os.WriteFile(s.Path(day), data, 0644); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}

	return nil
}

// Load reads a day's archive from disk. It returns nil without error when
// the day was never archived.
func (s *Storage) Load(day time.Time) (*Day, error) {
	data, err := os.ReadFile(s.Path(day))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading archive: %w", err)
	}

	var archived Day
	if err := json.Unmarshal(data, &archived); err != nil {
		return nil, fmt.Errorf("parsing archive: %w", err)
	}

	return &archived, nil
}

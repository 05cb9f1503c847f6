// Package storage keeps saved algorithm comparison reports on disk, one
// directory per report.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/trace"
)

var (
	ErrNotFound  = errors.New("storage: report not found")
	ErrInvalidID = errors.New("storage: invalid report id")
)

var resultsHeader = []string{"algorithm", "name", "steps", "comparisons", "swaps", "writes"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Report struct {
	ID        string                  `json:"id"`
	Timestamp time.Time               `json:"timestamp"`
	Input     trace.Array             `json:"input"`
	Seed      int64                   `json:"seed"`
	Shape     string                  `json:"shape"`
	Results   []algorithms.Comparison `json:"results"`
}

// Save writes report.json and results.csv under a new report id.
func (s *Store) Save(input trace.Array, seed int64, shape string, results []algorithms.Comparison) (string, error) {
	id := uuid.NewString()
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	report := Report{
		ID:        id,
		Timestamp: time.Now(),
		Input:     input.Clone(),
		Seed:      seed,
		Shape:     shape,
		Results:   results,
	}

	metaFile, err := os.Create(filepath.Join(dir, "report.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "results.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(resultsHeader); err != nil {
		return "", err
	}
	for _, r := range results {
		row := []string{
			r.ID,
			r.Name,
			strconv.Itoa(r.Steps),
			strconv.Itoa(r.Comparisons),
			strconv.Itoa(r.Swaps),
			strconv.Itoa(r.Writes),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return id, nil
}

// List returns every readable report, newest first.
func (s *Store) List() ([]Report, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}

	reports := make([]Report, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		report, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		reports = append(reports, *report)
	}

	slices.SortFunc(reports, func(a, b Report) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return reports, nil
}

func (s *Store) Load(id string) (*Report, error) {
	dir, err := s.reportDir(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("storage: decode report %s: %w", id, err)
	}
	return &report, nil
}

// LoadResults reads the results table of a report back from its CSV file.
func (s *Store) LoadResults(id string) ([]algorithms.Comparison, error) {
	dir, err := s.reportDir(id)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(dir, "results.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(resultsHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []algorithms.Comparison{}, nil
	}

	results := make([]algorithms.Comparison, 0, len(records)-1)
	for _, record := range records[1:] {
		nums := make([]int, 4)
		for j := range nums {
			v, err := strconv.Atoi(record[2+j])
			if err != nil {
				return nil, fmt.Errorf("storage: report %s: %w", id, err)
			}
			nums[j] = v
		}
		results = append(results, algorithms.Comparison{
			ID:          record[0],
			Name:        record[1],
			Steps:       nums[0],
			Comparisons: nums[1],
			Swaps:       nums[2],
			Writes:      nums[3],
		})
	}
	return results, nil
}

// Delete removes a report and its files.
func (s *Store) Delete(id string) error {
	dir, err := s.reportDir(id)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return os.RemoveAll(dir)
}

// reportDir maps id to its directory. Only uuids are accepted, so an id can
// never name a path outside the store.
func (s *Store) reportDir(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(s.baseDir, parsed.String()), nil
}

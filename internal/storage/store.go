// Package storage persists recorded traces as one directory per run:
// metadata.json for the run header and steps.csv for the step list.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/sortviz/internal/trace"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // manual, random, preset name
	Seed      int64     `json:"seed"`
	Count     int       `json:"count"`
	Steps     int       `json:"steps"`
	Input     []float64 `json:"input"`
}

// Save writes one run directory and returns its id.
func (s *Store) Save(source string, seed int64, tr *trace.Trace) (string, error) {
	runID := fmt.Sprintf("sort_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Source:    source,
		Seed:      seed,
		Count:     len(tr.Input),
		Steps:     tr.Len(),
		Input:     tr.Input,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"kind", "depth", "pos", "from_left", "left_start", "left_end", "right_start", "right_end", "description"}
	for i := range tr.Input {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, step := range tr.Steps {
		row := []string{
			string(step.Kind),
			strconv.Itoa(step.Depth),
			strconv.Itoa(step.Pos),
			strconv.FormatBool(step.FromLeft),
			strconv.Itoa(step.Left.Start),
			strconv.Itoa(step.Left.End),
			strconv.Itoa(step.Right.Start),
			strconv.Itoa(step.Right.End),
			step.Description,
		}
		for _, v := range step.Snapshot {
			row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrace reads a saved run back into a full trace.
func (s *Store) LoadTrace(runID string) (*trace.Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	tr := &trace.Trace{Input: meta.Input}
	const fixed = 9

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < fixed {
			return nil, fmt.Errorf("run %s: malformed step row %d", runID, i)
		}

		step := trace.Step{
			Kind:        trace.Kind(record[0]),
			Description: record[8],
		}
		step.Depth, _ = strconv.Atoi(record[1])
		step.Pos, _ = strconv.Atoi(record[2])
		step.FromLeft, _ = strconv.ParseBool(record[3])
		step.Left.Start, _ = strconv.Atoi(record[4])
		step.Left.End, _ = strconv.Atoi(record[5])
		step.Right.Start, _ = strconv.Atoi(record[6])
		step.Right.End, _ = strconv.Atoi(record[7])

		step.Snapshot = make([]float64, 0, len(record)-fixed)
		for j := fixed; j < len(record); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: bad value at row %d: %w", runID, i, err)
			}
			step.Snapshot = append(step.Snapshot, v)
		}

		tr.Steps = append(tr.Steps, step)
	}

	return tr, nil
}

package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/stats"
	"github.com/san-kum/sortviz/internal/trace"
)

type ExportData struct {
	ID      string        `json:"id"`
	Source  string        `json:"source"`
	Seed    int64         `json:"seed"`
	Steps   int           `json:"steps"`
	Input   []float64     `json:"input"`
	Sorted  []float64     `json:"sorted"`
	Summary stats.Summary `json:"summary"`
	Trace   []trace.Step  `json:"trace"`
}

// ExportJSON writes the full trace of a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, tr *trace.Trace) error {
	data := ExportData{
		ID:      meta.ID,
		Source:  meta.Source,
		Seed:    meta.Seed,
		Steps:   tr.Len(),
		Input:   tr.Input,
		Sorted:  tr.Final(),
		Summary: stats.Summarize(tr.Input),
		Trace:   tr.Steps,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile is ExportJSON to a file path.
func ExportJSONFile(path string, meta *RunMetadata, tr *trace.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, tr)
}

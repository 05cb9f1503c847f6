// Package export writes traces, frames and comparison tables in
// machine-readable and image formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/trace"
)

type TraceData struct {
	Algorithm string         `json:"algorithm" yaml:"algorithm"`
	Name      string         `json:"name" yaml:"name"`
	Input     trace.Array    `json:"input" yaml:"input"`
	Steps     int            `json:"steps" yaml:"steps"`
	Metrics   map[string]int `json:"metrics" yaml:"metrics"`
	Trace     trace.Trace    `json:"trace" yaml:"trace"`
}

func NewTraceData(d algorithms.Descriptor, input trace.Array, steps trace.Trace) TraceData {
	return TraceData{
		Algorithm: d.ID,
		Name:      d.Name,
		Input:     input.Clone(),
		Steps:     len(steps),
		Metrics:   metrics.Collect(steps, metrics.Defaults()...),
		Trace:     steps,
	}
}

// Localize returns a copy of data whose step descriptions are rendered by p.
func (data TraceData) Localize(p *message.Printer) TraceData {
	steps := make(trace.Trace, len(data.Trace))
	for i, s := range data.Trace {
		s.Description = trace.Describe(p, s)
		steps[i] = s
	}
	data.Trace = steps
	return data
}

func WriteJSON(w io.Writer, data TraceData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func WriteYAML(w io.Writer, data TraceData) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Write encodes data in format, "json" or "yaml".
func Write(w io.Writer, format string, data TraceData) error {
	switch strings.ToLower(format) {
	case "json":
		return WriteJSON(w, data)
	case "yaml", "yml":
		return WriteYAML(w, data)
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}

// ExportFile writes data to path, choosing YAML for .yaml/.yml paths and
// JSON otherwise.
func ExportFile(path string, data TraceData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	format := "json"
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		format = "yaml"
	}
	return Write(file, format, data)
}

// WriteReportJSON writes a saved comparison report as indented JSON.
func WriteReportJSON(w io.Writer, r *storage.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

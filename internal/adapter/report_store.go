// Package adapter persists inference reports on the local filesystem.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	m "github.com/mouse-blink/hoppit/internal/model"
)

// ReportStore persists and retrieves inference reports.
type ReportStore interface {
	Save(dir m.Path, report m.Report) error
	Load(path m.Path) (m.Report, error)
	LoadAll(dir m.Path) ([]m.Report, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore backed by JSON files.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// Save writes the report into dir, creating it if needed.
func (rs *reportStore) Save(dir m.Path, report m.Report) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("failed to create reports dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), FileName(report))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// FileName derives the report file name from its configuration:
// <model>__<tag>_count<count>_eps<eps>_leapfrogsteps<steps>.json
// where tag is chain<i> for sampler reports and is for importance reports.
func FileName(report m.Report) string {
	cfg := report.Config

	tag := fmt.Sprintf("chain%d", cfg.Chain)
	if report.Method == m.MethodImportance {
		tag = "is"
	}

	eps := strconv.FormatFloat(cfg.Eps, 'g', -1, 64)

	return fmt.Sprintf("%s__%s_count%d_eps%s_leapfrogsteps%d.json",
		cfg.Model, tag, cfg.Count, eps, cfg.LeapfrogSteps)
}

// Load reads a single report file.
func (rs *reportStore) Load(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}

// LoadAll reads every report in dir, in lexical file-name order.
func (rs *reportStore) LoadAll(dir m.Path) ([]m.Report, error) {
	matches, err := filepath.Glob(filepath.Join(string(dir), "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan reports dir: %w", err)
	}

	reports := make([]m.Report, 0, len(matches))

	for _, match := range matches {
		report, err := rs.Load(m.Path(match))
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	return reports, nil
}

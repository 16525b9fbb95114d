// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes machine-readable batch summaries.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// FileStatus records the outcome for one file of a batch.
type FileStatus struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Chunks int    `json:"chunks,omitempty" yaml:"chunks,omitempty"`
}

// File status values.
const (
	StatusDone   = "done"
	StatusFailed = "failed"
)

// Report is the full outcome of one convert or translate invocation.
type Report struct {
	Command   string       `json:"command" yaml:"command"`
	Succeeded int          `json:"succeeded" yaml:"succeeded"`
	Failed    int          `json:"failed" yaml:"failed"`
	Usage     types.Usage  `json:"usage,omitempty" yaml:"usage,omitempty"`
	Cost      float64      `json:"cost,omitempty" yaml:"cost,omitempty"`
	Files     []FileStatus `json:"files" yaml:"files"`
}

// Write marshals the report to YAML at path, creating parent directories as
// needed.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements HTML-to-Markdown conversion with pluggable
// engines.
// See docs/ARCHITECTURE § Conversion.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/doc-engine/internal/pathing"
	"github.com/pdiddy/doc-engine/internal/report"
	"github.com/pdiddy/doc-engine/pkg/types"
)

// Engine transforms one HTML document into Markdown. Different backends
// (native library, pandoc container) implement this interface.
type Engine interface {
	// Convert returns the Markdown rendering of the given HTML text.
	Convert(html string) (string, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
	Files     []report.FileStatus
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertFile converts one HTML file and writes the Markdown output,
// overwriting any existing file. The output is written only after conversion
// succeeds, so a failure leaves no partial file.
func ConvertFile(e Engine, input, output string) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", types.ErrInvalidPath, input, err)
	}

	doc := types.Document{Path: input, Content: string(raw)}

	md, err := e.Convert(doc.Content)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrConversion, input, err)
	}

	if err := writeOutput(output, md); err != nil {
		return err
	}
	return nil
}

// ConvertBatch runs ConvertFile over every pair, printing per-file status to
// w. A file's failure is logged and does not stop the batch.
func ConvertBatch(e Engine, pairs []pathing.Pair, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range pairs {
		if err := ConvertFile(e, p.Input, p.Output); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", p.Input, err)
			result.Failed++
			result.Files = append(result.Files, report.FileStatus{
				Input:  p.Input,
				Status: report.StatusFailed,
				Error:  err.Error(),
			})
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", p.Input, p.Output)
		result.Converted++
		result.Files = append(result.Files, report.FileStatus{
			Input:  p.Input,
			Output: p.Output,
			Status: report.StatusDone,
		})
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}

// writeOutput writes content to path, creating parent directories first.
func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", types.ErrWrite, dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrWrite, path, err)
	}
	return nil
}

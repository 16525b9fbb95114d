// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate runs Markdown files through the translation API chunk by
// chunk and reassembles the results in document order.
// See docs/ARCHITECTURE § Translation.
package translate

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pdiddy/doc-engine/internal/chunk"
	"github.com/pdiddy/doc-engine/internal/pathing"
	"github.com/pdiddy/doc-engine/internal/report"
	"github.com/pdiddy/doc-engine/pkg/types"
)

// BatchResult holds the outcome of a batch translation run.
type BatchResult struct {
	Translated int
	Failed     int
	Usage      types.Usage
	Files      []report.FileStatus
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Translated + r.Failed
}

// HasFailures reports whether any files failed translation.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// backoffBase controls the base duration for exponential backoff between
// translation attempts. Tests override this to avoid real sleeps.
var backoffBase = time.Second

// callWithRetry calls the backend with bounded exponential backoff.
func callWithRetry(ctx context.Context, b Backend, text string, maxRetries int) (Result, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		res, err := b.Translate(ctx, text)
		if err == nil {
			return res, nil
		}
		if ctx.Err() != nil {
			return Result{}, err
		}
		lastErr = err
	}
	return Result{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

// TranslateFile translates one Markdown file and writes the result to
// output. The document is chunked, each non-verbatim chunk is sent to the
// backend, and the results are reassembled in original order. The output is
// written only once the whole document has been translated, so a failure
// leaves no partial file. It returns the API usage and the chunk count.
func TranslateFile(ctx context.Context, b Backend, input, output string, cfg types.TranslationConfig) (types.Usage, int, error) {
	raw, err := os.ReadFile(input)
	if err != nil {
		return types.Usage{}, 0, fmt.Errorf("%w: reading %s: %v", types.ErrInvalidPath, input, err)
	}

	doc := types.Document{Path: input, Content: string(raw)}
	sc := chunk.NewScanner(doc.Content, cfg.MaxChunkSize)

	parts, usage, err := translateChunks(ctx, b, sc, cfg)
	if err != nil {
		return usage, 0, err
	}

	final := chunk.Assemble(parts)
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return usage, 0, fmt.Errorf("%w: creating %s: %v", types.ErrWrite, dir, err)
		}
	}
	if err := os.WriteFile(output, []byte(final), 0o644); err != nil {
		return usage, 0, fmt.Errorf("%w: %s: %v", types.ErrWrite, output, err)
	}
	return usage, len(parts), nil
}

// translateChunks consumes the scanner exactly once and returns the
// translated chunk texts in document order. Verbatim chunks bypass the
// backend and are carried through unchanged.
func translateChunks(ctx context.Context, b Backend, sc *chunk.Scanner, cfg types.TranslationConfig) ([]string, types.Usage, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	if cfg.Concurrency > 1 {
		return translateChunksPooled(ctx, b, sc, cfg.Concurrency, maxRetries)
	}

	var (
		parts []string
		usage types.Usage
	)
	for sc.Scan() {
		c := sc.Chunk()
		if c.Verbatim {
			parts = append(parts, c.Text)
			continue
		}
		res, err := callWithRetry(ctx, b, c.Text, maxRetries)
		if err != nil {
			return nil, usage, fmt.Errorf("chunk %d: %w", c.Index, err)
		}
		parts = append(parts, res.Text)
		usage.Add(res.Usage)
	}
	return parts, usage, nil
}

// translateChunksPooled translates chunks with a bounded worker pool.
// Results are stored by chunk index so reassembly preserves document order.
func translateChunksPooled(ctx context.Context, b Backend, sc *chunk.Scanner, workers, maxRetries int) ([]string, types.Usage, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		parts    []string
		usage    types.Usage
		firstErr error
	)
	setPart := func(i int, text string) {
		mu.Lock()
		defer mu.Unlock()
		for len(parts) <= i {
			parts = append(parts, "")
		}
		parts[i] = text
	}
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	jobs := make(chan types.Chunk)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				if ctx.Err() != nil {
					continue
				}
				res, err := callWithRetry(ctx, b, c.Text, maxRetries)
				if err != nil {
					fail(fmt.Errorf("chunk %d: %w", c.Index, err))
					continue
				}
				setPart(c.Index, res.Text)
				mu.Lock()
				usage.Add(res.Usage)
				mu.Unlock()
			}
		}()
	}

	for sc.Scan() {
		c := sc.Chunk()
		if c.Verbatim {
			setPart(c.Index, c.Text)
			continue
		}
		select {
		case jobs <- c:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, usage, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, usage, err
	}
	return parts, usage, nil
}

// TranslateBatch runs TranslateFile over every pair, printing per-file
// status to w. A file's failure is logged and does not stop the batch; a
// cancelled context stops the batch after the in-flight file.
func TranslateBatch(ctx context.Context, b Backend, pairs []pathing.Pair, cfg types.TranslationConfig, w io.Writer) BatchResult {
	var result BatchResult
	for i, p := range pairs {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "interrupted: %d file(s) left unprocessed\n", len(pairs)-i)
			break
		}

		fmt.Fprintf(w, "translating %s\n", p.Input)
		usage, chunks, err := TranslateFile(ctx, b, p.Input, p.Output, cfg)
		result.Usage.Add(usage)
		if err != nil {
			fmt.Fprintf(w, "failed:     %s (%v)\n", p.Input, err)
			result.Failed++
			result.Files = append(result.Files, report.FileStatus{
				Input:  p.Input,
				Status: report.StatusFailed,
				Error:  err.Error(),
			})
			continue
		}

		fmt.Fprintf(w, "translated: %s -> %s (%d chunks)\n", p.Input, p.Output, chunks)
		result.Translated++
		result.Files = append(result.Files, report.FileStatus{
			Input:  p.Input,
			Output: p.Output,
			Status: report.StatusDone,
			Chunks: chunks,
		})
	}

	fmt.Fprintf(w, "\nBatch summary: %d translated, %d failed (total: %d)\n",
		result.Translated, result.Failed, result.Total())
	if result.Usage != (types.Usage{}) {
		fmt.Fprintf(w, "Token usage: %d in, %d out (cost: %.4f)\n",
			result.Usage.PromptTokens, result.Usage.CompletionTokens,
			result.Usage.Cost(cfg.Pricing))
	}
	return result
}

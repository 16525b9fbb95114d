// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pathing resolves CLI input/output arguments into per-file work
// items for the conversion and translation pipelines.
// See docs/ARCHITECTURE § Path Resolution.
package pathing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// Pair couples one input file with the output path its result is written to.
type Pair struct {
	Input  string
	Output string
}

// Rename maps an input base name (extension stripped) to an output filename.
type Rename func(base string) string

// MarkdownName returns a Rename producing "<prefix><base>.md".
func MarkdownName(prefix string) Rename {
	return func(base string) string {
		return prefix + base + ".md"
	}
}

// Resolve turns an input path and an output path into the list of files to
// process. A single input file yields one pair; an input directory is walked
// recursively for files whose extension matches exts, and output paths mirror
// the input's relative directory structure under the output directory.
//
// Missing inputs and directories with no matching files wrap
// types.ErrInvalidPath.
func Resolve(input, output string, exts []string, rename Rename) ([]Pair, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrInvalidPath, input, err)
	}

	if !info.IsDir() {
		return []Pair{{Input: input, Output: resolveSingleOutput(input, output, rename)}}, nil
	}

	var pairs []Pair
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesExt(path, exts) {
			return nil
		}
		rel, err := filepath.Rel(input, path)
		if err != nil {
			return err
		}
		out := filepath.Join(output, filepath.Dir(rel), rename(stripExt(filepath.Base(path))))
		pairs = append(pairs, Pair{Input: path, Output: out})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %v", types.ErrInvalidPath, input, err)
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: no %s files under %s", types.ErrInvalidPath, strings.Join(exts, "/"), input)
	}
	return pairs, nil
}

// resolveSingleOutput computes the output path for a single-file invocation.
// If output names an existing directory the renamed input base is appended;
// otherwise output is used as given.
func resolveSingleOutput(input, output string, rename Rename) string {
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, rename(stripExt(filepath.Base(input))))
	}
	return output
}

func matchesExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

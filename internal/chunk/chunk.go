// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chunk splits Markdown text into bounded-size chunks for the
// translation API. Fenced code blocks are emitted whole and marked verbatim;
// prose is cut before headings, then at paragraph boundaries, then at line
// boundaries. Concatenating the chunks of a document in order reproduces the
// document byte-for-byte.
// See docs/ARCHITECTURE § Chunking.
package chunk

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/doc-engine/pkg/types"
)

// DefaultMaxSize is the chunk byte budget when none is configured.
const DefaultMaxSize = 8192

// Scanner yields the chunks of one document in order. It is lazy, finite,
// and non-restartable: each document gets a fresh Scanner, consumed once.
//
// Usage follows bufio.Scanner:
//
//	s := chunk.NewScanner(content, maxSize)
//	for s.Scan() {
//		c := s.Chunk()
//	}
type Scanner struct {
	content string
	max     int
	pos     int
	index   int
	cur     types.Chunk
}

// NewScanner returns a Scanner over content with the given byte budget per
// chunk. A non-positive maxSize selects DefaultMaxSize.
func NewScanner(content string, maxSize int) *Scanner {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Scanner{content: content, max: maxSize}
}

// Scan advances to the next chunk. It returns false when the document is
// exhausted; empty input yields no chunks.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.content) {
		return false
	}

	start := s.pos
	var end int
	verbatim := false

	if isFenceLine(lineAt(s.content, start)) {
		end = s.fenceEnd(start)
		verbatim = true
	} else {
		end = s.proseEnd(start)
	}

	s.cur = types.Chunk{Index: s.index, Text: s.content[start:end], Verbatim: verbatim}
	s.pos = end
	s.index++
	return true
}

// Chunk returns the chunk produced by the last successful Scan.
func (s *Scanner) Chunk() types.Chunk {
	return s.cur
}

// Split consumes a fresh Scanner over content and returns every chunk.
func Split(content string, maxSize int) []types.Chunk {
	var chunks []types.Chunk
	s := NewScanner(content, maxSize)
	for s.Scan() {
		chunks = append(chunks, s.Chunk())
	}
	return chunks
}

// Assemble concatenates chunk texts in slice order. With the original chunk
// texts this reproduces the source document exactly.
func Assemble(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

// fenceEnd returns the end offset of the fence region opening at start: the
// opening fence line through the closing fence line inclusive. An
// unterminated fence extends to the end of the document. The region is never
// split, whatever its size.
func (s *Scanner) fenceEnd(start int) int {
	pos := start + len(lineAt(s.content, start))
	for pos < len(s.content) {
		line := lineAt(s.content, pos)
		pos += len(line)
		if isFenceLine(line) {
			return pos
		}
	}
	return len(s.content)
}

// proseEnd returns the end offset of the prose chunk starting at start.
// The chunk ends before the next fence or heading line, or where adding a
// line would exceed the byte budget. When the budget forces a cut the most
// recent paragraph boundary is preferred over a bare line boundary.
func (s *Scanner) proseEnd(start int) int {
	pos := start
	size := 0
	lastParaEnd := -1
	first := true

	for pos < len(s.content) {
		line := lineAt(s.content, pos)

		if !first && (isFenceLine(line) || isHeadingLine(line)) {
			return pos
		}

		if size+len(line) > s.max {
			if first {
				// A single line over budget is cut mid-line, at a
				// space when one fits.
				return start + splitPoint(line, s.max)
			}
			if lastParaEnd > start {
				return lastParaEnd
			}
			return pos
		}

		size += len(line)
		pos += len(line)
		if strings.TrimSpace(line) == "" {
			lastParaEnd = pos
		}
		first = false
	}
	return pos
}

// lineAt returns the line beginning at offset pos, including its trailing
// newline when present.
func lineAt(content string, pos int) string {
	if i := strings.IndexByte(content[pos:], '\n'); i >= 0 {
		return content[pos : pos+i+1]
	}
	return content[pos:]
}

// isFenceLine reports whether the line opens or closes a fenced code block.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```")
}

// isHeadingLine reports whether the line is an h1-h3 heading. Headings start
// a new chunk, matching the document's section structure.
func isHeadingLine(line string) bool {
	return strings.HasPrefix(line, "# ") ||
		strings.HasPrefix(line, "## ") ||
		strings.HasPrefix(line, "### ")
}

// splitPoint picks a cut offset at or below max for an oversized line,
// preferring the position after the last space and never landing inside a
// UTF-8 rune.
func splitPoint(line string, max int) int {
	if max >= len(line) {
		return len(line)
	}

	i := max
	for i > 0 && !utf8.RuneStart(line[i]) {
		i--
	}
	if i == 0 {
		// Budget smaller than the first rune; emit the rune whole.
		_, n := utf8.DecodeRuneInString(line)
		return n
	}

	if j := strings.LastIndexByte(line[:i], ' '); j > 0 {
		return j + 1
	}
	return i
}

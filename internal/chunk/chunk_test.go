// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
	}{
		{
			name:    "plain paragraphs",
			content: "First paragraph here.\n\nSecond paragraph here.\n",
			max:     1000,
		},
		{
			name:    "headings and text",
			content: "# Title\n\nIntro text.\n\n## Section\n\nBody text.\n\n### Sub\n\nMore.\n",
			max:     1000,
		},
		{
			name:    "fenced code block",
			content: "Before.\n\n```go\nfunc main() {}\n```\n\nAfter.\n",
			max:     1000,
		},
		{
			name:    "fence with info string",
			content: "Text.\n\n```python\nprint('hi')\n```\nTail.\n",
			max:     20,
		},
		{
			name:    "unterminated fence",
			content: "Prose.\n\n```\nnever closed\nstill code\n",
			max:     10,
		},
		{
			name:    "forced splits",
			content: strings.Repeat("A short paragraph.\n\n", 50),
			max:     64,
		},
		{
			name:    "single long line",
			content: strings.Repeat("word ", 200),
			max:     40,
		},
		{
			name:    "no trailing newline",
			content: "# Heading\nbody without trailing newline",
			max:     1000,
		},
		{
			name:    "only blank lines",
			content: "\n\n\n",
			max:     100,
		},
		{
			name:    "multibyte text",
			content: strings.Repeat("文档翻译测试。", 100) + "\n",
			max:     50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.content, tt.max)

			var parts []string
			for i, c := range chunks {
				assert.Equal(t, i, c.Index, "chunk indexes must be contiguous")
				if !c.Verbatim {
					assert.LessOrEqual(t, len(c.Text), tt.max,
						"non-verbatim chunk %d exceeds budget", i)
				}
				assert.NotEmpty(t, c.Text)
				parts = append(parts, c.Text)
			}

			assert.Equal(t, tt.content, Assemble(parts),
				"chunks must reassemble into the original document")
		})
	}
}

func TestScanner_EmptyInput(t *testing.T) {
	s := NewScanner("", 100)
	assert.False(t, s.Scan())
	assert.Nil(t, Split("", 100))
}

func TestScanner_FenceNeverSplit(t *testing.T) {
	fence := "```\n" + strings.Repeat("code line\n", 100) + "```\n"
	content := "Intro.\n\n" + fence + "\nOutro.\n"

	chunks := Split(content, 32)

	var fenceChunks int
	for _, c := range chunks {
		if c.Verbatim {
			fenceChunks++
			assert.Equal(t, fence, c.Text, "fence region must be emitted whole")
		} else {
			assert.NotContains(t, c.Text, "```",
				"prose chunks must not cross fence markers")
		}
	}
	assert.Equal(t, 1, fenceChunks)
}

func TestScanner_UnterminatedFence(t *testing.T) {
	content := "Text.\n```\nopen until the end\nof the file"
	chunks := Split(content, 8)

	require.NotEmpty(t, chunks)
	last := chunks[len(chunks)-1]
	assert.True(t, last.Verbatim)
	assert.Equal(t, "```\nopen until the end\nof the file", last.Text)
}

func TestScanner_HeadingStartsNewChunk(t *testing.T) {
	content := "# One\ntext one\n## Two\ntext two\n### Three\ntext three\n"
	chunks := Split(content, 4096)

	require.Len(t, chunks, 3)
	assert.Equal(t, "# One\ntext one\n", chunks[0].Text)
	assert.Equal(t, "## Two\ntext two\n", chunks[1].Text)
	assert.Equal(t, "### Three\ntext three\n", chunks[2].Text)
}

func TestScanner_DeepHeadingsStayInline(t *testing.T) {
	// h4 and below do not force a boundary.
	content := "intro\n#### Deep\nmore\n"
	chunks := Split(content, 4096)

	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0].Text)
}

func TestScanner_ParagraphBoundaryPreferred(t *testing.T) {
	para1 := strings.Repeat("a", 40) + "\n"
	para2 := strings.Repeat("b", 40) + "\n"
	content := para1 + "\n" + para2

	chunks := Split(content, 60)

	require.Len(t, chunks, 2)
	assert.Equal(t, para1+"\n", chunks[0].Text,
		"cut should land after the blank line, not mid-paragraph")
	assert.Equal(t, para2, chunks[1].Text)
}

func TestScanner_LongLineSplitsAtSpace(t *testing.T) {
	content := strings.Repeat("word ", 50)
	chunks := Split(content, 22)

	var parts []string
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c.Text), 22)
		assert.True(t, strings.HasSuffix(c.Text, " "),
			"mid-line cuts should land after a space: %q", c.Text)
		parts = append(parts, c.Text)
	}
	assert.Equal(t, content, Assemble(parts))
}

func TestScanner_ConsumeOnce(t *testing.T) {
	s := NewScanner("one chunk\n", 100)
	require.True(t, s.Scan())
	assert.False(t, s.Scan())
	assert.False(t, s.Scan(), "an exhausted scanner stays exhausted")
}

func TestScanner_DefaultMaxSize(t *testing.T) {
	content := strings.Repeat("x", DefaultMaxSize/2) + "\n"
	chunks := Split(content, 0)

	require.Len(t, chunks, 1)
	assert.Equal(t, content, chunks[0].Text)
}

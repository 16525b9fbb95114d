// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is a file's path paired with its raw text content. Documents are
// read once, transformed, and written once; nothing is persisted beyond the
// filesystem.
type Document struct {
	// Path is the local filesystem path the content was read from.
	Path string `json:"path" yaml:"path"`

	// Content is the raw UTF-8 text of the file.
	Content string `json:"content" yaml:"content"`
}

// Chunk is a contiguous substring of a document, bounded by the configured
// maximum size so it fits the translation API's input limits. Chunks are
// ordered by Index; concatenating all chunks of a document in index order
// reproduces the document exactly.
type Chunk struct {
	// Index is the chunk's position within the document, starting at 0.
	Index int `json:"index" yaml:"index"`

	// Text is the chunk content, an exact substring of the document.
	Text string `json:"text" yaml:"text"`

	// Verbatim marks a chunk that must pass through untranslated, such as
	// a fenced code block.
	Verbatim bool `json:"verbatim,omitempty" yaml:"verbatim,omitempty"`
}

// Usage accumulates token counts reported by the translation API.
type Usage struct {
	// PromptTokens counts tokens sent to the API.
	PromptTokens int `json:"prompt_tokens" yaml:"prompt_tokens"`

	// CompletionTokens counts tokens generated by the API.
	CompletionTokens int `json:"completion_tokens" yaml:"completion_tokens"`
}

// Add folds another usage record into u.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
}

// Cost computes the monetary cost of the usage under the given pricing.
func (u Usage) Cost(p Pricing) float64 {
	return float64(u.PromptTokens)/1000*p.InputPer1K +
		float64(u.CompletionTokens)/1000*p.OutputPer1K
}

// Pricing holds per-1K-token prices used for cost reporting.
type Pricing struct {
	// InputPer1K is the price per 1000 prompt tokens.
	InputPer1K float64 `json:"input_per_1k" yaml:"input_per_1k"`

	// OutputPer1K is the price per 1000 completion tokens.
	OutputPer1K float64 `json:"output_per_1k" yaml:"output_per_1k"`
}

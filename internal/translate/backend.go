// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/doc-engine/internal/httputil"
	"github.com/pdiddy/doc-engine/pkg/types"
)

// Result is one chunk's translated text plus the API usage it consumed.
type Result struct {
	Text  string
	Usage types.Usage
}

// Backend abstracts the translation API so tests can supply a mock. Each
// implementation handles a single chunk of Markdown.
type Backend interface {
	Translate(ctx context.Context, text string) (Result, error)
}

// ChatBackend calls an OpenAI-style chat-completions endpoint to translate
// one chunk at a time. Errors wrap types.ErrTranslation.
type ChatBackend struct {
	BaseURL        string
	Model          string
	APIKey         string
	TargetLanguage string
	MaxRetries     int
	Client         *http.Client
}

// NewChatBackend builds a backend from the translation configuration.
func NewChatBackend(cfg types.TranslationConfig) *ChatBackend {
	return &ChatBackend{
		BaseURL:        cfg.BaseURL,
		Model:          cfg.Model,
		APIKey:         cfg.APIKey,
		TargetLanguage: cfg.TargetLanguage,
		MaxRetries:     cfg.MaxRetries,
	}
}

// chatRequest is the request body for the chat-completions API.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatMessage is a single message in the API conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat-completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// Translate sends one chunk to the API with the fixed translation
// instruction and returns the translated text. HTTP 429 responses are
// retried with backoff before surfacing as an error.
func (c *ChatBackend) Translate(ctx context.Context, text string) (Result, error) {
	prompt, err := renderPrompt(c.TargetLanguage, text)
	if err != nil {
		return Result{}, fmt.Errorf("%w: rendering prompt: %v", types.ErrTranslation, err)
	}

	reqBody := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("%w: marshaling request: %v", types.ErrTranslation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return Result{}, fmt.Errorf("%w: creating request: %v", types.ErrTranslation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, c.MaxRetries)
	if err != nil {
		return Result{}, fmt.Errorf("%w: calling API: %v", types.ErrTranslation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("%w: API returned %d: %s", types.ErrTranslation, resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return Result{}, fmt.Errorf("%w: decoding response: %v", types.ErrTranslation, err)
	}

	if len(cResp.Choices) == 0 {
		return Result{}, fmt.Errorf("%w: API returned no choices", types.ErrTranslation)
	}

	return Result{
		Text: cResp.Choices[0].Message.Content,
		Usage: types.Usage{
			PromptTokens:     cResp.Usage.PromptTokens,
			CompletionTokens: cResp.Usage.CompletionTokens,
		},
	}, nil
}

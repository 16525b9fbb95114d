// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// NativeEngine converts HTML in-process with the html-to-markdown library.
// It is the default backend and needs no external tooling.
type NativeEngine struct{}

// Convert renders html as Markdown, keeping links, images, and tables.
func (NativeEngine) Convert(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return md, nil
}

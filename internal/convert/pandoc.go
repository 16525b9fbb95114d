// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdiddy/doc-engine/internal/container"
)

const imagePandoc = "pandoc/core:latest"

// pandocArgs converts HTML on stdin to GitHub-flavored Markdown on stdout.
var pandocArgs = []string{"-f", "html", "-t", "gfm"}

// PandocEngine converts HTML by piping it through the pandoc container
// image. It depends on a container.Runtime (docker or podman) injected at
// construction time.
type PandocEngine struct {
	runtime container.Runtime
}

// NewPandocEngine creates an engine backed by the given container runtime.
// It verifies that the pandoc image exists locally before returning.
func NewPandocEngine(rt container.Runtime) (*PandocEngine, error) {
	if err := rt.ImageExists(imagePandoc); err != nil {
		return nil, fmt.Errorf("pandoc image not available in %s: %w", rt.Name(), err)
	}
	return &PandocEngine{runtime: rt}, nil
}

// Convert pipes html through the pandoc container and returns the Markdown.
func (p *PandocEngine) Convert(html string) (string, error) {
	var out bytes.Buffer
	if err := p.runtime.Run(imagePandoc, pandocArgs, strings.NewReader(html), &out); err != nil {
		return "", fmt.Errorf("converting with pandoc: %w", err)
	}
	return out.String(), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"bytes"
	"text/template"
)

// systemPrompt frames every translation request.
const systemPrompt = "You are a professional technical documentation translator."

// translationPromptTmpl is the instruction sent with each chunk. It pins the
// Markdown structure so the translated text reassembles into a valid
// document.
var translationPromptTmpl = template.Must(template.New("translation").Parse(`Translate the following Markdown content into {{.Language}}, keeping the Markdown formatting and markers exactly as they are:

{{.Content}}

Requirements:
1. Keep every Markdown syntax marker unchanged.
2. Keep all links, image references, and similar constructs unchanged.
3. Leave code spans and their contents untouched.
4. Translate accurately, fluently, and in a professional register.
5. Reply with the translated Markdown only, no commentary.`))

// renderPrompt executes the translation prompt template.
func renderPrompt(language, content string) (string, error) {
	var buf bytes.Buffer
	err := translationPromptTmpl.Execute(&buf, struct{ Language, Content string }{
		Language: language,
		Content:  content,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the translation API key from a directory of
// plain-text files. The filename is the key name and the file contents
// (trimmed) are the value.
//
// Supported key file: translation-api-key.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

// KeyTranslationAPI is the filename holding the translation API key.
const KeyTranslationAPI = "translation-api-key"

// APIKey reads the translation API key from dir. A missing directory or
// missing file yields an empty string; secrets are optional.
func APIKey(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, KeyTranslationAPI))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

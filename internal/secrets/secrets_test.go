// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKey(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyTranslationAPI), []byte("  sk-test-123\n"), 0o600))

	assert.Equal(t, "sk-test-123", APIKey(dir), "value must be trimmed")
}

func TestAPIKey_MissingFile(t *testing.T) {
	assert.Empty(t, APIKey(t.TempDir()))
}

func TestAPIKey_MissingDirectory(t *testing.T) {
	assert.Empty(t, APIKey(filepath.Join(t.TempDir(), "nope")))
}

package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDeclarations creates a temporary directory, writes content to name in
// it and returns the absolute path of the file.
// It fails the test immediately on error.
func WriteDeclarations(t *testing.T, name, content string) string {
	t.Helper()

	// Source watchers compare absolute paths.
	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0644), "Failed to write declarations")
	return absPath
}

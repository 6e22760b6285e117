package testutil

import (
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlpretty/pkg/consts"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// WriteFiles creates each file (path -> content) in fs, along with any
// missing parent directories.
func WriteFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()

	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), consts.ModeDir))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), consts.ModeFile), "Failed to write file: %s", path)
	}
}

// RequireFileContent asserts that the file at path holds exactly expected
func RequireFileContent(t *testing.T, fs afero.Fs, path, expected string) {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, expected, string(content), "Unexpected content in file: %s", path)
}

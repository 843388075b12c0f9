package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesAllDirectories(t *testing.T) {
	root := t.TempDir()

	ws, err := Init(root)
	require.NoError(t, err)

	assert.Equal(t, root, ws.Root)
	for _, dir := range []string{ws.Uploads, ws.Results, ws.Temp, ws.Logs} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	assert.Equal(t, filepath.Join(root, UploadsDirName), ws.Uploads)
	assert.Equal(t, filepath.Join(root, ResultsDirName), ws.Results)
	assert.Equal(t, filepath.Join(root, TempDirName), ws.Temp)
	assert.Equal(t, filepath.Join(root, LogsDirName), ws.Logs)
}

func TestInit_ExistingDirectoriesAreKept(t *testing.T) {
	root := t.TempDir()
	uploads := filepath.Join(root, UploadsDirName)
	require.NoError(t, os.MkdirAll(uploads, 0755))
	marker := filepath.Join(uploads, "existing.csv")
	require.NoError(t, os.WriteFile(marker, []byte("Name\nAda\n"), 0644))

	_, err := Init(root)
	require.NoError(t, err)

	_, err = os.Stat(marker)
	assert.NoError(t, err, "re-initialization must not disturb existing uploads")
}

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/packsmith/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "bible", "faith")
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	file := filepath.Join(dir, "pack_config.json")
	require.NoError(t, fsys.WriteFile(file, []byte("{}\n"), 0644))

	data, err := fsys.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	info, err := fsys.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "pack_config.json", entries[0].Name())

	_, err = fsys.ReadFile(dir)
	assert.Error(t, err, "reading a directory must fail")

	_, err = fsys.Stat(filepath.Join(root, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestAferoFS(t *testing.T) {
	exerciseFS(t, NewAferoFS(afero.NewMemMapFs()), "/content")
}

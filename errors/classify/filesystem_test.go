package classify

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ephais/go/errors"
)

func TestFileSystem_PathError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	_, err := os.Open(path)
	require.Error(t, err)

	category, md, ok := FileSystem().Classify(err)
	require.True(t, ok)
	require.Equal(t, errors.CategoryFileSystem, category)
	require.Equal(t, map[string]string{"op": "open", "path": path}, md)
}

func TestFileSystem_LinkError(t *testing.T) {
	err := &os.LinkError{Op: "rename", Old: "a.txt", New: "b.txt", Err: fs.ErrExist}

	category, md, ok := FileSystem().Classify(err)
	require.True(t, ok)
	require.Equal(t, errors.CategoryFileSystem, category)
	require.Equal(t, map[string]string{"op": "rename", "old": "a.txt", "new": "b.txt"}, md)
}

func TestFileSystem_Sentinels(t *testing.T) {
	for _, sentinel := range []error{fs.ErrNotExist, fs.ErrPermission, fs.ErrExist, fs.ErrClosed} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			category, md, ok := FileSystem().Classify(fmt.Errorf("store: %w", sentinel))
			require.True(t, ok)
			require.Equal(t, errors.CategoryFileSystem, category)
			require.Nil(t, md)
		})
	}
}

func TestFileSystem_Unrecognized(t *testing.T) {
	_, _, ok := FileSystem().Classify(stderrors.New("disk quota"))
	require.False(t, ok)
}

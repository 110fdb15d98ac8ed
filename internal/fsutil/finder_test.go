package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/fanoutgo/internal/fsutil"
)

func TestFindFilesByExtension_RecursiveLexicalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0700))
	for _, name := range []string{"b.hcl", "a.hcl", "nested/c.hcl", "ignored.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}

	files, err := fsutil.FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}
	require.Equal(t, want, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = fsutil.FindFilesByExtension(t.TempDir(), "")
	})
}

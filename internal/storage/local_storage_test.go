package storage

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-asset-manager/internal/domain"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(Config{Dir: t.TempDir(), BaseURL: "http://localhost:3000/"})
	require.NoError(t, err)

	t.Run("Save and read back", func(t *testing.T) {
		require.NoError(t, s.SaveFile(ctx, "labels/sheet.html", strings.NewReader("<html></html>")))

		exists, size, err := s.FileExists(ctx, "labels/sheet.html")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, int64(13), size)

		rc, err := s.ReadFile(ctx, "labels/sheet.html")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(data))
	})

	t.Run("Overwrite leaves no temp files", func(t *testing.T) {
		require.NoError(t, s.SaveFile(ctx, "labels/again.html", strings.NewReader("one")))
		require.NoError(t, s.SaveFile(ctx, "labels/again.html", strings.NewReader("two")))

		entries, err := os.ReadDir(s.LocalPath("labels"))
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), e.Name())
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := s.ReadFile(ctx, "labels/nope.html")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		exists, _, err := s.FileExists(ctx, "labels/nope.html")
		require.NoError(t, err)
		assert.False(t, exists)

		assert.NoError(t, s.DeleteFile(ctx, "labels/nope.html"))
	})

	t.Run("Keys cannot escape the root", func(t *testing.T) {
		err := s.SaveFile(ctx, "../outside.txt", strings.NewReader("x"))
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Download URL", func(t *testing.T) {
		assert.Equal(t, "http://localhost:3000/api/files?key=labels%2Fa.pdf", s.DownloadURL("labels/a.pdf"))
	})

	t.Run("NewKey", func(t *testing.T) {
		key := NewKey("/labels/", ".pdf")
		assert.True(t, strings.HasPrefix(key, "labels/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
	})
}

package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
)

func TestConnector_Type(t *testing.T) {
	assert.Equal(t, "filesystem", New().Type())
}

func TestConnector_Fetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xx.html")
	content := []byte("<html><body><div><table></table></div></body></html>")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Run("reads file", func(t *testing.T) {
		raw, err := New().Fetch(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, path, raw.URI)
		assert.Equal(t, content, raw.Content)
		assert.Equal(t, "text/html", raw.MIMEType)
	})

	t.Run("accepts file uri", func(t *testing.T) {
		raw, err := New().Fetch(context.Background(), "file://"+path)
		require.NoError(t, err)
		assert.Equal(t, content, raw.Content)
	})

	t.Run("unknown extension defaults to html", func(t *testing.T) {
		other := filepath.Join(dir, "glossary")
		require.NoError(t, os.WriteFile(other, content, 0o600))

		raw, err := New().Fetch(context.Background(), other)
		require.NoError(t, err)
		assert.Equal(t, "text/html", raw.MIMEType)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().Fetch(context.Background(), filepath.Join(dir, "missing.html"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := New().Fetch(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New().Fetch(ctx, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

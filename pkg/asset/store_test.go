package asset

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should read back what was written", func(t *testing.T) {
		// given
		store := NewFileStore(t.TempDir())

		// when
		ref, err := store.Write(ctx, []byte("image-bytes"), "png")
		require.NoError(t, err)
		data, err := store.Read(ctx, ref)

		// then
		assert.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
		assert.True(t, strings.HasPrefix(ref, "restored_"))
		assert.True(t, strings.HasSuffix(ref, ".png"))
	})

	t.Run("should default the extension to jpg", func(t *testing.T) {
		// given
		store := NewFileStore(t.TempDir())

		// when
		ref, err := store.Write(ctx, []byte("image-bytes"), "")

		// then
		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(ref, ".jpg"))
	})

	t.Run("should strip a file scheme prefix when reading", func(t *testing.T) {
		// given
		dir := t.TempDir()
		store := NewFileStore(dir)
		ref, err := store.Write(ctx, []byte("image-bytes"), "jpg")
		require.NoError(t, err)

		// when
		data, err := store.Read(ctx, "file://"+filepath.Join(dir, ref))

		// then
		assert.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
	})

	t.Run("should fail reading a missing asset", func(t *testing.T) {
		// given
		store := NewFileStore(t.TempDir())

		// when
		_, err := store.Read(ctx, "missing.jpg")

		// then
		assert.Error(t, err)
	})

	t.Run("should create the directory on first write", func(t *testing.T) {
		// given
		store := NewFileStore(filepath.Join(t.TempDir(), "nested", "images"))

		// when
		_, err := store.Write(ctx, []byte("image-bytes"), "jpg")

		// then
		assert.NoError(t, err)
	})
}

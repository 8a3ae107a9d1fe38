package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestCheckPath(t *testing.T) {
	valid := []string{"abc.png", "5/image.png", "5/crop_1.png"}
	for _, name := range valid {
		assert.NoError(t, CheckPath(name), name)
	}

	invalid := []string{"", "../../etc/passwd", "/etc/passwd", "5/../../secret", `\windows\path`}
	for _, name := range invalid {
		assert.ErrorIs(t, CheckPath(name), ErrInvalidPath, name)
	}
}

func TestResolve(t *testing.T) {
	store := newTestStore(t)

	t.Run("existing file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.TempPath("a.png"), []byte("x"), 0o644))
		abs, err := store.Resolve("a.png")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(store.Root, "a.png"), abs)
	})

	t.Run("nested finalized path", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(store.Root, "3"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(store.Root, "3", "image.png"), []byte("x"), 0o644))
		abs, err := store.Resolve("3/image.png")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(store.Root, "3", "image.png"), abs)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := store.Resolve("missing.png")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("directory is not an asset", func(t *testing.T) {
		_, err := store.Resolve("3")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, err := store.Resolve("../outside.png")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})
}

func TestResolveTemp(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(store.Root, "3"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(store.Root, "3", "image.png"), []byte("x"), 0o644))

	// Temp identifiers are bare filenames, never nested paths.
	_, err := store.ResolveTemp("3/image.png")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = store.ResolveTemp("gone.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromote(t *testing.T) {
	t.Run("move succeeds", func(t *testing.T) {
		store := newTestStore(t)
		temp := store.TempPath("t1.png")
		require.NoError(t, os.WriteFile(temp, []byte("image-bytes"), 0o644))

		abs, rel, outcome, err := store.Promote(12, temp)
		require.NoError(t, err)
		assert.Equal(t, OutcomeMoved, outcome)
		assert.Equal(t, filepath.Join("12", "image.png"), rel)

		data, err := os.ReadFile(abs)
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
		assert.NoFileExists(t, temp)
	})

	t.Run("move failure falls back to copy", func(t *testing.T) {
		store := newTestStore(t)
		store.rename = func(oldpath, newpath string) error {
			return errors.New("invalid cross-device link")
		}
		temp := store.TempPath("t2.jpg")
		require.NoError(t, os.WriteFile(temp, []byte("jpeg-bytes"), 0o644))

		abs, rel, outcome, err := store.Promote(7, temp)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCopied, outcome)
		assert.Equal(t, filepath.Join("7", "image.jpg"), rel)

		data, err := os.ReadFile(abs)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), data)
		// Source is removed best-effort after a copy.
		assert.NoFileExists(t, temp)
	})

	t.Run("copy failure reported", func(t *testing.T) {
		store := newTestStore(t)
		store.rename = func(oldpath, newpath string) error {
			return errors.New("forced move failure")
		}

		_, _, _, err := store.Promote(9, store.TempPath("never-written.png"))
		assert.Error(t, err)
	})

	t.Run("extension preserved", func(t *testing.T) {
		store := newTestStore(t)
		temp := store.TempPath("t3.jpeg")
		require.NoError(t, os.WriteFile(temp, []byte("x"), 0o644))

		_, rel, _, err := store.Promote(4, temp)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("4", "image.jpeg"), rel)
	})
}

func TestCropTarget(t *testing.T) {
	store := newTestStore(t)
	abs, rel := store.CropTarget(5, 2)
	assert.Equal(t, filepath.Join(store.Root, "5", "crop_2.png"), abs)
	assert.Equal(t, filepath.Join("5", "crop_2.png"), rel)
}

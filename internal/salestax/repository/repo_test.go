package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesTaxRepo(t *testing.T) {
	t.Run("missing file falls back to the default rate", func(t *testing.T) {
		repo := NewRepo(filepath.Join(t.TempDir(), "salestax.txt"))
		assert.Equal(t, DefaultRate, repo.Get())
	})

	t.Run("garbage content falls back to the default rate", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "salestax.txt")
		require.NoError(t, os.WriteFile(path, []byte("not a number"), 0o644))

		repo := NewRepo(path)
		assert.Equal(t, DefaultRate, repo.Get())
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "salestax.txt")
		repo := NewRepo(path)

		require.NoError(t, repo.Set(7.5))
		assert.Equal(t, 7.5, repo.Get())

		// stored as plain text, not JSON
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "7.5", string(data))
	})
}

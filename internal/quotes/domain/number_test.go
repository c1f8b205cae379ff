package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberAt(t *testing.T) {
	t.Run("formats MMDDYYHHmm zero-padded", func(t *testing.T) {
		got := NumberAt(time.Date(2025, time.January, 1, 9, 0, 0, 0, time.Local))
		assert.Equal(t, "0101250900", got)
	})

	t.Run("two-digit components everywhere", func(t *testing.T) {
		got := NumberAt(time.Date(2026, time.November, 23, 17, 45, 0, 0, time.Local))
		assert.Equal(t, "1123261745", got)
	})

	t.Run("different minutes give different numbers", func(t *testing.T) {
		a := NumberAt(time.Date(2025, time.March, 5, 10, 30, 0, 0, time.Local))
		b := NumberAt(time.Date(2025, time.March, 5, 10, 31, 0, 0, time.Local))
		assert.NotEqual(t, a, b)
	})
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "quote-0101250900.json", Filename("0101250900"))
}

func TestNumberFromFilename(t *testing.T) {
	t.Run("extracts the timestamp", func(t *testing.T) {
		number, err := NumberFromFilename("quote-0101250900.json")
		require.NoError(t, err)
		assert.Equal(t, "0101250900", number)
	})

	t.Run("rejects non-quote names", func(t *testing.T) {
		for _, name := range []string{"notes.json", "quote-.json", "quote-abc.json", "quote-0101250900.txt"} {
			_, err := NumberFromFilename(name)
			assert.ErrorIs(t, err, ErrInvalidFilename, name)
		}
	})
}

func TestValidFilename(t *testing.T) {
	assert.True(t, ValidFilename("quote-0101250900.json"))

	for _, name := range []string{
		"../quote-0101250900.json",
		"..\\quote-0101250900.json",
		"quotes/quote-0101250900.json",
		"customers.json",
		"",
	} {
		assert.False(t, ValidFilename(name), name)
	}
}

package getnovel_test

import (
	"testing"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	t.Parallel()

	t.Run("resolves a single chapter to a one-element interval", func(t *testing.T) {
		t.Parallel()

		r, err := getnovel.NewRange(7, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, []int{7}, r.Numbers())
	})

	t.Run("enumerates a closed interval in ascending order", func(t *testing.T) {
		t.Parallel()

		r, err := getnovel.NewRange(3, 6)
		require.NoError(t, err)
		assert.Equal(t, 4, r.Len())
		assert.Equal(t, []int{3, 4, 5, 6}, r.Numbers())
		assert.True(t, r.Contains(3))
		assert.True(t, r.Contains(6))
		assert.False(t, r.Contains(7))
	})

	t.Run("rejects a start below 1", func(t *testing.T) {
		t.Parallel()

		_, err := getnovel.NewRange(0, 5)
		require.Error(t, err)
		assert.Equal(t, getnovel.EINVALID, getnovel.ErrorCode(err))
	})

	t.Run("rejects an end before start", func(t *testing.T) {
		t.Parallel()

		_, err := getnovel.NewRange(5, 4)
		require.Error(t, err)
		assert.Equal(t, getnovel.EINVALID, getnovel.ErrorCode(err))
	})
}

func TestChapter_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete chapter", func(t *testing.T) {
		t.Parallel()

		c := &getnovel.Chapter{Number: 1, Title: "Prologue", Body: "<p>Once.</p>"}
		require.NoError(t, c.Validate())
	})

	t.Run("rejects a non-positive number", func(t *testing.T) {
		t.Parallel()

		c := &getnovel.Chapter{Number: 0, Body: "<p>x</p>"}
		assert.Equal(t, getnovel.EINVALID, getnovel.ErrorCode(c.Validate()))
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		t.Parallel()

		c := &getnovel.Chapter{Number: 1}
		assert.Equal(t, getnovel.EINVALID, getnovel.ErrorCode(c.Validate()))
	})
}

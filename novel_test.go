package getnovel_test

import (
	"testing"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovel_ChapterURL(t *testing.T) {
	t.Parallel()

	n := &getnovel.Novel{
		Title:              "Test Novel",
		URL:                "https://example.com/book/test-novel",
		ChapterURLTemplate: "https://example.com/book/test-novel/chapter-%d",
	}

	assert.Equal(t, "https://example.com/book/test-novel/chapter-42", n.ChapterURL(42))
}

func TestNovel_Merge(t *testing.T) {
	t.Parallel()

	t.Run("fills missing fields from the persisted copy", func(t *testing.T) {
		t.Parallel()

		live := &getnovel.Novel{Title: "Test", TotalChapters: 120}
		persisted := &getnovel.Novel{
			Title:         "Test",
			Author:        "A. Writer",
			CoverURL:      "https://example.com/cover.jpg",
			TotalChapters: 100,
			Genres:        []string{"Fantasy"},
			Description:   "A tale.",
		}

		live.Merge(persisted)

		assert.Equal(t, "A. Writer", live.Author)
		assert.Equal(t, "https://example.com/cover.jpg", live.CoverURL)
		assert.Equal(t, []string{"Fantasy"}, live.Genres)
		assert.Equal(t, "A tale.", live.Description)
		// Live total chapter count always wins over the stale value.
		assert.Equal(t, 120, live.TotalChapters)
	})

	t.Run("does not overwrite live fields", func(t *testing.T) {
		t.Parallel()

		live := &getnovel.Novel{Title: "Test", Author: "Live Author", CoverURL: "live.jpg"}
		live.Merge(&getnovel.Novel{Author: "Old Author", CoverURL: "old.jpg"})

		assert.Equal(t, "Live Author", live.Author)
		assert.Equal(t, "live.jpg", live.CoverURL)
	})

	t.Run("tolerates a nil persisted copy", func(t *testing.T) {
		t.Parallel()

		live := &getnovel.Novel{Title: "Test"}
		live.Merge(nil)
		assert.Equal(t, "Test", live.Title)
	})
}

func TestNovel_Validate(t *testing.T) {
	t.Parallel()

	n := &getnovel.Novel{
		Title:              "Test",
		URL:                "https://example.com/test",
		ChapterURLTemplate: "https://example.com/test/chapter-%d",
	}
	require.NoError(t, n.Validate())

	assert.Equal(t, getnovel.EINVALID, getnovel.ErrorCode((&getnovel.Novel{}).Validate()))
}

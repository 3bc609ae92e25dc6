package goquery_test

import (
	"testing"

	getnovel "github.com/Clickman777/TgBot"
	gnquery "github.com/Clickman777/TgBot/goquery"
	"github.com/Clickman777/TgBot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const novelPageHTML = `
<html><body>
  <h1 class="novel-title">The Long Road</h1>
  <div class="author">Author: <a href="/author/a-writer">A. Writer</a></div>
  <div class="fixed-img">
    <img src="/placeholder.gif" data-src="https://cdn.example.com/covers/long-road.jpg"/>
  </div>
  <div class="header-stats">
    <span><strong>1204 Chapters</strong></span>
    <span><strong>2.1M Views</strong></span>
  </div>
  <div class="categories">
    <a href="/genre/fantasy">Fantasy</a>
    <a href="/genre/adventure">Adventure</a>
  </div>
  <div class="summary"><p>A tale of roads and inns.</p></div>
</body></html>`

const chapterPageHTML = `
<html><body>
  <h1 class="chapter-title">Chapter 42: The Crossing</h1>
  <div id="content">
    <p>First paragraph.</p>
    <div class="ad">ignore me</div>
    <p>Second paragraph.</p>
  </div>
</body></html>`

const rankingPageHTML = `
<html><body>
  <ul class="rank-novels">
    <li class="novel-item">
      <div class="cover-wrap"><img data-src="https://cdn.example.com/a.jpg"/></div>
      <h2 class="title"><a href="/book/first-novel">First Novel</a></h2>
    </li>
    <li class="novel-item">
      <div class="cover-wrap"><img src="https://cdn.example.com/b.jpg"/></div>
      <h2 class="title"><a href="https://novelfire.net/book/second-novel">Second Novel</a></h2>
    </li>
  </ul>
</body></html>`

func TestNovelFireParser_ParseNovelPage(t *testing.T) {
	t.Parallel()

	t.Run("extracts the full metadata payload", func(t *testing.T) {
		t.Parallel()

		info, err := gnquery.NewNovelFireParser().ParseNovelPage(novelPageHTML)
		require.NoError(t, err)
		assert.Equal(t, "The Long Road", info.Title)
		assert.Equal(t, "A. Writer", info.Author)
		assert.Equal(t, "https://cdn.example.com/covers/long-road.jpg", info.CoverURL)
		assert.Equal(t, 1204, info.TotalChapters)
		assert.Equal(t, []string{"Fantasy", "Adventure"}, info.Genres)
		assert.Equal(t, "A tale of roads and inns.", info.Description)
	})

	t.Run("falls back to the latest chapter link for the count", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h1 class="novel-title">Sparse Page</h1>
			<ul><li class="chapter-item"><a href="/book/sparse-page/chapter-87">Chapter 87</a></li></ul>
		</body></html>`

		info, err := gnquery.NewNovelFireParser().ParseNovelPage(html)
		require.NoError(t, err)
		assert.Equal(t, 87, info.TotalChapters)
		assert.Empty(t, info.Author)
		assert.Empty(t, info.CoverURL)
	})

	t.Run("requires a title", func(t *testing.T) {
		t.Parallel()

		_, err := gnquery.NewNovelFireParser().ParseNovelPage("<html><body></body></html>")
		require.Error(t, err)
		assert.Equal(t, getnovel.ENOTFOUND, getnovel.ErrorCode(err))
	})

	t.Run("requires a chapter count", func(t *testing.T) {
		t.Parallel()

		_, err := gnquery.NewNovelFireParser().ParseNovelPage(
			`<html><body><h1 class="novel-title">No Stats</h1></body></html>`)
		require.Error(t, err)
		assert.Equal(t, getnovel.ENOTFOUND, getnovel.ErrorCode(err))
	})
}

func TestNovelFireParser_ParseChapterPage(t *testing.T) {
	t.Parallel()

	t.Run("joins content paragraphs and keeps the title", func(t *testing.T) {
		t.Parallel()

		content, err := gnquery.NewNovelFireParser().ParseChapterPage(chapterPageHTML)
		require.NoError(t, err)
		assert.Equal(t, "Chapter 42: The Crossing", content.Title)
		assert.Equal(t, "<p>First paragraph.</p><p>Second paragraph.</p>", content.Body)
	})

	t.Run("returns not found when the content container is missing", func(t *testing.T) {
		t.Parallel()

		_, err := gnquery.NewNovelFireParser().ParseChapterPage("<html><body><p>nope</p></body></html>")
		require.Error(t, err)
		assert.Equal(t, getnovel.ENOTFOUND, getnovel.ErrorCode(err))
	})

	t.Run("consults the fallback extractor when selectors miss", func(t *testing.T) {
		t.Parallel()

		fallback := &mock.BodyExtractor{
			ExtractBodyFn: func(html string) (*getnovel.ChapterContent, error) {
				return &getnovel.ChapterContent{Title: "Recovered", Body: "<p>rescued</p>"}, nil
			},
		}
		parser := gnquery.NewNovelFireParser(gnquery.WithBodyFallback(fallback))

		content, err := parser.ParseChapterPage("<html><body><article>unusual markup</article></body></html>")
		require.NoError(t, err)
		assert.Equal(t, "Recovered", content.Title)
		assert.Equal(t, "<p>rescued</p>", content.Body)
	})
}

func TestNovelFireParser_ParseRankingPage(t *testing.T) {
	t.Parallel()

	t.Run("extracts ranked novels and resolves relative links", func(t *testing.T) {
		t.Parallel()

		novels, err := gnquery.NewNovelFireParser().ParseRankingPage(rankingPageHTML)
		require.NoError(t, err)
		require.Len(t, novels, 2)
		assert.Equal(t, "First Novel", novels[0].Title)
		assert.Equal(t, "https://novelfire.net/book/first-novel", novels[0].URL)
		assert.Equal(t, "https://cdn.example.com/a.jpg", novels[0].CoverURL)
		assert.Equal(t, "https://novelfire.net/book/second-novel", novels[1].URL)
		assert.Equal(t, "https://cdn.example.com/b.jpg", novels[1].CoverURL)
	})

	t.Run("returns not found without a ranking list", func(t *testing.T) {
		t.Parallel()

		_, err := gnquery.NewNovelFireParser().ParseRankingPage("<html><body></body></html>")
		require.Error(t, err)
		assert.Equal(t, getnovel.ENOTFOUND, getnovel.ErrorCode(err))
	})
}

func TestChapterURLTemplate(t *testing.T) {
	t.Parallel()

	tmpl := gnquery.ChapterURLTemplate("https://novelfire.net/book/the-long-road/")
	assert.Equal(t, "https://novelfire.net/book/the-long-road/chapter-%d", tmpl)
}

func TestRankingURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://novelfire.net/ranking", gnquery.RankingURL(gnquery.DefaultBaseURL, "overall"))
	assert.Equal(t, "https://novelfire.net/ranking/most-read", gnquery.RankingURL(gnquery.DefaultBaseURL, "most-read"))
	assert.Equal(t, "https://novelfire.net/ranking", gnquery.RankingURL(gnquery.DefaultBaseURL, "bogus"))
}

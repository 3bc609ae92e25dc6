package getnovel

// NovelInfo holds the narrow semantic payload extracted from a novel's main
// page. Optional fields are empty when the markup doesn't carry them.
type NovelInfo struct {
	Title         string
	Author        string
	CoverURL      string
	TotalChapters int
	Genres        []string
	Description   string
	URL           string
}

// ChapterContent holds the payload extracted from a chapter page.
type ChapterContent struct {
	Title string
	Body  string // HTML fragment
}

// Parser extracts structured data from source-site HTML using pre-defined
// structural selectors. Both methods are pure functions over HTML text.
// Selector rules are site-specific, swappable adapters; the sync engine
// never depends on a particular site's markup.
type Parser interface {
	// ParseNovelPage extracts novel metadata. Title and total chapter
	// count are required; missing either yields ENOTFOUND. Optional
	// fields (author, cover, genres, description) are empty when absent.
	ParseNovelPage(html string) (*NovelInfo, error)

	// ParseChapterPage extracts a chapter's title and body markup.
	// Returns ENOTFOUND when no chapter content can be located. An empty
	// title is valid; callers synthesize one from the chapter number.
	ParseChapterPage(html string) (*ChapterContent, error)

	// ParseRankingPage extracts the ranked novel list from a ranking
	// page. Entries carry at least a title and URL.
	ParseRankingPage(html string) ([]*NovelInfo, error)
}

// BodyExtractor recovers readable chapter content from arbitrary HTML when
// site-specific selectors come up empty.
type BodyExtractor interface {
	ExtractBody(html string) (*ChapterContent, error)
}

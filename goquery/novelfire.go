// Package goquery implements the novelfire.net page parser using CSS
// selectors. Selector rules are site-specific glue, isolated here so the
// sync engine never depends on a particular site's markup.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure NovelFireParser implements getnovel.Parser at compile time.
var _ getnovel.Parser = (*NovelFireParser)(nil)

// DefaultBaseURL is the novelfire.net site root.
const DefaultBaseURL = "https://novelfire.net"

var (
	digitsRe      = regexp.MustCompile(`(\d+)`)
	chapterLinkRe = regexp.MustCompile(`chapter-(\d+)`)
)

// ChapterURLTemplate returns the chapter URL template for a novel page URL.
// novelfire chapter pages live at <novelURL>/chapter-<n>.
func ChapterURLTemplate(novelURL string) string {
	return strings.TrimRight(novelURL, "/") + "/chapter-%d"
}

// RankingURL returns the ranking page URL for a sort type. Unknown sort
// types fall back to the overall ranking.
func RankingURL(baseURL, sortType string) string {
	base := strings.TrimRight(baseURL, "/") + "/ranking"
	switch sortType {
	case "most-read", "most-review":
		return base + "/" + sortType
	default:
		return base
	}
}

// NovelFireParser extracts novel metadata, chapter content, and ranking
// lists from novelfire.net markup.
type NovelFireParser struct {
	baseURL  string
	fallback getnovel.BodyExtractor
}

// ParserOption configures a NovelFireParser.
type ParserOption func(*NovelFireParser)

// WithBaseURL sets the site root used to resolve relative links.
func WithBaseURL(u string) ParserOption {
	return func(p *NovelFireParser) {
		p.baseURL = u
	}
}

// WithBodyFallback sets a generic extractor consulted when the chapter
// content container cannot be located with site selectors.
func WithBodyFallback(ex getnovel.BodyExtractor) ParserOption {
	return func(p *NovelFireParser) {
		p.fallback = ex
	}
}

// NewNovelFireParser creates a new NovelFireParser.
func NewNovelFireParser(opts ...ParserOption) *NovelFireParser {
	p := &NovelFireParser{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseNovelPage extracts novel metadata from the novel's main page.
// Title and total chapter count are required; the rest is optional.
func (p *NovelFireParser) ParseNovelPage(html string) (*getnovel.NovelInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, getnovel.Errorf(getnovel.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("h1.novel-title").First().Text())
	if title == "" {
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "novel title not found")
	}

	author := strings.TrimSpace(doc.Find("div.author a").First().Text())
	if author == "" {
		raw := strings.TrimSpace(doc.Find("div.author").First().Text())
		author = strings.TrimSpace(strings.TrimPrefix(raw, "Author:"))
	}

	info := &getnovel.NovelInfo{
		Title:         title,
		Author:        author,
		CoverURL:      coverURL(doc.Find("div.fixed-img img").First()),
		TotalChapters: totalChapters(doc),
		Description:   strings.TrimSpace(doc.Find("div.summary p").First().Text()),
	}
	doc.Find("div.categories a").Each(func(_ int, sel *goquery.Selection) {
		if g := strings.TrimSpace(sel.Text()); g != "" {
			info.Genres = append(info.Genres, g)
		}
	})

	if info.TotalChapters == 0 {
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "could not determine total chapter count")
	}
	return info, nil
}

// ParseChapterPage extracts the chapter title and body markup. The body is
// the concatenation of the paragraphs inside the content container; when the
// container is missing, the fallback extractor (if configured) gets a try.
func (p *NovelFireParser) ParseChapterPage(html string) (*getnovel.ChapterContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, getnovel.Errorf(getnovel.EINVALID, "failed to parse HTML: %v", err)
	}

	var b strings.Builder
	doc.Find("div#content p").Each(func(_ int, sel *goquery.Selection) {
		if fragment, err := goquery.OuterHtml(sel); err == nil {
			b.WriteString(fragment)
		}
	})

	if b.Len() == 0 {
		if p.fallback != nil {
			return p.fallback.ExtractBody(html)
		}
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "chapter content not found")
	}

	return &getnovel.ChapterContent{
		Title: strings.TrimSpace(doc.Find("h1.chapter-title").First().Text()),
		Body:  b.String(),
	}, nil
}

// ParseRankingPage extracts the top ranked novels from a ranking page.
func (p *NovelFireParser) ParseRankingPage(html string) ([]*getnovel.NovelInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, getnovel.Errorf(getnovel.EINVALID, "failed to parse HTML: %v", err)
	}

	list := doc.Find("ul.rank-novels")
	if list.Length() == 0 {
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "ranking list not found")
	}

	var novels []*getnovel.NovelInfo
	list.Find("li.novel-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		anchor := item.Find("h2.title a").First()
		href, ok := anchor.Attr("href")
		title := strings.TrimSpace(anchor.Text())
		if !ok || title == "" {
			return true
		}

		novels = append(novels, &getnovel.NovelInfo{
			Title:    title,
			URL:      p.resolve(href),
			CoverURL: coverURL(item.Find("div.cover-wrap img").First()),
		})
		return len(novels) < 10
	})

	return novels, nil
}

func (p *NovelFireParser) resolve(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(p.baseURL, "/") + "/" + strings.TrimLeft(href, "/")
}

// coverURL prefers the lazy-load data-src attribute over src.
func coverURL(img *goquery.Selection) string {
	if u, ok := img.Attr("data-src"); ok && strings.HasPrefix(u, "http") {
		return u
	}
	if u, ok := img.Attr("src"); ok && strings.HasPrefix(u, "http") {
		return u
	}
	return ""
}

// totalChapters reads the chapter count from the header stats block,
// falling back to the latest chapter link when the stats are missing.
func totalChapters(doc *goquery.Document) int {
	text := doc.Find("div.header-stats span strong").First().Text()
	if m := digitsRe.FindString(text); m != "" {
		n, _ := strconv.Atoi(m)
		return n
	}

	href, ok := doc.Find("li.chapter-item a").First().Attr("href")
	if !ok {
		return 0
	}
	m := chapterLinkRe.FindStringSubmatch(href)
	if len(m) != 2 {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

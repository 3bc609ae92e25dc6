package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.Parser = (*Parser)(nil)

// Parser is a mock implementation of getnovel.Parser.
type Parser struct {
	ParseNovelPageFn   func(html string) (*getnovel.NovelInfo, error)
	ParseChapterPageFn func(html string) (*getnovel.ChapterContent, error)
	ParseRankingPageFn func(html string) ([]*getnovel.NovelInfo, error)
}

func (p *Parser) ParseNovelPage(html string) (*getnovel.NovelInfo, error) {
	return p.ParseNovelPageFn(html)
}

func (p *Parser) ParseChapterPage(html string) (*getnovel.ChapterContent, error) {
	return p.ParseChapterPageFn(html)
}

func (p *Parser) ParseRankingPage(html string) ([]*getnovel.NovelInfo, error) {
	return p.ParseRankingPageFn(html)
}

package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor is a mock implementation of getnovel.BodyExtractor.
type BodyExtractor struct {
	ExtractBodyFn func(html string) (*getnovel.ChapterContent, error)
}

func (e *BodyExtractor) ExtractBody(html string) (*getnovel.ChapterContent, error) {
	return e.ExtractBodyFn(html)
}

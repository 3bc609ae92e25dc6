package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.ChapterStore = (*ChapterStore)(nil)

// ChapterStore is a mock implementation of getnovel.ChapterStore.
type ChapterStore struct {
	ExistsFn func(novel *getnovel.Novel, number int) bool
	ReadFn   func(novel *getnovel.Novel, number int) (*getnovel.Chapter, error)
	WriteFn  func(novel *getnovel.Novel, chapter *getnovel.Chapter) error
}

func (s *ChapterStore) Exists(novel *getnovel.Novel, number int) bool {
	return s.ExistsFn(novel, number)
}

func (s *ChapterStore) Read(novel *getnovel.Novel, number int) (*getnovel.Chapter, error) {
	return s.ReadFn(novel, number)
}

func (s *ChapterStore) Write(novel *getnovel.Novel, chapter *getnovel.Chapter) error {
	return s.WriteFn(novel, chapter)
}

package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.MetadataStore = (*MetadataStore)(nil)

// MetadataStore is a mock implementation of getnovel.MetadataStore.
type MetadataStore struct {
	LoadFn func(dir string) (*getnovel.Novel, error)
	SaveFn func(novel *getnovel.Novel) error
}

func (s *MetadataStore) Load(dir string) (*getnovel.Novel, error) {
	return s.LoadFn(dir)
}

func (s *MetadataStore) Save(novel *getnovel.Novel) error {
	return s.SaveFn(novel)
}

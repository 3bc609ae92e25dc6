package mock

import getnovel "github.com/Clickman777/TgBot"

var _ getnovel.CoverCache = (*CoverCache)(nil)

// CoverCache is a mock implementation of getnovel.CoverCache.
type CoverCache struct {
	LoadFn func(novel *getnovel.Novel) (*getnovel.CoverImage, error)
	SaveFn func(novel *getnovel.Novel, img *getnovel.CoverImage) error
}

func (c *CoverCache) Load(novel *getnovel.Novel) (*getnovel.CoverImage, error) {
	return c.LoadFn(novel)
}

func (c *CoverCache) Save(novel *getnovel.Novel, img *getnovel.CoverImage) error {
	return c.SaveFn(novel, img)
}

package fs

import (
	"os"
	"path/filepath"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure CoverCache implements getnovel.CoverCache at compile time.
var _ getnovel.CoverCache = (*CoverCache)(nil)

// coverExts maps cover content types to file extensions. Lookup order for
// Load follows extByType below.
var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var typeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// coverCandidates is the fixed probe order for cached covers.
var coverCandidates = []string{"cover.jpg", "cover.jpeg", "cover.png", "cover.webp", "cover.gif"}

// CoverCache stores a novel's cover image as <novelDir>/cover.<ext>.
type CoverCache struct{}

// NewCoverCache creates a new CoverCache.
func NewCoverCache() *CoverCache {
	return &CoverCache{}
}

// Load returns the cached cover image, probing known extensions.
func (c *CoverCache) Load(novel *getnovel.Novel) (*getnovel.CoverImage, error) {
	for _, name := range coverCandidates {
		path := filepath.Join(novel.Dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return &getnovel.CoverImage{
			Data:        data,
			ContentType: typeByExt[filepath.Ext(name)],
		}, nil
	}
	return nil, getnovel.Errorf(getnovel.ENOTFOUND, "no cached cover for %q", novel.Title)
}

// Save caches the cover in the novel directory, naming the file by the
// image content type. Unknown types fall back to .jpg.
func (c *CoverCache) Save(novel *getnovel.Novel, img *getnovel.CoverImage) error {
	if len(img.Data) == 0 {
		return getnovel.Errorf(getnovel.EINVALID, "empty cover image")
	}
	if err := os.MkdirAll(novel.Dir, 0755); err != nil {
		return err
	}

	ext, ok := extByType[img.ContentType]
	if !ok {
		ext = ".jpg"
	}
	return os.WriteFile(filepath.Join(novel.Dir, "cover"+ext), img.Data, 0644)
}

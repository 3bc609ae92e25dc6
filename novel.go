package getnovel

import "fmt"

// Novel represents a novel's metadata and local storage location. The title
// doubles as the cache-directory key; two distinct source URLs producing the
// same title will collide (known gap, single-operator assumption).
type Novel struct {
	Title              string   `json:"title"`
	URL                string   `json:"url"`
	Author             string   `json:"author"`
	CoverURL           string   `json:"coverUrl"`
	TotalChapters      int      `json:"totalChapters"`
	ChapterURLTemplate string   `json:"chapterUrlTemplate"` // contains one %d verb
	Genres             []string `json:"genres,omitempty"`
	Description        string   `json:"description,omitempty"`

	// Dir is the local storage root for this novel. Not persisted; derived
	// from the library directory and the title.
	Dir string `json:"-"`
}

// Validate returns an error if the novel contains invalid fields.
func (n *Novel) Validate() error {
	if n.Title == "" {
		return Errorf(EINVALID, "novel title required")
	}
	if n.URL == "" {
		return Errorf(EINVALID, "novel source URL required")
	}
	if n.ChapterURLTemplate == "" {
		return Errorf(EINVALID, "novel chapter URL template required")
	}
	return nil
}

// ChapterURL builds the source URL for the given chapter number.
func (n *Novel) ChapterURL(number int) string {
	return fmt.Sprintf(n.ChapterURLTemplate, number)
}

// Merge fills fields the live metadata fetch did not yield from a previously
// persisted copy. The live total chapter count always wins over a stale
// persisted value.
func (n *Novel) Merge(persisted *Novel) {
	if persisted == nil {
		return
	}
	if n.Author == "" {
		n.Author = persisted.Author
	}
	if n.CoverURL == "" {
		n.CoverURL = persisted.CoverURL
	}
	if len(n.Genres) == 0 {
		n.Genres = persisted.Genres
	}
	if n.Description == "" {
		n.Description = persisted.Description
	}
}

// MetadataStore persists per-novel metadata alongside the chapter files.
type MetadataStore interface {
	// Load reads the persisted metadata from the novel directory.
	// Returns ENOTFOUND if no metadata file exists.
	Load(dir string) (*Novel, error)

	// Save writes the novel's metadata into its directory.
	Save(novel *Novel) error
}

// CoverImage holds raw cover image bytes and their content type.
type CoverImage struct {
	Data        []byte
	ContentType string
}

// CoverCache persists a novel's cover image next to its chapters so repeat
// operations skip the network.
type CoverCache interface {
	// Load returns the cached cover. Returns ENOTFOUND if none is cached.
	Load(novel *Novel) (*CoverImage, error)

	// Save caches the cover in the novel directory.
	Save(novel *Novel, img *CoverImage) error
}

package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure MetadataStore implements getnovel.MetadataStore at compile time.
var _ getnovel.MetadataStore = (*MetadataStore)(nil)

const metadataFileName = "metadata.json"

// MetadataStore persists a novel's metadata as <novelDir>/metadata.json.
type MetadataStore struct{}

// NewMetadataStore creates a new MetadataStore.
func NewMetadataStore() *MetadataStore {
	return &MetadataStore{}
}

// Load reads persisted metadata from the novel directory.
func (s *MetadataStore) Load(dir string) (*getnovel.Novel, error) {
	raw, err := os.ReadFile(filepath.Join(dir, metadataFileName))
	if os.IsNotExist(err) {
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "no metadata in %s", dir)
	} else if err != nil {
		return nil, err
	}

	var novel getnovel.Novel
	if err := json.Unmarshal(raw, &novel); err != nil {
		return nil, getnovel.Errorf(getnovel.EINTERNAL, "corrupt metadata in %s: %v", dir, err)
	}
	novel.Dir = dir
	return &novel, nil
}

// Save writes the novel's metadata into its directory.
func (s *MetadataStore) Save(novel *getnovel.Novel) error {
	if err := novel.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(novel.Dir, 0755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(novel, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(novel.Dir, metadataFileName), raw, 0644)
}

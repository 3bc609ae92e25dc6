// Package fs provides file-backed implementations of the getnovel storage
// interfaces: one HTML file per chapter, a JSON metadata file per novel,
// a cached cover image, and the central JSON chapter ledger.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure ChapterStore implements getnovel.ChapterStore at compile time.
var _ getnovel.ChapterStore = (*ChapterStore)(nil)

const chaptersDirName = "chapters"

// ChapterStore persists chapters as <novelDir>/chapters/chapter_<n>.html.
// The chapter title is embedded as a leading <h1> marker inside the stored
// body so a later read can separate title from body without a second
// metadata source.
type ChapterStore struct{}

// NewChapterStore creates a new ChapterStore.
func NewChapterStore() *ChapterStore {
	return &ChapterStore{}
}

func chapterPath(novel *getnovel.Novel, number int) string {
	return filepath.Join(novel.Dir, chaptersDirName, fmt.Sprintf("chapter_%d.html", number))
}

// Exists reports whether a chapter file is present locally.
func (s *ChapterStore) Exists(novel *getnovel.Novel, number int) bool {
	info, err := os.Stat(chapterPath(novel, number))
	return err == nil && !info.IsDir()
}

// Read reconstructs a chapter from its stored file.
func (s *ChapterStore) Read(novel *getnovel.Novel, number int) (*getnovel.Chapter, error) {
	raw, err := os.ReadFile(chapterPath(novel, number))
	if os.IsNotExist(err) {
		return nil, getnovel.Errorf(getnovel.ENOTFOUND, "chapter %d not cached", number)
	} else if err != nil {
		return nil, err
	}

	title, body := splitTitleMarker(string(raw))
	if title == "" {
		title = fmt.Sprintf("Chapter %d", number)
	}
	if body == "" {
		return nil, getnovel.Errorf(getnovel.EINTERNAL, "chapter %d file is empty", number)
	}

	return &getnovel.Chapter{
		Number:    number,
		Title:     title,
		Body:      body,
		SourceURL: novel.ChapterURL(number),
	}, nil
}

// Write persists a chapter, embedding the title as a leading <h1> marker.
// One file per chapter; a write either lands whole or the chapter is
// re-fetched on the next run.
func (s *ChapterStore) Write(novel *getnovel.Novel, chapter *getnovel.Chapter) error {
	if err := chapter.Validate(); err != nil {
		return err
	}

	path := chapterPath(novel, chapter.Number)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	content := fmt.Sprintf("<h1>%s</h1>\n%s", chapter.Title, chapter.Body)
	return os.WriteFile(path, []byte(content), 0644)
}

// splitTitleMarker separates the leading <h1> title marker from the body.
// Content without the marker is returned whole as the body.
func splitTitleMarker(content string) (title, body string) {
	if !strings.HasPrefix(content, "<h1>") {
		return "", content
	}
	end := strings.Index(content, "</h1>")
	if end < 0 {
		return "", content
	}
	title = content[len("<h1>"):end]
	body = strings.TrimPrefix(content[end+len("</h1>"):], "\n")
	return title, body
}

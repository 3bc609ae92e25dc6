package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure Ledger implements getnovel.Ledger at compile time.
var _ getnovel.Ledger = (*Ledger)(nil)

// Ledger persists the per-title chapter ledger as a single JSON object
// keyed by novel title. Updates are read-modify-write over the whole file;
// there is no inter-process locking, so concurrent runs against the same
// title can race (single-operator assumption).
type Ledger struct {
	path string
}

// NewLedger creates a Ledger backed by the JSON file at path.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// load reads the full on-disk ledger. A missing or unreadable file yields
// an empty ledger.
func (l *Ledger) load() map[string]*getnovel.LedgerEntry {
	entries := make(map[string]*getnovel.LedgerEntry)
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return entries
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return make(map[string]*getnovel.LedgerEntry)
	}
	return entries
}

// LastDownloaded returns the highest recorded chapter number for the title,
// or 0 if the novel was never recorded.
func (l *Ledger) LastDownloaded(title string) (int, error) {
	entry, ok := l.load()[title]
	if !ok {
		return 0, nil
	}
	last := 0
	for _, n := range entry.Chapters {
		if n > last {
			last = n
		}
	}
	return last, nil
}

// Record merges the chapter numbers into the title's entry and rewrites the
// ledger file with the sorted union of old and new chapter sets.
func (l *Ledger) Record(novel *getnovel.Novel, chapters []int) error {
	entries := l.load()

	seen := make(map[int]bool)
	if existing, ok := entries[novel.Title]; ok {
		for _, n := range existing.Chapters {
			seen[n] = true
		}
	}
	for _, n := range chapters {
		seen[n] = true
	}

	all := make([]int, 0, len(seen))
	for n := range seen {
		all = append(all, n)
	}
	sort.Ints(all)

	entries[novel.Title] = &getnovel.LedgerEntry{
		Title:         novel.Title,
		Author:        novel.Author,
		URL:           novel.URL,
		CoverURL:      novel.CoverURL,
		TotalChapters: novel.TotalChapters,
		Genres:        novel.Genres,
		Description:   novel.Description,
		Chapters:      all,
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, raw, 0644)
}

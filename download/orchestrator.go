package download

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	getnovel "github.com/Clickman777/TgBot"
)

// Outcome summarizes a completed pipeline run.
type Outcome struct {
	Novel    *getnovel.Novel
	Chapters []*getnovel.Chapter

	// EPUBPath is the assembled book's location. Empty when NothingNew.
	EPUBPath string

	// NothingNew is set when an update run found no chapters beyond the
	// ledger's high-water mark.
	NothingNew bool
}

// Orchestrator runs the full pipeline for a novel: resolve metadata, sync
// the chapter range, record progress in the ledger, and assemble the EPUB.
type Orchestrator struct {
	Fetcher   getnovel.Fetcher
	Parser    getnovel.Parser
	Metadata  getnovel.MetadataStore
	Covers    getnovel.CoverCache
	Ledger    getnovel.Ledger
	Assembler getnovel.Assembler
	Engine    *Engine

	// LibraryDir is the root under which each novel gets its own directory.
	LibraryDir string

	// ChapterURLTemplate derives the chapter URL pattern from a novel page
	// URL for the target site.
	ChapterURLTemplate func(novelURL string) string

	Logger *slog.Logger
}

func (o *Orchestrator) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Process downloads the requested chapter range of the novel at url and
// assembles an EPUB from it. A zero Start defaults to 1 and a zero End to
// the novel's total chapter count; an End beyond the total is clamped.
func (o *Orchestrator) Process(ctx context.Context, url string, rng getnovel.Range, progress ProgressFunc) (*Outcome, error) {
	novel, err := o.resolveMetadata(ctx, url)
	if err != nil {
		return nil, err
	}

	rng, err = computeRange(rng, novel.TotalChapters)
	if err != nil {
		return nil, err
	}

	return o.run(ctx, novel, rng, progress)
}

// Update downloads every chapter published after the novel's last recorded
// download. When nothing new exists the outcome has NothingNew set and no
// EPUB is produced.
func (o *Orchestrator) Update(ctx context.Context, url string, progress ProgressFunc) (*Outcome, error) {
	novel, err := o.resolveMetadata(ctx, url)
	if err != nil {
		return nil, err
	}

	last, err := o.Ledger.LastDownloaded(novel.Title)
	if err != nil {
		return nil, err
	}
	if last >= novel.TotalChapters {
		o.logger().Info("no new chapters",
			"novel", novel.Title, "last", last, "total", novel.TotalChapters)
		return &Outcome{Novel: novel, NothingNew: true}, nil
	}

	rng, err := getnovel.NewRange(last+1, novel.TotalChapters)
	if err != nil {
		return nil, err
	}

	return o.run(ctx, novel, rng, progress)
}

func (o *Orchestrator) run(ctx context.Context, novel *getnovel.Novel, rng getnovel.Range, progress ProgressFunc) (*Outcome, error) {
	chapters, err := o.Engine.Sync(ctx, novel, rng, progress)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, getnovel.Errorf(getnovel.EEMPTY, "no chapters could be downloaded for %q", novel.Title)
	}

	numbers := make([]int, len(chapters))
	for i, c := range chapters {
		numbers[i] = c.Number
	}
	if err := o.Ledger.Record(novel, numbers); err != nil {
		o.logger().Warn("failed to record download in ledger",
			"novel", novel.Title, "error", err)
	}

	cover := o.fetchCover(ctx, novel)

	path, err := o.Assembler.Assemble(novel, chapters, cover)
	if err != nil {
		return nil, err
	}

	return &Outcome{Novel: novel, Chapters: chapters, EPUBPath: path}, nil
}

// resolveMetadata fetches and parses the novel's main page, merges in any
// previously persisted metadata, and persists the refreshed copy. Fetch and
// parse failures are fatal; a metadata save failure is not.
func (o *Orchestrator) resolveMetadata(ctx context.Context, url string) (*getnovel.Novel, error) {
	raw, err := o.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	info, err := o.Parser.ParseNovelPage(string(raw))
	if err != nil {
		return nil, err
	}

	novel := &getnovel.Novel{
		Title:              info.Title,
		URL:                url,
		Author:             info.Author,
		CoverURL:           info.CoverURL,
		TotalChapters:      info.TotalChapters,
		ChapterURLTemplate: o.ChapterURLTemplate(url),
		Genres:             info.Genres,
		Description:        info.Description,
	}
	novel.Dir = filepath.Join(o.LibraryDir, SanitizeTitle(novel.Title))
	if err := novel.Validate(); err != nil {
		return nil, err
	}

	if persisted, err := o.Metadata.Load(novel.Dir); err == nil {
		novel.Merge(persisted)
	} else if getnovel.ErrorCode(err) != getnovel.ENOTFOUND {
		o.logger().Warn("failed to load persisted metadata",
			"novel", novel.Title, "error", err)
	}

	if err := o.Metadata.Save(novel); err != nil {
		o.logger().Warn("failed to save metadata",
			"novel", novel.Title, "error", err)
	}

	return novel, nil
}

// fetchCover returns the novel's cover image, best effort. The cache is
// consulted first; on a miss the cover URL is fetched and the result cached.
// Any failure yields a nil cover and a cover-less book.
func (o *Orchestrator) fetchCover(ctx context.Context, novel *getnovel.Novel) *getnovel.CoverImage {
	if cover, err := o.Covers.Load(novel); err == nil {
		return cover
	}

	if novel.CoverURL == "" {
		return nil
	}

	data, err := o.Fetcher.Fetch(ctx, novel.CoverURL)
	if err != nil {
		o.logger().Warn("failed to fetch cover image",
			"novel", novel.Title, "url", novel.CoverURL, "error", err)
		return nil
	}

	cover := &getnovel.CoverImage{
		Data:        data,
		ContentType: http.DetectContentType(data),
	}
	if err := o.Covers.Save(novel, cover); err != nil {
		o.logger().Warn("failed to cache cover image",
			"novel", novel.Title, "error", err)
	}
	return cover
}

// computeRange applies defaults and clamps the end to the chapter count.
func computeRange(rng getnovel.Range, total int) (getnovel.Range, error) {
	start := rng.Start
	if start == 0 {
		start = 1
	}
	end := rng.End
	if end == 0 || end > total {
		end = total
	}
	return getnovel.NewRange(start, end)
}

// SanitizeTitle maps a novel title to a filesystem-safe directory name.
func SanitizeTitle(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		default:
			return r
		}
	}, title)
	return strings.TrimSpace(sanitized)
}

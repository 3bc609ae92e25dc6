// Package download provides chapter acquisition and incremental
// synchronization: the bounded-concurrency sync engine and the end-to-end
// novel pipeline that feeds the EPUB assembler.
package download

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	getnovel "github.com/Clickman777/TgBot"
)

// DefaultConcurrency caps simultaneous in-flight chapter fetches per batch.
const DefaultConcurrency = 10

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCached
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress while a chapter batch is syncing.
type ProgressEvent struct {
	Type      ProgressType
	Chapter   int
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting sync progress.
type ProgressFunc func(event ProgressEvent)

// syncResult holds the outcome of one chapter fetch task.
type syncResult struct {
	number  int
	chapter *getnovel.Chapter
	err     error
}

// Engine is the chapter synchronization engine. Given a requested range it
// partitions the chapters into cached and missing, fetches the missing set
// concurrently, persists each fully fetched chapter before reporting it,
// and returns the union ordered by chapter number.
//
// Chapter numbers are independent, idempotent units of work: a chapter
// either resolves from the local store or is fetched, parsed, and written
// in one task. Re-running the same range after a crash only re-fetches
// chapters whose files never landed.
type Engine struct {
	Fetcher  getnovel.Fetcher
	Parser   getnovel.Parser
	Chapters getnovel.ChapterStore

	// Throttle, when set, spaces fetches against the source site.
	Throttle *Throttle

	// Concurrency bounds in-flight fetches. Defaults to DefaultConcurrency.
	Concurrency int

	Logger *slog.Logger
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Sync returns chapter records for every number in rng that could be
// resolved, ordered by chapter number. Partial success is valid output: a
// chapter whose fetch, parse, or write fails is logged and omitted; sibling
// tasks are unaffected. The call blocks until every dispatched task for the
// batch has completed.
func (e *Engine) Sync(ctx context.Context, novel *getnovel.Novel, rng getnovel.Range, progress ProgressFunc) ([]*getnovel.Chapter, error) {
	total := rng.Len()
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	// Step 1: resolve what is already cached. Sequential and local; an
	// unreadable file counts as a cache miss and is re-fetched below.
	resolved := make(map[int]*getnovel.Chapter, total)
	var missing []int
	for _, n := range rng.Numbers() {
		if !e.Chapters.Exists(novel, n) {
			missing = append(missing, n)
			continue
		}
		chapter, err := e.Chapters.Read(novel, n)
		if err != nil {
			e.logger().Warn("cached chapter unreadable, will re-fetch",
				"novel", novel.Title, "chapter", n, "error", err)
			missing = append(missing, n)
			continue
		}
		chapter.ContentHash = hashContent(chapter.Body)
		resolved[n] = chapter
		notify(progress, ProgressEvent{Type: ProgressCached, Chapter: n, Total: total})
	}

	// Steps 2-4: fetch the missing set with bounded concurrency and
	// collect outcomes without regard to completion order.
	if len(missing) > 0 {
		concurrency := e.Concurrency
		if concurrency <= 0 {
			concurrency = DefaultConcurrency
		}

		resultCh := make(chan syncResult, len(missing))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		go func() {
			for _, n := range missing {
				g.Go(func() error {
					chapter, err := e.fetchChapter(gctx, novel, n)
					resultCh <- syncResult{number: n, chapter: chapter, err: err}
					return nil
				})
			}
			_ = g.Wait()
			close(resultCh)
		}()

		completed := len(resolved)
		for result := range resultCh {
			completed++
			if result.err != nil {
				e.logger().Warn("chapter sync failed",
					"novel", novel.Title, "chapter", result.number, "error", result.err)
				notify(progress, ProgressEvent{
					Type: ProgressFailed, Chapter: result.number,
					Completed: completed, Total: total, Error: result.err,
				})
				continue
			}
			resolved[result.number] = result.chapter
			notify(progress, ProgressEvent{
				Type: ProgressCompleted, Chapter: result.number,
				Completed: completed, Total: total,
			})
		}
	}

	// Step 5: reassemble in strict chapter-number order.
	chapters := make([]*getnovel.Chapter, 0, len(resolved))
	for _, n := range rng.Numbers() {
		if c, ok := resolved[n]; ok {
			chapters = append(chapters, c)
		}
	}
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].Number < chapters[j].Number })

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: len(chapters), Total: total})
	return chapters, nil
}

// fetchChapter runs one unit of work: throttle, fetch, parse, and write the
// chapter to the store before returning it. Only a fully successful
// fetch+parse reaches the store.
func (e *Engine) fetchChapter(ctx context.Context, novel *getnovel.Novel, number int) (*getnovel.Chapter, error) {
	url := novel.ChapterURL(number)

	if e.Throttle != nil {
		if err := e.Throttle.Wait(ctx, url); err != nil {
			return nil, err
		}
	}

	raw, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	content, err := e.Parser.ParseChapterPage(string(raw))
	if err != nil {
		return nil, err
	}

	title := content.Title
	if title == "" {
		title = fmt.Sprintf("Chapter %d", number)
	}

	chapter := &getnovel.Chapter{
		Number:      number,
		Title:       title,
		Body:        content.Body,
		SourceURL:   url,
		ContentHash: hashContent(content.Body),
	}

	if err := e.Chapters.Write(novel, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// hashContent computes a content hash using xxhash.
func hashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

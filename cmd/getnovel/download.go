package main

import (
	"fmt"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/Clickman777/TgBot/download"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Orchestrator.Engine.Concurrency = c.Concurrency
	}

	rng := getnovel.Range{Start: c.Start, End: c.End}
	if c.All {
		rng = getnovel.Range{}
	}

	outcome, err := deps.Orchestrator.Process(deps.Ctx, c.URL, rng, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d chapters of %q\n", len(outcome.Chapters), outcome.Novel.Title)
	fmt.Fprintf(deps.Stdout, "EPUB: %s\n", outcome.EPUBPath)
	return nil
}

// progressPrinter reports batch progress on stderr so stdout stays clean for
// the final summary.
func progressPrinter(deps *Dependencies) download.ProgressFunc {
	return func(event download.ProgressEvent) {
		switch event.Type {
		case download.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "  Syncing %d chapters\n", event.Total)
		case download.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip chapter %d: %v\n", event.Chapter, event.Error)
		case download.ProgressFinished:
			// Summary printed by the command itself
		}
	}
}

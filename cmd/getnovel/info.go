package main

import (
	"fmt"
	"strings"

	getnovel "github.com/Clickman777/TgBot"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	raw, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	info, err := deps.Parser.ParseNovelPage(string(raw))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	last, err := deps.Ledger.LastDownloaded(info.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title:    %s\n", info.Title)
	if info.Author != "" {
		fmt.Fprintf(deps.Stdout, "Author:   %s\n", info.Author)
	}
	if len(info.Genres) > 0 {
		fmt.Fprintf(deps.Stdout, "Genres:   %s\n", strings.Join(info.Genres, ", "))
	}
	fmt.Fprintf(deps.Stdout, "Chapters: %d\n", info.TotalChapters)
	if last > 0 {
		fmt.Fprintf(deps.Stdout, "Local:    up to chapter %d\n", last)
	} else {
		fmt.Fprintln(deps.Stdout, "Local:    not downloaded")
	}
	if info.Description != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", info.Description)
	}
	return nil
}

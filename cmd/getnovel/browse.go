package main

import (
	"fmt"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/Clickman777/TgBot/goquery"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	url := goquery.RankingURL(goquery.DefaultBaseURL, c.Sort)

	raw, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	novels, err := deps.Parser.ParseRankingPage(string(raw))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	if len(novels) == 0 {
		fmt.Fprintln(deps.Stdout, "No novels found.")
		return nil
	}

	for i, n := range novels {
		fmt.Fprintf(deps.Stdout, "%2d. %s\n    %s\n", i+1, n.Title, n.URL)
	}
	return nil
}

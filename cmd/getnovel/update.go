package main

import (
	"fmt"

	getnovel "github.com/Clickman777/TgBot"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Orchestrator.Engine.Concurrency = c.Concurrency
	}

	outcome, err := deps.Orchestrator.Update(deps.Ctx, c.URL, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", getnovel.ErrorMessage(err))
		return err
	}

	if outcome.NothingNew {
		fmt.Fprintf(deps.Stdout, "%q is up to date\n", outcome.Novel.Title)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Added %d new chapters to %q\n", len(outcome.Chapters), outcome.Novel.Title)
	fmt.Fprintf(deps.Stdout, "EPUB: %s\n", outcome.EPUBPath)
	return nil
}

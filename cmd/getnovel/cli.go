package main

import (
	"context"
	"io"
	"log/slog"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/Clickman777/TgBot/download"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	LibraryDir string

	Fetcher      getnovel.Fetcher
	Parser       getnovel.Parser
	Chapters     getnovel.ChapterStore
	Ledger       getnovel.Ledger
	Converter    getnovel.Converter
	Orchestrator *download.Orchestrator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable progress logging"`
	Library string `short:"L" help:"Library directory (default: $GETNOVEL_LIBRARY or ~/Novels)"`

	Download DownloadCmd `cmd:"" help:"Download a chapter range and build an EPUB"`
	Update   UpdateCmd   `cmd:"" help:"Download chapters published since the last run"`
	Info     InfoCmd     `cmd:"" help:"Show a novel's metadata and download state"`
	Browse   BrowseCmd   `cmd:"" help:"List top ranked novels on the source site"`
	Preview  PreviewCmd  `cmd:"" help:"Print a single chapter as Markdown"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	URL         string `arg:"" help:"Novel page URL"`
	Start       int    `short:"s" default:"0" help:"First chapter to download (default 1)"`
	End         int    `short:"e" default:"0" help:"Last chapter to download (default: all)"`
	All         bool   `help:"Download every published chapter"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent fetch limit"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	URL         string `arg:"" help:"Novel page URL"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent fetch limit"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	URL string `arg:"" help:"Novel page URL"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Sort string `default:"overall" enum:"overall,most-read,most-review" help:"Ranking to browse"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Title   string `arg:"" help:"Novel title (as shown by info)"`
	Chapter int    `arg:"" help:"Chapter number to preview"`
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Clickman777/TgBot/download"
	"github.com/Clickman777/TgBot/epub"
	"github.com/Clickman777/TgBot/fs"
	"github.com/Clickman777/TgBot/goquery"
	gnhttp "github.com/Clickman777/TgBot/http"
	"github.com/Clickman777/TgBot/htmltomarkdown"
	gnslog "github.com/Clickman777/TgBot/slog"
	"github.com/Clickman777/TgBot/trafilatura"
)

// ledgerFile is the download ledger's filename inside the library directory.
const ledgerFile = "novel_list.json"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Library directory holding per-novel folders and the download ledger.
	// Set before calling Run().
	LibraryDir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		LibraryDir: defaultLibraryDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("getnovel"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'getnovel --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	libraryDir := m.LibraryDir
	if cli.Library != "" {
		libraryDir = cli.Library
	}
	deps.LibraryDir = libraryDir

	if err := os.MkdirAll(libraryDir, 0o755); err != nil {
		fmt.Fprintln(stderr, "Hint: Set GETNOVEL_LIBRARY to use a different library path")
		return fmt.Errorf("failed to create library directory %q: %w", libraryDir, err)
	}

	fetcher := gnslog.NewLoggingFetcher(gnhttp.NewFetcher(), logger)
	defer fetcher.Close()

	siteParser := goquery.NewNovelFireParser(
		goquery.WithBodyFallback(trafilatura.NewExtractor()),
	)

	ledger := fs.NewLedger(filepath.Join(libraryDir, ledgerFile))
	chapters := fs.NewChapterStore()

	deps.Fetcher = fetcher
	deps.Parser = siteParser
	deps.Chapters = chapters
	deps.Ledger = ledger
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Orchestrator = &download.Orchestrator{
		Fetcher:   fetcher,
		Parser:    siteParser,
		Metadata:  fs.NewMetadataStore(),
		Covers:    fs.NewCoverCache(),
		Ledger:    ledger,
		Assembler: gnslog.NewLoggingAssembler(epub.NewAssembler(), logger),
		Engine: &download.Engine{
			Fetcher:  fetcher,
			Parser:   siteParser,
			Chapters: chapters,
			Throttle: download.NewThrottle(2.0, 500*time.Millisecond),
			Logger:   logger,
		},
		LibraryDir:         libraryDir,
		ChapterURLTemplate: goquery.ChapterURLTemplate,
		Logger:             logger,
	}

	return kongCtx.Run(deps)
}

func defaultLibraryDir() string {
	if path := os.Getenv("GETNOVEL_LIBRARY"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "Novels"
	}
	return filepath.Join(home, "Novels")
}

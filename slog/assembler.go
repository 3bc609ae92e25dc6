package slog

import (
	"log/slog"
	"time"

	getnovel "github.com/Clickman777/TgBot"
)

// Ensure LoggingAssembler implements getnovel.Assembler.
var _ getnovel.Assembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an Assembler with build logging.
type LoggingAssembler struct {
	next   getnovel.Assembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next getnovel.Assembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs the outcome.
func (a *LoggingAssembler) Assemble(novel *getnovel.Novel, chapters []*getnovel.Chapter, cover *getnovel.CoverImage) (string, error) {
	begin := time.Now()
	path, err := a.next.Assemble(novel, chapters, cover)
	if err != nil {
		a.logger.Error("assemble",
			"novel", novel.Title,
			"chapters", len(chapters),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	a.logger.Info("assemble",
		"novel", novel.Title,
		"chapters", len(chapters),
		"cover", cover != nil,
		"path", path,
		"duration", time.Since(begin),
	)
	return path, nil
}

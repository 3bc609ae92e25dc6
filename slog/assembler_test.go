package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	getnovel "github.com/Clickman777/TgBot"
	"github.com/Clickman777/TgBot/mock"
	gnslog "github.com/Clickman777/TgBot/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAssembler_Assemble(t *testing.T) {
	t.Parallel()

	novel := &getnovel.Novel{Title: "Test Novel"}
	chapters := []*getnovel.Chapter{{Number: 1, Title: "Chapter 1", Body: "<p>x</p>"}}

	t.Run("logs assembly with chapter count and path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Assembler{
			AssembleFn: func(novel *getnovel.Novel, chapters []*getnovel.Chapter, cover *getnovel.CoverImage) (string, error) {
				return "/library/Test Novel/Test Novel.epub", nil
			},
		}

		path, err := gnslog.NewLoggingAssembler(inner, logger).Assemble(novel, chapters, nil)

		require.NoError(t, err)
		assert.Equal(t, "/library/Test Novel/Test Novel.epub", path)
		output := buf.String()
		assert.Contains(t, output, "assemble")
		assert.Contains(t, output, "chapters=1")
		assert.Contains(t, output, "cover=false")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Assembler{
			AssembleFn: func(novel *getnovel.Novel, chapters []*getnovel.Chapter, cover *getnovel.CoverImage) (string, error) {
				return "", errors.New("disk full")
			},
		}

		_, err := gnslog.NewLoggingAssembler(inner, logger).Assemble(novel, chapters, nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
